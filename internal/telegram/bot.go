package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"chat-relay/internal/auth"
	"chat-relay/internal/history"
	"chat-relay/internal/llm"
	"chat-relay/internal/storage"
)

const (
	secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

	// DefaultSystemPrompt is used when no system prompt file is configured.
	DefaultSystemPrompt = "You are a helpful Telegram AI assistant. Keep replies concise and correct."

	errorReply = "Sorry—something went wrong. Please try again."
	emptyReply = "Sorry—I'm not sure how to respond."
)

type Bot struct {
	s       sender
	files   fileResolver
	updates updatesFetcher

	llmClient llm.Client
	history   *history.Manager
	authSvc   *auth.Service
	recorder  storage.Recorder

	systemPrompt  string
	webhookSecret string
}

func New(botToken string, llmClient llm.Client, authSvc *auth.Service, rec storage.Recorder, systemPrompt, webhookSecret string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	return &Bot{
		s:             api,
		files:         api,
		updates:       api,
		llmClient:     llmClient,
		history:       history.NewManager(),
		authSvc:       authSvc,
		recorder:      rec,
		systemPrompt:  systemPrompt,
		webhookSecret: webhookSecret,
	}, nil
}

// SendTo delivers a plain message without reply threading. Used for admin
// reports.
func (b *Bot) SendTo(chatID int64, text string) error {
	_, err := b.s.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (b *Bot) send(chatID int64, text string, replyTo int) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyToMessageID = replyTo
	msg.AllowSendingWithoutReply = true
	msg.DisableWebPagePreview = true
	_, err := b.s.Send(msg)
	return err
}
