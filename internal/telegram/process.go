package telegram

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"chat-relay/internal/history"
	"chat-relay/internal/llm"
	"chat-relay/internal/storage"
)

// processUpdate runs the reply pipeline for one validated update. Every
// failure past this point is recovered locally: optional steps degrade,
// fatal steps fall back to a best-effort apology. The webhook caller has
// already accepted the event either way.
func (b *Bot) processUpdate(ctx context.Context, update tgbotapi.Update) {
	in := normalize(update)
	if in == nil {
		return
	}
	if in.text == "" && in.photoFileID == "" {
		return
	}
	if !b.authSvc.IsAllowed(in.chatID) {
		log.Printf("ignoring update from unlisted chat %d", in.chatID)
		return
	}

	log.Printf("incoming message in chat %d: %q", in.chatID, in.text)

	// Context is read before the current turn is appended, so the active
	// query never appears in its own context.
	fresh := b.fetchRecentTurns(in.chatID)
	contextTurns := b.history.Context(in.chatID, fresh)
	if in.text != "" {
		b.history.AppendUser(in.chatID, in.text)
	}

	vision := b.resolveVision(in)

	resp, err := b.llmClient.Generate(ctx, llm.Request{
		SystemPrompt: b.systemPrompt,
		Context:      contextTurns,
		UserText:     in.text,
		Vision:       vision,
	})
	if err != nil {
		log.Printf("failed to generate reply for chat %d: %v", in.chatID, err)
		b.sendApology(in.chatID, in.messageID)
		return
	}

	replyText := strings.TrimSpace(resp.Content)
	if replyText == "" {
		replyText = emptyReply
	}

	if err := b.send(in.chatID, replyText, in.messageID); err != nil {
		log.Printf("failed to send reply to chat %d: %v", in.chatID, err)
		b.sendApology(in.chatID, in.messageID)
		return
	}
	b.history.AppendAssistant(in.chatID, replyText)

	if b.recorder != nil {
		ev := storage.Event{
			Timestamp:         time.Now(),
			ChatID:            in.chatID,
			UserMessage:       in.text,
			AssistantResponse: replyText,
			Model:             resp.Model,
			TotalTokens:       resp.TotalTokens,
		}
		if err := b.recorder.AppendInteraction(ev); err != nil {
			log.Printf("failed to record interaction for chat %d: %v", in.chatID, err)
		}
	}
}

// fetchRecentTurns recovers context from the platform's update backlog, for
// chats the in-process cache has not seen yet (e.g. after a restart). Any
// failure degrades to no fresh history.
func (b *Bot) fetchRecentTurns(chatID int64) []llm.Message {
	u := tgbotapi.NewUpdate(0)
	u.Limit = 100
	u.AllowedUpdates = []string{"message"}

	updates, err := b.updates.GetUpdates(u)
	if err != nil {
		log.Printf("failed to fetch recent updates for chat %d: %v", chatID, err)
		return nil
	}

	var msgs []*tgbotapi.Message
	for _, upd := range updates {
		if upd.Message != nil && upd.Message.Chat != nil && upd.Message.Chat.ID == chatID {
			msgs = append(msgs, upd.Message)
		}
	}
	sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].Date < msgs[j].Date })

	var turns []llm.Message
	for _, m := range msgs {
		text := pickText(m)
		if text == "" {
			continue
		}
		role := "user"
		if m.From != nil && m.From.IsBot {
			role = "assistant"
		}
		turns = append(turns, llm.Message{Role: role, Content: text})
	}
	if len(turns) > history.Window {
		turns = turns[len(turns)-history.Window:]
	}
	return turns
}

// resolveVision turns a photo reference into a fetchable URL. Resolution
// failure is not fatal; the pipeline proceeds text-only.
func (b *Bot) resolveVision(in *inbound) *llm.Vision {
	if in.photoFileID == "" {
		return nil
	}
	url, err := b.files.GetFileDirectURL(in.photoFileID)
	if err != nil {
		log.Printf("failed to resolve photo in chat %d: %v", in.chatID, err)
		return nil
	}
	if url == "" {
		return nil
	}
	return &llm.Vision{ImageURL: url, Text: in.caption}
}

// sendApology makes one best-effort delivery of the fixed apology. A failure
// here is logged and swallowed; there is nothing further to do for this chat.
func (b *Bot) sendApology(chatID int64, replyTo int) {
	if err := b.send(chatID, errorReply, replyTo); err != nil {
		log.Printf("failed to deliver apology to chat %d: %v", chatID, err)
	}
}
