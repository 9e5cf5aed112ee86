package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// Narrow views of *tgbotapi.BotAPI so tests can substitute fakes.

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type fileResolver interface {
	GetFileDirectURL(fileID string) (string, error)
}

type updatesFetcher interface {
	GetUpdates(config tgbotapi.UpdateConfig) ([]tgbotapi.Update, error)
}
