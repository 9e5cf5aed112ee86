package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// inbound is the normalized form of one webhook update.
type inbound struct {
	chatID      int64
	messageID   int
	text        string // trimmed text or caption; "" when absent
	caption     string // raw caption, rides along with a photo
	photoFileID string
	fromBot     bool
}

// normalize extracts the addressable parts of an update. Returns nil when
// the update carries no message or no chat.
func normalize(update tgbotapi.Update) *inbound {
	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return nil
	}
	in := &inbound{
		chatID:      msg.Chat.ID,
		messageID:   msg.MessageID,
		text:        pickText(msg),
		caption:     msg.Caption,
		photoFileID: pickLargestPhoto(msg.Photo),
	}
	if msg.From != nil {
		in.fromBot = msg.From.IsBot
	}
	return in
}

func pickText(msg *tgbotapi.Message) string {
	t := msg.Text
	if t == "" {
		t = msg.Caption
	}
	return strings.TrimSpace(t)
}

// pickLargestPhoto selects the variant with the largest reported file size.
// Ties and missing size metadata resolve to the last variant in platform
// order.
func pickLargestPhoto(photos []tgbotapi.PhotoSize) string {
	if len(photos) == 0 {
		return ""
	}
	best := photos[0]
	for _, p := range photos[1:] {
		if p.FileSize >= best.FileSize {
			best = p
		}
	}
	return best.FileID
}
