package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func TestNormalizeRejectsUpdatesWithoutChat(t *testing.T) {
	if normalize(tgbotapi.Update{}) != nil {
		t.Fatalf("update without message should normalize to nil")
	}
	if normalize(tgbotapi.Update{Message: &tgbotapi.Message{}}) != nil {
		t.Fatalf("message without chat should normalize to nil")
	}
}

func TestNormalizeTextFallsBackToCaption(t *testing.T) {
	in := normalize(tgbotapi.Update{Message: &tgbotapi.Message{
		Chat:    &tgbotapi.Chat{ID: 1},
		Caption: "  a caption  ",
	}})
	if in == nil || in.text != "a caption" {
		t.Fatalf("caption fallback failed: %+v", in)
	}

	in = normalize(tgbotapi.Update{Message: &tgbotapi.Message{
		Chat:    &tgbotapi.Chat{ID: 1},
		Text:    "plain text",
		Caption: "ignored",
	}})
	if in.text != "plain text" {
		t.Fatalf("text should win over caption: %+v", in)
	}

	in = normalize(tgbotapi.Update{Message: &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 1},
		Text: "   \t\n ",
	}})
	if in.text != "" {
		t.Fatalf("all-whitespace text should be absent: %q", in.text)
	}
}

func TestPickLargestPhoto(t *testing.T) {
	cases := []struct {
		name   string
		photos []tgbotapi.PhotoSize
		want   string
	}{
		{"empty", nil, ""},
		{"largest size wins", []tgbotapi.PhotoSize{
			{FileID: "small", FileSize: 100},
			{FileID: "big", FileSize: 500},
			{FileID: "mid", FileSize: 300},
		}, "big"},
		{"tie goes to last", []tgbotapi.PhotoSize{
			{FileID: "first", FileSize: 500},
			{FileID: "second", FileSize: 500},
		}, "second"},
		{"no size metadata picks last", []tgbotapi.PhotoSize{
			{FileID: "first"},
			{FileID: "second"},
			{FileID: "third"},
		}, "third"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := pickLargestPhoto(tc.photos); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNormalizeCarriesBotFlagAndIDs(t *testing.T) {
	in := normalize(tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID: 77,
		Chat:      &tgbotapi.Chat{ID: 42},
		From:      &tgbotapi.User{IsBot: true},
		Text:      "x",
	}})
	if in.chatID != 42 || in.messageID != 77 || !in.fromBot {
		t.Fatalf("unexpected normalized record: %+v", in)
	}
}
