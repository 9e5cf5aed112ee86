package telegram

import (
	"encoding/json"
	"log"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Handler serves the webhook endpoint: GET is a health probe, POST delivers
// one update. Every outcome acknowledges with 200 {"ok":true} except a
// shared-secret mismatch, which is rejected with 401 before any processing.
func (b *Bot) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeAck(w, http.StatusOK, true)
		case http.MethodPost:
			b.handlePost(w, r)
		default:
			w.Header().Set("Allow", "GET, POST")
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
}

func (b *Bot) handlePost(w http.ResponseWriter, r *http.Request) {
	if b.webhookSecret != "" && r.Header.Get(secretTokenHeader) != b.webhookSecret {
		writeAck(w, http.StatusUnauthorized, false)
		return
	}

	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		// Malformed bodies are a no-op, not a caller error.
		log.Printf("failed to decode update: %v", err)
		writeAck(w, http.StatusOK, true)
		return
	}

	b.processUpdate(r.Context(), update)
	writeAck(w, http.StatusOK, true)
}

func writeAck(w http.ResponseWriter, status int, ok bool) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": ok})
}
