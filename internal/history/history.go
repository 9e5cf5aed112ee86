package history

import (
	"sync"

	"chat-relay/internal/llm"
)

// Window is the maximum number of turns retained per chat. Older turns are
// evicted oldest-first on append.
const Window = 20

// Manager is the in-process conversation cache: chat id -> bounded, ordered
// turn buffer. State lives for the process lifetime only; a restart resets
// every chat to empty.
type Manager struct {
	mu       sync.RWMutex
	sessions map[int64][]llm.Message
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[int64][]llm.Message)}
}

func (m *Manager) AppendUser(chatID int64, text string) {
	m.append(chatID, llm.Message{Role: "user", Content: text})
}

func (m *Manager) AppendAssistant(chatID int64, text string) {
	m.append(chatID, llm.Message{Role: "assistant", Content: text})
}

func (m *Manager) append(chatID int64, msg llm.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[chatID] = trim(append(m.sessions[chatID], msg))
}

// Get returns a snapshot of the chat's buffer, oldest first. Later appends
// do not affect a slice already returned.
func (m *Manager) Get(chatID int64) []llm.Message {
	m.mu.RLock()
	defer m.mu.RUnlock()
	es := m.sessions[chatID]
	out := make([]llm.Message, len(es))
	copy(out, es)
	return out
}

// Context assembles the context window for a chat: turns fetched fresh from
// the platform first, then the cached buffer, trimmed to the last Window
// entries. Callers must read context before appending the turn being
// answered, so the active query never shows up in its own context.
func (m *Manager) Context(chatID int64, fresh []llm.Message) []llm.Message {
	cached := m.Get(chatID)
	merged := make([]llm.Message, 0, len(fresh)+len(cached))
	merged = append(merged, fresh...)
	merged = append(merged, cached...)
	return trim(merged)
}

func trim(msgs []llm.Message) []llm.Message {
	if len(msgs) <= Window {
		return msgs
	}
	return msgs[len(msgs)-Window:]
}
