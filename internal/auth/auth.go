package auth

// Service answers whether a chat may use the bot. An empty allowlist means
// every chat is allowed.
type Service struct {
	allowedChats map[int64]struct{}
}

func New(chatIDs []int64) *Service {
	s := &Service{allowedChats: make(map[int64]struct{})}
	for _, id := range chatIDs {
		s.allowedChats[id] = struct{}{}
	}
	return s
}

func (s *Service) IsAllowed(chatID int64) bool {
	if len(s.allowedChats) == 0 {
		return true
	}
	_, ok := s.allowedChats[chatID]
	return ok
}
