package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finovai/finov/schema"
)

// Round is one question/answer exchange of an advisory session.
type Round struct {
	Question string
	Answer   string
	At       time.Time
}

// ConversationStore holds per-session advisory chat history. History is
// append-only and read by a single logical session at a time; the store
// is still safe for concurrent sessions.
type ConversationStore interface {
	// NewSession allocates a fresh session id.
	NewSession() string

	// LastNRounds returns up to n most recent rounds, oldest first.
	LastNRounds(sessionID string, n int) []Round

	// AppendRound records one completed exchange.
	AppendRound(sessionID string, round Round)

	// Clear drops a session's history.
	Clear(sessionID string)
}

// NewInMemoryStore creates an in-process store keeping at most maxRounds
// rounds per session. Suitable for single-instance deployments.
func NewInMemoryStore(maxRounds int) ConversationStore {
	if maxRounds <= 0 {
		maxRounds = 10
	}
	return &inMemoryStore{
		sessions:  make(map[string][]Round),
		maxRounds: maxRounds,
	}
}

type inMemoryStore struct {
	mu        sync.RWMutex
	sessions  map[string][]Round
	maxRounds int
}

func (s *inMemoryStore) NewSession() string {
	return uuid.NewString()
}

func (s *inMemoryStore) LastNRounds(sessionID string, n int) []Round {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rounds := s.sessions[sessionID]
	if len(rounds) == 0 {
		return nil
	}
	if n <= 0 || n >= len(rounds) {
		n = len(rounds)
	}
	out := make([]Round, n)
	copy(out, rounds[len(rounds)-n:])
	return out
}

func (s *inMemoryStore) AppendRound(sessionID string, round Round) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rounds := append(s.sessions[sessionID], round)
	if len(rounds) > s.maxRounds {
		rounds = rounds[len(rounds)-s.maxRounds:]
	}
	s.sessions[sessionID] = rounds
}

func (s *inMemoryStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
}

// ToMessages flattens rounds into alternating user/assistant chat
// messages, oldest first.
func ToMessages(rounds []Round) []schema.ChatMessage {
	out := make([]schema.ChatMessage, 0, len(rounds)*2)
	for _, r := range rounds {
		out = append(out,
			schema.ChatMessage{Role: schema.RoleUser, Content: r.Question},
			schema.ChatMessage{Role: schema.RoleAssistant, Content: r.Answer},
		)
	}
	return out
}
