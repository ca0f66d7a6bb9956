package memory

import (
	"testing"
	"time"

	"github.com/finovai/finov/schema"
)

func TestStore_AppendAndReplay(t *testing.T) {
	s := NewInMemoryStore(10)
	id := s.NewSession()

	s.AppendRound(id, Round{Question: "q1", Answer: "a1", At: time.Now()})
	s.AppendRound(id, Round{Question: "q2", Answer: "a2", At: time.Now()})

	rounds := s.LastNRounds(id, 10)
	if len(rounds) != 2 {
		t.Fatalf("expected 2 rounds, got %d", len(rounds))
	}
	if rounds[0].Question != "q1" || rounds[1].Question != "q2" {
		t.Errorf("rounds out of order: %+v", rounds)
	}
}

func TestStore_CapsRounds(t *testing.T) {
	s := NewInMemoryStore(3)
	id := s.NewSession()

	for _, q := range []string{"q1", "q2", "q3", "q4", "q5"} {
		s.AppendRound(id, Round{Question: q})
	}

	rounds := s.LastNRounds(id, 0)
	if len(rounds) != 3 {
		t.Fatalf("expected cap of 3 rounds, got %d", len(rounds))
	}
	if rounds[0].Question != "q3" {
		t.Errorf("oldest rounds should be evicted, got %+v", rounds)
	}
}

func TestStore_LastN(t *testing.T) {
	s := NewInMemoryStore(10)
	id := s.NewSession()
	for _, q := range []string{"q1", "q2", "q3"} {
		s.AppendRound(id, Round{Question: q})
	}

	rounds := s.LastNRounds(id, 2)
	if len(rounds) != 2 || rounds[0].Question != "q2" {
		t.Errorf("expected the 2 most recent rounds oldest-first, got %+v", rounds)
	}
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	s := NewInMemoryStore(10)
	a, b := s.NewSession(), s.NewSession()
	if a == b {
		t.Fatal("session ids must be unique")
	}

	s.AppendRound(a, Round{Question: "q"})
	if got := s.LastNRounds(b, 10); len(got) != 0 {
		t.Errorf("session b should be empty, got %+v", got)
	}

	s.Clear(a)
	if got := s.LastNRounds(a, 10); len(got) != 0 {
		t.Errorf("cleared session should be empty, got %+v", got)
	}
}

func TestToMessages(t *testing.T) {
	msgs := ToMessages([]Round{{Question: "q1", Answer: "a1"}})
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Role != schema.RoleUser || msgs[0].Content != "q1" {
		t.Errorf("unexpected user message: %+v", msgs[0])
	}
	if msgs[1].Role != schema.RoleAssistant || msgs[1].Content != "a1" {
		t.Errorf("unexpected assistant message: %+v", msgs[1])
	}
}
