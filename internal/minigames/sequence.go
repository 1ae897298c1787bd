package minigames

import (
	"math/rand"
	"sync"

	"questacademy/internal/models"
)

// SequenceSession tracks one attempt at restoring a shuffled list to
// its canonical order. Safe for concurrent use; every session owns its
// RNG so resets never contend across attempts.
type SequenceSession struct {
	game models.SequenceGame

	mu        sync.Mutex
	rng       *rand.Rand
	order     []int // order[i] is the canonical index shown at position i
	submitted bool
}

// NewSequenceSession shuffles the items and returns a fresh session.
func NewSequenceSession(game models.SequenceGame, rng *rand.Rand) *SequenceSession {
	s := &SequenceSession{game: game, rng: rng}
	s.shuffle()
	return s
}

func (s *SequenceSession) shuffle() {
	n := len(s.game.Items)
	s.order = make([]int, n)
	for i := range s.order {
		s.order[i] = i
	}
	if n < 2 {
		return
	}
	// Reshuffle until the starting arrangement is not already solved
	for {
		s.rng.Shuffle(n, func(i, j int) {
			s.order[i], s.order[j] = s.order[j], s.order[i]
		})
		if !s.solved() {
			return
		}
	}
}

func (s *SequenceSession) solved() bool {
	for i, idx := range s.order {
		if idx != i {
			return false
		}
	}
	return true
}

// Items returns the items in their current arrangement.
func (s *SequenceSession) Items() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]string, len(s.order))
	for i, idx := range s.order {
		items[i] = s.game.Items[idx]
	}
	return items
}

// Move swaps the item at index with its neighbor: delta -1 moves it up,
// +1 moves it down.
func (s *SequenceSession) Move(index, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted {
		return ErrAlreadySubmitted
	}
	if delta != -1 && delta != 1 {
		return ErrInvalidChoice
	}
	target := index + delta
	if index < 0 || index >= len(s.order) || target < 0 || target >= len(s.order) {
		return ErrIndexOutOfRange
	}
	s.order[index], s.order[target] = s.order[target], s.order[index]
	return nil
}

func (s *SequenceSession) Submit() (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted {
		return Outcome{}, ErrAlreadySubmitted
	}
	s.submitted = true
	out := Outcome{Total: len(s.order)}
	for i, idx := range s.order {
		if idx == i {
			out.Score++
		}
	}
	out.Complete = out.Total > 0 && out.Score == out.Total
	return out, nil
}

func (s *SequenceSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitted = false
	s.shuffle()
}

func (s *SequenceSession) Submitted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitted
}
