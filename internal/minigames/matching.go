package minigames

import (
	"math/rand"
	"sync"

	"questacademy/internal/models"
)

// MatchingSession tracks one attempt at pairing prompts with answers.
// Answers are shown shuffled; grading uses the canonical pairing where
// Answers[i] belongs to Prompts[i]. Once paired, both items are
// consumed until Reset. Safe for concurrent use.
type MatchingSession struct {
	game models.MatchingGame

	mu          sync.Mutex
	rng         *rand.Rand
	answerOrder []int       // answerOrder[i] is the canonical index of the answer shown at position i
	pairs       map[int]int // prompt index -> canonical answer index
	submitted   bool
}

// NewMatchingSession shuffles the answer column and returns a fresh session.
func NewMatchingSession(game models.MatchingGame, rng *rand.Rand) *MatchingSession {
	s := &MatchingSession{game: game, rng: rng}
	s.shuffle()
	return s
}

func (s *MatchingSession) shuffle() {
	n := len(s.game.Answers)
	s.answerOrder = make([]int, n)
	for i := range s.answerOrder {
		s.answerOrder[i] = i
	}
	s.rng.Shuffle(n, func(i, j int) {
		s.answerOrder[i], s.answerOrder[j] = s.answerOrder[j], s.answerOrder[i]
	})
	s.pairs = make(map[int]int, n)
}

// Prompts returns the prompt column in canonical order.
func (s *MatchingSession) Prompts() []string { return s.game.Prompts }

// Answers returns the answer column in its shuffled display order.
func (s *MatchingSession) Answers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	answers := make([]string, len(s.answerOrder))
	for i, idx := range s.answerOrder {
		answers[i] = s.game.Answers[idx]
	}
	return answers
}

// Pairs returns the player's current pairing as prompt index to
// displayed answer position.
func (s *MatchingSession) Pairs() map[int]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	display := make(map[int]int, len(s.pairs))
	for prompt, canonical := range s.pairs {
		for pos, idx := range s.answerOrder {
			if idx == canonical {
				display[prompt] = pos
				break
			}
		}
	}
	return display
}

// Pair links the prompt at promptIndex to the answer displayed at
// answerIndex. Both sides are consumed by the pairing; re-pairing
// either one fails until Reset.
func (s *MatchingSession) Pair(promptIndex, answerIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted {
		return ErrAlreadySubmitted
	}
	if promptIndex < 0 || promptIndex >= len(s.game.Prompts) {
		return ErrIndexOutOfRange
	}
	if answerIndex < 0 || answerIndex >= len(s.answerOrder) {
		return ErrIndexOutOfRange
	}
	if _, taken := s.pairs[promptIndex]; taken {
		return ErrAlreadyPaired
	}
	canonical := s.answerOrder[answerIndex]
	for _, answer := range s.pairs {
		if answer == canonical {
			return ErrAlreadyPaired
		}
	}
	s.pairs[promptIndex] = canonical
	return nil
}

func (s *MatchingSession) Submit() (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted {
		return Outcome{}, ErrAlreadySubmitted
	}
	s.submitted = true
	out := Outcome{Total: len(s.game.Prompts)}
	for prompt, answer := range s.pairs {
		if prompt == answer {
			out.Score++
		}
	}
	out.Complete = out.Total > 0 && out.Score == out.Total
	return out, nil
}

func (s *MatchingSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitted = false
	s.shuffle()
}

func (s *MatchingSession) Submitted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitted
}
