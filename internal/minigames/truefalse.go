package minigames

import (
	"sync"

	"questacademy/internal/models"
)

// TrueFalseSession tracks one attempt at judging a list of statements.
// Safe for concurrent use.
type TrueFalseSession struct {
	game models.TrueFalseGame

	mu        sync.Mutex
	answers   []*bool
	submitted bool
}

// NewTrueFalseSession returns a fresh session with no statements answered.
func NewTrueFalseSession(game models.TrueFalseGame) *TrueFalseSession {
	return &TrueFalseSession{
		game:    game,
		answers: make([]*bool, len(game.Statements)),
	}
}

// Statements returns the statement texts without their truth values.
func (s *TrueFalseSession) Statements() []string {
	texts := make([]string, len(s.game.Statements))
	for i, st := range s.game.Statements {
		texts[i] = st.Text
	}
	return texts
}

// Answers returns a snapshot of the player's judgments; nil means
// unanswered.
func (s *TrueFalseSession) Answers() []*bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]*bool, len(s.answers))
	copy(snapshot, s.answers)
	return snapshot
}

// Answer records the player's judgment for the statement at index.
func (s *TrueFalseSession) Answer(index int, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted {
		return ErrAlreadySubmitted
	}
	if index < 0 || index >= len(s.answers) {
		return ErrIndexOutOfRange
	}
	v := value
	s.answers[index] = &v
	return nil
}

func (s *TrueFalseSession) Submit() (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted {
		return Outcome{}, ErrAlreadySubmitted
	}
	s.submitted = true
	out := Outcome{Total: len(s.game.Statements)}
	for i, st := range s.game.Statements {
		if s.answers[i] != nil && *s.answers[i] == st.IsTrue {
			out.Score++
		}
	}
	out.Complete = out.Total > 0 && out.Score == out.Total
	return out, nil
}

func (s *TrueFalseSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitted = false
	s.answers = make([]*bool, len(s.game.Statements))
}

func (s *TrueFalseSession) Submitted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitted
}
