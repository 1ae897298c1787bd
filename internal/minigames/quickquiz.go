package minigames

import (
	"sync"

	"questacademy/internal/models"
)

// QuickQuizSession tracks one attempt at a quick quiz. Unlike the
// quest-level quiz, completion requires a perfect score. Safe for
// concurrent use.
type QuickQuizSession struct {
	game models.QuickQuizGame

	mu        sync.Mutex
	selected  []string
	submitted bool
}

// NewQuickQuizSession returns a fresh session with no options selected.
func NewQuickQuizSession(game models.QuickQuizGame) *QuickQuizSession {
	return &QuickQuizSession{
		game:     game,
		selected: make([]string, len(game.Questions)),
	}
}

// Questions returns the quiz questions including their option lists.
func (s *QuickQuizSession) Questions() []models.QuizQuestion { return s.game.Questions }

// Selected returns a snapshot of the player's current picks; empty
// string means unanswered.
func (s *QuickQuizSession) Selected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]string, len(s.selected))
	copy(snapshot, s.selected)
	return snapshot
}

// Select records the player's pick for the question at index. The
// option must be one of the question's listed options.
func (s *QuickQuizSession) Select(index int, option string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted {
		return ErrAlreadySubmitted
	}
	if index < 0 || index >= len(s.game.Questions) {
		return ErrIndexOutOfRange
	}
	valid := false
	for _, opt := range s.game.Questions[index].Options {
		if opt == option {
			valid = true
			break
		}
	}
	if !valid {
		return ErrInvalidChoice
	}
	s.selected[index] = option
	return nil
}

func (s *QuickQuizSession) Submit() (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted {
		return Outcome{}, ErrAlreadySubmitted
	}
	s.submitted = true
	out := Outcome{Total: len(s.game.Questions)}
	for i, q := range s.game.Questions {
		if s.selected[i] == q.CorrectAnswer {
			out.Score++
		}
	}
	out.Complete = out.Total > 0 && out.Score == out.Total
	return out, nil
}

func (s *QuickQuizSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitted = false
	s.selected = make([]string, len(s.game.Questions))
}

func (s *QuickQuizSession) Submitted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitted
}
