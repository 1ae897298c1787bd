package minigames

import "errors"

var (
	ErrAttemptNotFound  = errors.New("minigames: attempt not found")
	ErrAlreadySubmitted = errors.New("minigames: attempt already submitted")
	ErrIndexOutOfRange  = errors.New("minigames: index out of range")
	ErrInvalidChoice    = errors.New("minigames: invalid choice")
	ErrAlreadyPaired    = errors.New("minigames: item already paired")
)

// Outcome is the graded result of a submitted attempt. Complete is set
// only when every item was answered correctly; a partial score never
// triggers quest completion.
type Outcome struct {
	Score    int  `json:"score"`
	Total    int  `json:"total"`
	Complete bool `json:"complete"`
}

// Session is the per-attempt state machine shared by all game kinds.
// A session starts in progress, moves to submitted exactly once, and
// Reset returns it to a fresh in-progress state. Implementations
// serialize all methods; handlers may hit one attempt concurrently.
type Session interface {
	Submit() (Outcome, error)
	Reset()
	Submitted() bool
}
