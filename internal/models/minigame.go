package models

// MiniGameKind tags the closed set of mini-game variants.
type MiniGameKind string

const (
	MiniGameSequence  MiniGameKind = "sequence"
	MiniGameMatching  MiniGameKind = "matching"
	MiniGameTrueFalse MiniGameKind = "true_false"
	MiniGameQuickQuiz MiniGameKind = "quick_quiz"
)

// MiniGame is the closed sum over the four game variants. Each variant is
// immutable static content; the player's attempt state lives in the
// minigames package, scoped to the attempt's lifetime.
type MiniGame interface {
	Kind() MiniGameKind
	GameTitle() string
	isMiniGame()
}

// SequenceGame asks the player to restore Items to the given canonical order.
type SequenceGame struct {
	Title        string
	Instructions string
	Items        []string
}

func (SequenceGame) Kind() MiniGameKind { return MiniGameSequence }
func (g SequenceGame) GameTitle() string { return g.Title }
func (SequenceGame) isMiniGame() {}

// MatchingGame pairs prompts with answers; Answers[i] is the correct match
// for Prompts[i].
type MatchingGame struct {
	Title        string
	Instructions string
	Prompts      []string
	Answers      []string
}

func (MatchingGame) Kind() MiniGameKind { return MiniGameMatching }
func (g MatchingGame) GameTitle() string { return g.Title }
func (MatchingGame) isMiniGame() {}

// Statement is one true/false item.
type Statement struct {
	Text   string `json:"text"`
	IsTrue bool   `json:"isTrue"`
}

// TrueFalseGame asks the player to judge each statement independently.
type TrueFalseGame struct {
	Title        string
	Instructions string
	Statements   []Statement
}

func (TrueFalseGame) Kind() MiniGameKind { return MiniGameTrueFalse }
func (g TrueFalseGame) GameTitle() string { return g.Title }
func (TrueFalseGame) isMiniGame() {}

// QuickQuizGame embeds quiz grading as a mini-game; unlike the quest-level
// quiz, full marks are required for the completion signal.
type QuickQuizGame struct {
	Title        string
	Instructions string
	Questions    []QuizQuestion
}

func (QuickQuizGame) Kind() MiniGameKind { return MiniGameQuickQuiz }
func (g QuickQuizGame) GameTitle() string { return g.Title }
func (QuickQuizGame) isMiniGame() {}
