package minigames

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"questacademy/internal/models"
)

// Attempt ties a session to its owner and the quest it came from.
// Attempts are ephemeral; they live in memory only and die with the
// process.
type Attempt struct {
	ID         string
	Username   string
	SubjectKey string
	QuestName  string
	Game       models.MiniGame
	Session    Session
	StartedAt  time.Time
}

// Manager owns all in-flight attempts, keyed by attempt ID.
type Manager struct {
	mu       sync.Mutex
	attempts map[string]*Attempt
	rng      *rand.Rand
	now      func() time.Time
}

// NewManager creates a manager seeded from the current time.
func NewManager() *Manager {
	return newManager(rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
}

func newManager(rng *rand.Rand, now func() time.Time) *Manager {
	return &Manager{
		attempts: make(map[string]*Attempt),
		rng:      rng,
		now:      now,
	}
}

// Start creates a new attempt for the given game. The session kind
// follows the game variant.
func (m *Manager) Start(username, subjectKey, questName string, game models.MiniGame) *Attempt {
	m.mu.Lock()
	defer m.mu.Unlock()

	var session Session
	switch g := game.(type) {
	case models.SequenceGame:
		// Each session gets its own RNG so resets never share state
		session = NewSequenceSession(g, rand.New(rand.NewSource(m.rng.Int63())))
	case models.MatchingGame:
		session = NewMatchingSession(g, rand.New(rand.NewSource(m.rng.Int63())))
	case models.TrueFalseGame:
		session = NewTrueFalseSession(g)
	case models.QuickQuizGame:
		session = NewQuickQuizSession(g)
	}

	attempt := &Attempt{
		ID:         uuid.NewString(),
		Username:   username,
		SubjectKey: subjectKey,
		QuestName:  questName,
		Game:       game,
		Session:    session,
		StartedAt:  m.now(),
	}
	m.attempts[attempt.ID] = attempt
	return attempt
}

// Get returns the attempt with the given ID if it belongs to username.
func (m *Manager) Get(id, username string) (*Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	attempt, ok := m.attempts[id]
	if !ok || attempt.Username != username {
		return nil, ErrAttemptNotFound
	}
	return attempt, nil
}

// Remove drops the attempt. Missing IDs are ignored.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.attempts, id)
}
