package progression

import (
	"time"

	"questacademy/internal/models"
	"questacademy/internal/profile"
)

// DateLayout is the calendar-date format used for streak bookkeeping.
// Dates are client-local with no timezone pinning; a user crossing a
// timezone boundary around midnight may see an early streak reset.
const DateLayout = "2006-01-02"

// milestoneStreaks are the streak lengths that earn a special notification.
var milestoneStreaks = map[int]bool{7: true, 30: true}

// Engine applies streak transitions and XP accumulation to profiles.
type Engine struct {
	profiles *profile.Store
}

// NewEngine creates a progression engine over the given profile store.
func NewEngine(profiles *profile.Store) *Engine {
	return &Engine{profiles: profiles}
}

// Result describes the outcome of one completion event.
type Result struct {
	Reward        models.Reward `json:"reward"`
	Streak        int           `json:"streak"`
	StreakChanged bool          `json:"streakChanged"`
	// Milestone is set when the new streak hits a milestone length; the
	// client shows its notification delayed after the completion toast.
	Milestone bool `json:"milestone"`
}

// Restore reconciles a user's persisted streak at session start: a streak
// last fed today or yesterday survives, anything older is reset to zero and
// the reset is persisted.
func (e *Engine) Restore(username string, now time.Time) (int, error) {
	streak, lastDate, err := e.profiles.Streak(username)
	if err != nil {
		return 0, err
	}
	if streak == 0 || lastDate == "" {
		return streak, nil
	}

	today := now.Format(DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(DateLayout)
	if lastDate == today || lastDate == yesterday {
		return streak, nil
	}

	if err := e.profiles.SaveStreak(username, 0, ""); err != nil {
		return 0, err
	}
	return 0, nil
}

// Complete records one task completion: XP is granted unconditionally, the
// streak advances at most once per calendar day.
func (e *Engine) Complete(username string, reward models.Reward, now time.Time) (*Result, error) {
	if err := e.profiles.AddXP(username, reward.XP); err != nil {
		return nil, err
	}

	streak, lastDate, err := e.profiles.Streak(username)
	if err != nil {
		return nil, err
	}

	today := now.Format(DateLayout)
	if lastDate == today {
		// Already completed a task today
		return &Result{Reward: reward, Streak: streak}, nil
	}

	yesterday := now.AddDate(0, 0, -1).Format(DateLayout)
	newStreak := 1
	if lastDate == yesterday {
		newStreak = streak + 1
	}

	if err := e.profiles.SaveStreak(username, newStreak, today); err != nil {
		return nil, err
	}

	return &Result{
		Reward:        reward,
		Streak:        newStreak,
		StreakChanged: true,
		Milestone:     milestoneStreaks[newStreak],
	}, nil
}
