package profile

import (
	"encoding/json"
	"fmt"

	"questacademy/internal/kvstore"
	"questacademy/internal/models"
)

// Store persists per-user profile data under userData_<username>. Profiles
// are created lazily on first mutation; reads of absent users return the
// zero-value defaults (streak 0, xp 0, everything else unset).
type Store struct {
	kv kvstore.Store
}

// NewStore creates a profile store on the given key-value store.
func NewStore(kv kvstore.Store) *Store {
	return &Store{kv: kv}
}

// Data returns the full profile blob for a user.
func (s *Store) Data(username string) (models.UserData, error) {
	var data models.UserData
	raw, ok, err := s.kv.Get(kvstore.UserDataKey(username))
	if err != nil {
		return data, fmt.Errorf("failed to read profile: %w", err)
	}
	if !ok {
		return data, nil
	}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return data, fmt.Errorf("failed to decode profile: %w", err)
	}
	return data, nil
}

func (s *Store) save(username string, data models.UserData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := s.kv.Set(kvstore.UserDataKey(username), string(raw)); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}

// SaveAvatar stores an opaque avatar reference (typically a data URL).
func (s *Store) SaveAvatar(username, avatar string) error {
	data, err := s.Data(username)
	if err != nil {
		return err
	}
	data.Avatar = avatar
	return s.save(username, data)
}

// Avatar returns the stored avatar reference, or "" when unset.
func (s *Store) Avatar(username string) (string, error) {
	data, err := s.Data(username)
	if err != nil {
		return "", err
	}
	return data.Avatar, nil
}

// SaveStreak stores the streak count and last-completion date together.
// An empty date clears the stored date.
func (s *Store) SaveStreak(username string, streak int, lastCompletedDate string) error {
	data, err := s.Data(username)
	if err != nil {
		return err
	}
	data.Streak = streak
	data.LastCompletedDate = lastCompletedDate
	return s.save(username, data)
}

// Streak returns the streak count and last-completion date.
func (s *Store) Streak(username string) (int, string, error) {
	data, err := s.Data(username)
	if err != nil {
		return 0, "", err
	}
	return data.Streak, data.LastCompletedDate, nil
}

// SaveTheme stores the user's theme preference ("light" or "dark").
func (s *Store) SaveTheme(username, theme string) error {
	data, err := s.Data(username)
	if err != nil {
		return err
	}
	data.Theme = theme
	return s.save(username, data)
}

// Theme returns the user's theme preference, or "" when unset.
func (s *Store) Theme(username string) (string, error) {
	data, err := s.Data(username)
	if err != nil {
		return "", err
	}
	return data.Theme, nil
}

// AddXP adds xp to the user's total. XP never decreases.
func (s *Store) AddXP(username string, xp int) error {
	if xp <= 0 {
		return nil
	}
	data, err := s.Data(username)
	if err != nil {
		return err
	}
	data.XP += xp
	return s.save(username, data)
}

// XP returns the user's cumulative XP total.
func (s *Store) XP(username string) (int, error) {
	data, err := s.Data(username)
	if err != nil {
		return 0, err
	}
	return data.XP, nil
}

// SaveGlobalTheme stores the pre-login theme fallback.
func (s *Store) SaveGlobalTheme(theme string) error {
	if err := s.kv.Set(kvstore.KeyTheme, theme); err != nil {
		return fmt.Errorf("failed to write theme: %w", err)
	}
	return nil
}

// GlobalTheme returns the pre-login theme fallback, or "" when unset.
func (s *Store) GlobalTheme() (string, error) {
	theme, _, err := s.kv.Get(kvstore.KeyTheme)
	return theme, err
}
