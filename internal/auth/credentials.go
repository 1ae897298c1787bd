package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"questacademy/internal/kvstore"
	"questacademy/internal/validation"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Service manages credentials and the single-slot session state. Credentials
// live in the users key as a JSON map of username to password digest. The
// digest is deliberately a plain base64 encoding: this mirrors a mock local
// store, not real security.
type Service struct {
	store kvstore.Store
}

// NewService creates a new credential service on the given store.
func NewService(store kvstore.Store) *Service {
	return &Service{store: store}
}

// Register creates a new credential. Returns ErrUsernameTaken if the
// username already exists; the existing digest is left untouched.
func (s *Service) Register(username, password string) error {
	if err := validation.ValidateUsername(username); err != nil {
		return err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return err
	}

	users, err := s.users()
	if err != nil {
		return err
	}
	if _, exists := users[username]; exists {
		return ErrUsernameTaken
	}

	users[username] = digest(password)
	return s.saveUsers(users)
}

// Login checks the supplied password against the stored digest. On success
// it records the username as both the active and the last-used user.
func (s *Service) Login(username, password string) error {
	users, err := s.users()
	if err != nil {
		return err
	}

	stored, exists := users[username]
	if !exists || stored != digest(password) {
		return ErrInvalidCredentials
	}

	if err := s.store.Set(kvstore.KeyCurrentUser, username); err != nil {
		return fmt.Errorf("failed to set current user: %w", err)
	}
	if err := s.store.Set(kvstore.KeyLastUser, username); err != nil {
		return fmt.Errorf("failed to set last user: %w", err)
	}
	return nil
}

// Logout clears the active session. The last-used username is kept for
// login form prefill.
func (s *Service) Logout() error {
	if err := s.store.Remove(kvstore.KeyCurrentUser); err != nil {
		return fmt.Errorf("failed to clear current user: %w", err)
	}
	return nil
}

// CurrentUser returns the active username, or "" when nobody is logged in.
func (s *Service) CurrentUser() (string, error) {
	username, _, err := s.store.Get(kvstore.KeyCurrentUser)
	return username, err
}

// LastUser returns the last-used username, or "" if none was recorded.
func (s *Service) LastUser() (string, error) {
	username, _, err := s.store.Get(kvstore.KeyLastUser)
	return username, err
}

// Usernames returns every registered username in a stable order.
func (s *Service) Usernames() ([]string, error) {
	users, err := s.users()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(users))
	for name := range users {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *Service) users() (map[string]string, error) {
	raw, ok, err := s.store.Get(kvstore.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	if !ok {
		return map[string]string{}, nil
	}
	users := map[string]string{}
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

func (s *Service) saveUsers(users map[string]string) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := s.store.Set(kvstore.KeyUsers, string(raw)); err != nil {
		return fmt.Errorf("failed to write users: %w", err)
	}
	return nil
}

func digest(password string) string {
	return base64.StdEncoding.EncodeToString([]byte(password))
}
