package leaderboard

import (
	"sort"

	"questacademy/internal/auth"
	"questacademy/internal/profile"
)

// Entry is one leaderboard row.
type Entry struct {
	Username string `json:"username"`
	XP       int    `json:"xp"`
	Avatar   string `json:"avatar,omitempty"`
}

// Projection is a read-only aggregation over all registered users. It is
// recomputed on every call; there is no caching.
type Projection struct {
	credentials *auth.Service
	profiles    *profile.Store
}

// NewProjection creates a leaderboard over the given stores.
func NewProjection(credentials *auth.Service, profiles *profile.Store) *Projection {
	return &Projection{credentials: credentials, profiles: profiles}
}

// Ranked returns every registered user with their XP total and avatar,
// sorted descending by XP. Ties keep the enumeration order of the
// underlying username list.
func (p *Projection) Ranked() ([]Entry, error) {
	usernames, err := p.credentials.Usernames()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(usernames))
	for _, username := range usernames {
		data, err := p.profiles.Data(username)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{
			Username: username,
			XP:       data.XP,
			Avatar:   data.Avatar,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].XP > entries[j].XP
	})

	return entries, nil
}
