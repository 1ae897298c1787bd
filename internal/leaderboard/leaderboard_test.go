package leaderboard

import (
	"testing"

	"questacademy/internal/auth"
	"questacademy/internal/kvstore"
	"questacademy/internal/profile"
)

func setup(t *testing.T) (*Projection, *auth.Service, *profile.Store) {
	t.Helper()
	kv := kvstore.NewMemoryStore()
	credentials := auth.NewService(kv)
	profiles := profile.NewStore(kv)
	return NewProjection(credentials, profiles), credentials, profiles
}

func TestRankedDescending(t *testing.T) {
	proj, credentials, profiles := setup(t)

	users := map[string]int{"an": 50, "binh": 200, "chi": 120}
	for username, xp := range users {
		if err := credentials.Register(username, "secret123"); err != nil {
			t.Fatalf("Register(%q) error = %v", username, err)
		}
		if err := profiles.AddXP(username, xp); err != nil {
			t.Fatalf("AddXP(%q) error = %v", username, err)
		}
	}

	entries, err := proj.Ranked()
	if err != nil {
		t.Fatalf("Ranked() error = %v", err)
	}

	want := []string{"binh", "chi", "an"}
	if len(entries) != len(want) {
		t.Fatalf("Ranked() returned %d entries, want %d", len(entries), len(want))
	}
	for i, username := range want {
		if entries[i].Username != username {
			t.Errorf("position %d: got %q, want %q", i, entries[i].Username, username)
		}
	}
}

func TestRankedStableTies(t *testing.T) {
	proj, credentials, _ := setup(t)

	// All users at 0 XP: order must match the username enumeration order
	for _, username := range []string{"chi", "an", "binh"} {
		if err := credentials.Register(username, "secret123"); err != nil {
			t.Fatalf("Register(%q) error = %v", username, err)
		}
	}

	enumerated, err := credentials.Usernames()
	if err != nil {
		t.Fatalf("Usernames() error = %v", err)
	}

	entries, err := proj.Ranked()
	if err != nil {
		t.Fatalf("Ranked() error = %v", err)
	}
	if len(entries) != len(enumerated) {
		t.Fatalf("Ranked() returned %d entries, want %d", len(entries), len(enumerated))
	}
	for i := range enumerated {
		if entries[i].Username != enumerated[i] {
			t.Errorf("position %d: got %q, want %q (enumeration order)", i, entries[i].Username, enumerated[i])
		}
	}
}

func TestRankedDefaultsForMissingProfile(t *testing.T) {
	proj, credentials, profiles := setup(t)

	if err := credentials.Register("an", "secret123"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := credentials.Register("binh", "secret123"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	// Only binh has profile data
	if err := profiles.AddXP("binh", 10); err != nil {
		t.Fatalf("AddXP() error = %v", err)
	}

	entries, err := proj.Ranked()
	if err != nil {
		t.Fatalf("Ranked() error = %v", err)
	}
	if entries[0].Username != "binh" || entries[0].XP != 10 {
		t.Errorf("entries[0] = %+v, want binh with 10 XP", entries[0])
	}
	if entries[1].Username != "an" || entries[1].XP != 0 {
		t.Errorf("entries[1] = %+v, want an with 0 XP", entries[1])
	}
}
