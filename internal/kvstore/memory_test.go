package kvstore

import "testing"

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	if _, ok, err := s.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v, want absent", ok, err)
	}

	if err := s.Set("k", "v1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if v, ok, _ := s.Get("k"); !ok || v != "v1" {
		t.Errorf("Get(k) = %q, %v, want v1", v, ok)
	}

	// Overwrite
	if err := s.Set("k", "v2"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if v, _, _ := s.Get("k"); v != "v2" {
		t.Errorf("Get(k) after overwrite = %q, want v2", v)
	}

	if err := s.Remove("k"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, ok, _ := s.Get("k"); ok {
		t.Error("Get(k) after Remove should be absent")
	}

	// Removing an absent key is not an error
	if err := s.Remove("k"); err != nil {
		t.Errorf("Remove(absent) error = %v", err)
	}
}

func TestUserDataKey(t *testing.T) {
	if got := UserDataKey("minh"); got != "userData_minh" {
		t.Errorf("UserDataKey() = %q, want userData_minh", got)
	}
}
