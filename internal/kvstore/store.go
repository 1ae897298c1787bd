package kvstore

// Store is a durable, process-wide, string-keyed, string-valued store.
// Implementations must be safe for use from concurrent request handlers;
// each call is atomic on its own, there are no multi-key transactions.
type Store interface {
	// Get returns the value for key and whether the key was present.
	Get(key string) (string, bool, error)

	// Set writes value under key, overwriting any existing value.
	Set(key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
}

// Well-known keys. userData entries are keyed per user, see UserDataKey.
const (
	KeyUsers       = "users"       // JSON map: username -> password digest
	KeyCurrentUser = "currentUser" // plain username string
	KeyLastUser    = "lastUser"    // plain username string
	KeyTheme       = "theme"       // global theme fallback, pre-login
)

// UserDataKey returns the profile blob key for a username.
func UserDataKey(username string) string {
	return "userData_" + username
}
