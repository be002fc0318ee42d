package ops

// Store defines the persistence interface required by the contact manager.
// The concrete implementation is storage.Gateway, but this interface allows
// alternative backends (in-memory, failing writers, etc.) for testing.
type Store interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Path() string
}
