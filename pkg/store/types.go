package store

// Config holds configuration for a record store.
type Config struct {
	Path string // Path to the record file
}

// Errors
var (
	ErrNotFound      = &StoreError{"record not found"}
	ErrDuplicateRoll = &StoreError{"roll number already exists"}
)

// StoreError represents a record store error.
type StoreError struct {
	Message string
}

func (e *StoreError) Error() string {
	return e.Message
}
