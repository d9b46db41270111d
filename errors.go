package secondbrain

import "fmt"

// ValidationError reports a missing or malformed field on a mutation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an update or delete against an id that is not in its
// collection. The operation leaves state unchanged.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// StorageCorruptionError reports a stored collection value that is present
// but not parseable as the expected structure. Readers recover by treating
// the collection as empty.
type StorageCorruptionError struct {
	Collection string
	Err        error
}

func (e *StorageCorruptionError) Error() string {
	return fmt.Sprintf("collection %q is corrupted: %v", e.Collection, e.Err)
}

func (e *StorageCorruptionError) Unwrap() error { return e.Err }
