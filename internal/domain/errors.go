package domain

import "fmt"

// PersistenceError reports a failed write of the backing store. It is fatal
// for the triggering request.
type PersistenceError struct {
	Path string
	Err  error
}

func (e PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist store %s: %v", e.Path, e.Err)
}

func (e PersistenceError) Unwrap() error {
	return e.Err
}

// Is enables errors.Is matching on PersistenceError regardless of fields.
func (e PersistenceError) Is(target error) bool {
	_, ok := target.(PersistenceError)
	if ok {
		return true
	}
	_, ok = target.(*PersistenceError)
	return ok
}

// ErrPersistence is the sentinel for store write failures.
var ErrPersistence = PersistenceError{}
