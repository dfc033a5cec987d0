package catalog_filter

import (
	"errors"
	"fmt"
)

var (
	// ErrStaleResult is returned when a fetch finished after a newer filter
	// change had already started; the fetched data is dropped.
	ErrStaleResult = errors.New("catalog_filter: result superseded by a newer filter change")

	// ErrNotLoaded is returned by transitions that need a catalog before Load ran.
	ErrNotLoaded = errors.New("catalog_filter: catalog not loaded")
)

// RepositoryError wraps any backend failure on a catalog fetch step.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("catalog repository: %s: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// wrapRepositoryError tags err with op unless it already is a RepositoryError.
func wrapRepositoryError(op string, err error) error {
	if err == nil {
		return nil
	}
	var repoErr *RepositoryError
	if errors.As(err, &repoErr) {
		return err
	}
	return &RepositoryError{Op: op, Err: err}
}
