package paging

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidToken is returned when a page token cannot be decoded at any stage.
	ErrInvalidToken = errors.New("invalid page token")
	// ErrInvalidArgument is returned for caller errors such as a non-positive page size.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrSource marks failures reported by a Source.
	ErrSource = errors.New("source error")
	// ErrNoProgress is returned by Walk when a non-terminal page is empty.
	ErrNoProgress = errors.New("source made no progress")
)

// SourceError wraps a failure returned by Source.Count or Source.FetchSlice.
type SourceError struct {
	Op  string
	Err error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Op, e.Err)
}

// Unwrap returns the backend error unchanged.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is reports ErrSource so callers can match any source failure.
func (e *SourceError) Is(target error) bool {
	return target == ErrSource
}

func invalidToken(stage string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %s", ErrInvalidToken, stage)
	}
	return fmt.Errorf("%w: %s: %v", ErrInvalidToken, stage, err)
}
