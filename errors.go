package opine

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownName is returned for a topic or rating name that is not a
	// member of its enumeration.
	ErrUnknownName = errors.New("unknown name")

	// ErrDuplicateName is returned when two enumeration members have the
	// same case-insensitive name.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrDuplicateEmoticon is returned when an emoticon table lists the same
	// emoticon twice.
	ErrDuplicateEmoticon = errors.New("duplicate emoticon")

	// ErrMissingValue is returned for a blank mandatory CSV cell.
	ErrMissingValue = errors.New("value must not be empty")
)

// A CSVError locates a problem in a CSV resource. Row and Column are 1-based;
// 0 means the position is unknown.
type CSVError struct {
	Path   string
	Row    int
	Column int
	Err    error
}

func (e *CSVError) Error() string {
	switch {
	case e.Row > 0 && e.Column > 0:
		return fmt.Sprintf("%s (R%dC%d): %v", e.Path, e.Row, e.Column, e.Err)
	case e.Row > 0:
		return fmt.Sprintf("%s (R%d): %v", e.Path, e.Row, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
}

func (e *CSVError) Unwrap() error {
	return e.Err
}
