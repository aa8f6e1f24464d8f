package service

import (
	"errors"
	"strings"
)

var (
	ErrIDRequired        = errors.New("id is required")
	ErrNotFound          = errors.New("record not found")
	ErrNoData            = errors.New("no measurements recorded")
	ErrReaderNil         = errors.New("reader is nil")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// ValidationError collects the individual range violations of a measurement
// payload. All violations are reported at once rather than failing on the first.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "invalid measurement: " + strings.Join(e.Violations, "; ")
}

// IsValidation reports whether err is a measurement validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
