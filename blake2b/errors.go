package blake2b

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrStreamingUnsupported is returned by NewStream when the configured
// primitive only supports one-shot hashing.
var ErrStreamingUnsupported = errors.New("blake2b: primitive does not support streaming")

// LengthError reports a configuration value outside the bounds accepted by
// the library. It is only returned at construction time.
type LengthError struct {
	Field    string
	Got      int
	Min, Max int
}

func (e *LengthError) Error() string {
	if e.Min == 0 {
		return fmt.Sprintf("blake2b: %s must be at most %d bytes, got %d", e.Field, e.Max, e.Got)
	}

	return fmt.Sprintf("blake2b: %s must be between %d and %d bytes, got %d", e.Field, e.Min, e.Max, e.Got)
}

// CryptoError reports that the primitive failed to compute a digest. The
// failed call is not retried.
type CryptoError struct {
	Op  string
	Err error
}

func (e *CryptoError) Error() string {
	return "blake2b: " + e.Op + " failed: " + e.Err.Error()
}

func (e *CryptoError) Unwrap() error { return e.Err }

// Cause lets errors.Cause from github.com/pkg/errors reach the primitive's
// error.
func (e *CryptoError) Cause() error { return e.Err }
