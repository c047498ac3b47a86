package transport

import (
	"errors"
	"fmt"
)

// ErrMalformedInput reports problem data of the wrong size, non-numeric
// tokens, negative quantities or non-finite/negative costs. It is fatal:
// no optimization step runs on malformed data.
var ErrMalformedInput = errors.New("transport: malformed input")

// ErrShapeMismatch reports an allocation whose shape differs from the problem
// (or from another allocation it is combined with).
var ErrShapeMismatch = errors.New("transport: allocation shape mismatch")

// malformed wraps ErrMalformedInput together with an optional cause so that
// both errors.Is(err, ErrMalformedInput) and errors.Is(err, cause) hold.
func malformed(cause error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if cause == nil {
		return fmt.Errorf("%w: %s", ErrMalformedInput, msg)
	}

	return fmt.Errorf("%w: %s: %w", ErrMalformedInput, msg, cause)
}
