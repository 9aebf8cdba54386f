package binget

import (
	"errors"
	"fmt"
)

// Error codes (exported consts for IDE completion and type safety by
// convention).
const (
	CodeInsufficientInput = "insufficient_input"
	CodeSourceError       = "source_error"
	CodeOverflow          = "overflow"
	CodePayloadDecode     = "payload_decode"
)

// DecodeError is the structured error produced by the engine and the layers
// on top of it. Consumed is the total bytes successfully consumed before
// the failure, so callers can tell where in the stream decoding broke down.
type DecodeError struct {
	Code     string
	Consumed int64 // Cursor at the point of failure.
	Message  string
	Cause    error // Optional: underlying error.
}

func (e *DecodeError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("binget: %s after %d bytes: %s", e.Code, e.Consumed, e.Message)
	}
	return fmt.Sprintf("binget: %s after %d bytes", e.Code, e.Consumed)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// AsDecodeError extracts a *DecodeError using errors.As internally.
func AsDecodeError(err error) (*DecodeError, bool) {
	if err == nil {
		return nil, false
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// IsInsufficientInput reports whether err is an insufficient-input failure:
// the chunk source was exhausted before a primitive's byte requirement was
// met.
func IsInsufficientInput(err error) bool {
	de, ok := AsDecodeError(err)
	return ok && de.Code == CodeInsufficientInput
}

func insufficient(consumed int64) *DecodeError {
	return &DecodeError{Code: CodeInsufficientInput, Consumed: consumed, Message: "not enough bytes"}
}
