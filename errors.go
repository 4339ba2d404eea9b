package confusion

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrLengthMismatch indicates the predicted and actual sequences
	// differ in length.
	ErrLengthMismatch = errors.New("confusion: predicted and actual length mismatch")
)
