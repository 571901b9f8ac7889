package derive

import "errors"

// Sentinel errors returned by the engine. Use errors.Is to check for them;
// the returned errors usually carry some more context.
var (
	// ErrEncoding is returned when the hex text of a legacy digest
	// cannot be decoded into bytes.
	ErrEncoding = errors.New("derive: could not convert base16 to base64")

	// ErrInvalidParams is returned before any derivation is attempted,
	// when the mode or its cost parameters are out of range.
	ErrInvalidParams = errors.New("derive: invalid derivation parameters")

	// ErrKDF is returned when the memory-hard derivation itself failed.
	ErrKDF = errors.New("derive: could not complete argon2 hash")

	// ErrMismatch is returned by Verify when the two passes of create mode
	// produced different results.
	ErrMismatch = errors.New("derive: results did not match")
)
