package cmd

const (
	// Success is the same as EXIT_SUCCESS in C
	Success = iota

	// BadArgs passed to cli; not our fault.
	BadArgs

	// BadPassword means reading the password or salt failed (e.g. Ctrl-C).
	BadPassword

	// BadConfig means the config file could not be read or has invalid values.
	BadConfig

	// DerivationFailed means the hash could not be computed or encoded.
	DerivationFailed

	// Mismatch means the two passes of --create yielded different hashes.
	// Most likely a typo by the user.
	Mismatch

	// UnknownError is an uncategorized error, probably our fault.
	UnknownError
)
