package derive

import (
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	// DefaultArgon2MemoryKiB is the memory cost in KiB (2 GiB).
	DefaultArgon2MemoryKiB uint32 = 1 << 21

	// DefaultArgon2Time is the number of passes over the memory.
	DefaultArgon2Time uint32 = 1

	// DefaultArgon2Threads is the degree of parallelism.
	DefaultArgon2Threads uint8 = 1

	// DefaultArgon2KeyLen is the length of the raw output in bytes.
	DefaultArgon2KeyLen uint32 = 1024

	// MinArgon2SaltLen is the shortest salt Argon2 accepts (RFC 9106).
	MinArgon2SaltLen = 8
)

// Argon2Params are the cost parameters of the modern pipeline.
// Changing any of them changes every derived hash.
type Argon2Params struct {
	// MemoryKiB is the memory cost in KiB. Minimum: 8 * Threads.
	MemoryKiB uint32

	// Time is the number of iterations. Minimum: 1.
	Time uint32

	// Threads is the degree of parallelism. Minimum: 1.
	Threads uint8

	// KeyLen is the number of bytes produced. Minimum: 1.
	KeyLen uint32
}

// DefaultArgon2Params returns the parameters all existing modern hashes
// were derived with.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		MemoryKiB: DefaultArgon2MemoryKiB,
		Time:      DefaultArgon2Time,
		Threads:   DefaultArgon2Threads,
		KeyLen:    DefaultArgon2KeyLen,
	}
}

// Validate checks that the parameters can be handed to Argon2id.
func (p Argon2Params) Validate() error {
	if p.Time < 1 {
		return fmt.Errorf("%w: argon2 time must be >= 1, got %d", ErrInvalidParams, p.Time)
	}

	if p.Threads < 1 {
		return fmt.Errorf("%w: argon2 threads must be >= 1, got %d", ErrInvalidParams, p.Threads)
	}

	if p.MemoryKiB < 8*uint32(p.Threads) {
		return fmt.Errorf(
			"%w: argon2 memory (%d KiB) must be >= 8*threads (%d KiB)",
			ErrInvalidParams, p.MemoryKiB, 8*uint32(p.Threads),
		)
	}

	if p.KeyLen < 1 {
		return fmt.Errorf("%w: argon2 key length must be >= 1, got %d", ErrInvalidParams, p.KeyLen)
	}

	return nil
}

// Argon2Key derives p.KeyLen bytes from password and salt with Argon2id.
// The output only depends on the inputs; no salt is generated internally.
// The call blocks until the derivation is done.
func Argon2Key(password, salt []byte, p Argon2Params) (key []byte, err error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if len(salt) < MinArgon2SaltLen {
		return nil, fmt.Errorf(
			"%w: salt must be at least %d bytes, got %d",
			ErrKDF, MinArgon2SaltLen, len(salt),
		)
	}

	// argon2 panics on parameters it cannot work with.
	defer func() {
		if r := recover(); r != nil {
			key, err = nil, fmt.Errorf("%w: %v", ErrKDF, r)
		}
	}()

	return argon2.IDKey(password, salt, p.Time, p.MemoryKiB, p.Threads, p.KeyLen), nil
}
