package derive

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// LegacyHexLen is the length of a legacy digest in hex characters.
const LegacyHexLen = 2 * 64

// Digest returns the lowercase hex SHA3-512 digest of text.
func Digest(text []byte) string {
	sum := sha3.Sum512(text)
	return hex.EncodeToString(sum[:])
}

// LegacyHash derives the legacy digest of password and salt.
//
// The initial text is salt||password. Every round replaces the text with the
// hex digest of the previous text. Rounds after the first one therefore hash
// the 128 hex characters of the last digest, not its 64 raw bytes. Older
// hashes depend on this, so it must stay that way.
func LegacyHash(password, salt []byte, rounds int) (string, error) {
	if rounds < 1 {
		return "", fmt.Errorf("%w: legacy rounds must be >= 1, got %d", ErrInvalidParams, rounds)
	}

	initial := make([]byte, 0, len(salt)+len(password))
	initial = append(initial, salt...)
	initial = append(initial, password...)
	defer zeroBytes(initial)

	var text [LegacyHexLen]byte
	sum := sha3.Sum512(initial)
	hex.Encode(text[:], sum[:])

	for round := 1; round < rounds; round++ {
		sum = sha3.Sum512(text[:])
		hex.Encode(text[:], sum[:])
	}

	return string(text[:]), nil
}
