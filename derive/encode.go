package derive

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"unicode/utf8"
)

// Format is the textual representation of a derived hash.
type Format int

const (
	// FormatBase64 is standard base64 with padding.
	FormatBase64 Format = iota
	// FormatHex is lowercase hexadecimal. Only legacy digests can be emitted as hex.
	FormatHex
)

func (f Format) String() string {
	switch f {
	case FormatBase64:
		return "base64"
	case FormatHex:
		return "base16"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// Raw is the output of a pipeline before encoding.
// It holds either hex text (legacy) or raw bytes (modern).
type Raw struct {
	hex   string
	bytes []byte
	isHex bool
}

// HexRaw wraps the hex text of a legacy digest.
func HexRaw(text string) Raw {
	return Raw{hex: text, isHex: true}
}

// BytesRaw wraps the raw output of the memory-hard KDF.
func BytesRaw(buf []byte) Raw {
	return Raw{bytes: buf}
}

// Wipe zeroes the byte buffer of a raw output. Hex text is a Go string
// and cannot be cleared.
func (r Raw) Wipe() {
	zeroBytes(r.bytes)
}

// Encode converts raw into format and truncates it to maxLen characters.
//
// Hex text is decoded and re-encoded as base64 unless format is FormatHex.
// Raw bytes are always encoded as base64, regardless of format.
func Encode(raw Raw, format Format, maxLen int) (string, error) {
	if maxLen < 0 {
		return "", fmt.Errorf("%w: max length must be >= 0, got %d", ErrInvalidParams, maxLen)
	}

	var encoded string

	switch {
	case !raw.isHex:
		encoded = base64.StdEncoding.EncodeToString(raw.bytes)
	case format == FormatHex:
		encoded = raw.hex
	default:
		buf, err := hex.DecodeString(raw.hex)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrEncoding, err)
		}

		encoded = base64.StdEncoding.EncodeToString(buf)
		zeroBytes(buf)
	}

	return Truncate(encoded, maxLen), nil
}

// Truncate returns the first maxLen characters of s, or s itself if it is
// not longer than that. Cutting base64 this way may leave a non-canonical
// tail; that is intended, the result is only used as a string.
func Truncate(s string, maxLen int) string {
	if maxLen < 0 {
		maxLen = 0
	}

	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	count := 0
	for idx := range s {
		if count == maxLen {
			return s[:idx]
		}

		count++
	}

	return s
}
