package derive

import "fmt"

// Mode selects the pipeline and carries its parameters.
// It stays fixed for a whole invocation.
type Mode struct {
	// Legacy selects the iterated SHA3-512 pipeline instead of Argon2id.
	Legacy bool

	// Rounds is the legacy iteration count.
	Rounds int

	// Base16 keeps legacy digests as hex instead of converting them to base64.
	Base16 bool

	// Argon2 are the cost parameters of the modern pipeline.
	Argon2 Argon2Params
}

// LegacyMode returns a mode using the iterated hash.
func LegacyMode(rounds int, base16 bool) Mode {
	return Mode{
		Legacy: true,
		Rounds: rounds,
		Base16: base16,
		Argon2: DefaultArgon2Params(),
	}
}

// ModernMode returns a mode using Argon2id with params.
func ModernMode(params Argon2Params) Mode {
	return Mode{Argon2: params}
}

func (m Mode) String() string {
	if m.Legacy {
		return fmt.Sprintf("legacy(rounds=%d, %s)", m.Rounds, m.Format())
	}

	return fmt.Sprintf(
		"argon2id(m=%d, t=%d, p=%d, len=%d)",
		m.Argon2.MemoryKiB, m.Argon2.Time, m.Argon2.Threads, m.Argon2.KeyLen,
	)
}

// Format returns the encoding used for the output of this mode.
func (m Mode) Format() Format {
	if m.Legacy && m.Base16 {
		return FormatHex
	}

	return FormatBase64
}

// Validate checks the parameters of the selected pipeline only.
func (m Mode) Validate() error {
	if m.Legacy {
		if m.Rounds < 1 {
			return fmt.Errorf("%w: legacy rounds must be >= 1, got %d", ErrInvalidParams, m.Rounds)
		}

		return nil
	}

	return m.Argon2.Validate()
}

// Derive runs the selected pipeline without encoding its output.
func (m Mode) Derive(password, salt []byte) (Raw, error) {
	if err := m.Validate(); err != nil {
		return Raw{}, err
	}

	if m.Legacy {
		digest, err := LegacyHash(password, salt, m.Rounds)
		if err != nil {
			return Raw{}, err
		}

		return HexRaw(digest), nil
	}

	key, err := Argon2Key(password, salt, m.Argon2)
	if err != nil {
		return Raw{}, err
	}

	return BytesRaw(key), nil
}

// Pipeline derives and encodes a hash: the mode picks the pipeline,
// its output always goes through Encode.
func Pipeline(m Mode, password, salt []byte, maxLen int) (string, error) {
	if maxLen < 0 {
		return "", fmt.Errorf("%w: max length must be >= 0, got %d", ErrInvalidParams, maxLen)
	}

	raw, err := m.Derive(password, salt)
	if err != nil {
		return "", err
	}

	defer raw.Wipe()
	return Encode(raw, m.Format(), maxLen)
}
