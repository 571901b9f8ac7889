package derive

import "runtime"

// Secret holds a password or a salt. The buffer is owned by the Secret
// and overwritten with zeros by Wipe.
type Secret struct {
	buf []byte
}

// NewSecret takes ownership of buf. The caller should not use buf afterwards.
func NewSecret(buf []byte) *Secret {
	return &Secret{buf: buf}
}

// Bytes returns the underlying buffer. It is only valid until Wipe is called.
func (s *Secret) Bytes() []byte {
	if s == nil {
		return nil
	}

	return s.buf
}

// Len returns the number of bytes in the secret.
func (s *Secret) Len() int {
	if s == nil {
		return 0
	}

	return len(s.buf)
}

// Wipe overwrites the secret with zeros. It is safe to call more than once
// and on a nil secret.
func (s *Secret) Wipe() {
	if s == nil {
		return
	}

	zeroBytes(s.buf)
	s.buf = nil
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}

	runtime.KeepAlive(b)
}

// AcquireFunc produces a fresh secret, usually by asking the user.
type AcquireFunc func() (*Secret, error)

// WithSecrets acquires the password and then the salt, calls fn with both
// and wipes them again on every way out of fn: normal return, error or panic.
// If acquiring the salt fails, the already acquired password is wiped too.
func WithSecrets(password, salt AcquireFunc, fn func(password, salt *Secret) error) error {
	pwd, err := password()
	if err != nil {
		return err
	}

	defer pwd.Wipe()

	slt, err := salt()
	if err != nil {
		return err
	}

	defer slt.Wipe()
	return fn(pwd, slt)
}
