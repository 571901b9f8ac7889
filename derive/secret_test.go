package derive

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSecretWipe(t *testing.T) {
	buf := []byte("hunter2")
	secret := NewSecret(buf)
	require.Equal(t, 7, secret.Len())
	require.Equal(t, "hunter2", string(secret.Bytes()))

	secret.Wipe()
	require.Equal(t, make([]byte, 7), buf)
	require.Nil(t, secret.Bytes())
	require.Equal(t, 0, secret.Len())

	// Second wipe and nil secrets are fine:
	secret.Wipe()
	var nilSecret *Secret
	nilSecret.Wipe()
	require.Equal(t, 0, nilSecret.Len())
}

func acquireFrom(buf []byte) AcquireFunc {
	return func() (*Secret, error) {
		return NewSecret(buf), nil
	}
}

func TestWithSecretsWipesOnReturn(t *testing.T) {
	pwd, salt := []byte("password"), []byte("saltsalt")
	err := WithSecrets(acquireFrom(pwd), acquireFrom(salt), func(p, s *Secret) error {
		require.Equal(t, "password", string(p.Bytes()))
		require.Equal(t, "saltsalt", string(s.Bytes()))
		return nil
	})

	require.Nil(t, err)
	require.Equal(t, make([]byte, 8), pwd)
	require.Equal(t, make([]byte, 8), salt)
}

func TestWithSecretsWipesOnError(t *testing.T) {
	pwd, salt := []byte("password"), []byte("saltsalt")
	err := WithSecrets(acquireFrom(pwd), acquireFrom(salt), func(p, s *Secret) error {
		return ErrKDF
	})

	require.True(t, errors.Is(err, ErrKDF))
	require.Equal(t, make([]byte, 8), pwd)
	require.Equal(t, make([]byte, 8), salt)
}

func TestWithSecretsWipesOnPanic(t *testing.T) {
	pwd, salt := []byte("password"), []byte("saltsalt")

	func() {
		defer func() { require.NotNil(t, recover()) }()
		_ = WithSecrets(acquireFrom(pwd), acquireFrom(salt), func(p, s *Secret) error {
			panic("boom")
		})
	}()

	require.Equal(t, make([]byte, 8), pwd)
	require.Equal(t, make([]byte, 8), salt)
}

func TestWithSecretsSaltFailure(t *testing.T) {
	pwd := []byte("password")
	failure := errors.New("eof")

	called := false
	err := WithSecrets(
		acquireFrom(pwd),
		func() (*Secret, error) { return nil, failure },
		func(p, s *Secret) error {
			called = true
			return nil
		},
	)

	require.Equal(t, failure, err)
	require.False(t, called)
	require.Equal(t, make([]byte, 8), pwd)
}
