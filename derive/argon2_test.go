package derive

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// cheapParams keep the tests fast; the defaults need 2 GiB of memory.
var cheapParams = Argon2Params{
	MemoryKiB: 64,
	Time:      1,
	Threads:   1,
	KeyLen:    64,
}

func TestDefaultArgon2Params(t *testing.T) {
	params := DefaultArgon2Params()
	require.Equal(t, uint32(2097152), params.MemoryKiB)
	require.Equal(t, uint32(1), params.Time)
	require.Equal(t, uint8(1), params.Threads)
	require.Equal(t, uint32(1024), params.KeyLen)
	require.Nil(t, params.Validate())
}

func TestArgon2KeyKnownVector(t *testing.T) {
	params := Argon2Params{MemoryKiB: 64, Time: 1, Threads: 1, KeyLen: 24}
	key, err := Argon2Key([]byte("password"), []byte("somesalt"), params)
	require.Nil(t, err)
	require.Equal(t, "655ad15eac652dc59f7170a7332bf49b8469be1fdb9c28bb", hex.EncodeToString(key))
}

// Published argon2id test vector of the reference implementation
// (version 0x13, t=2, m=64MiB, p=1).
func TestArgon2KeyReferenceVector(t *testing.T) {
	if testing.Short() {
		t.Skip("needs 64MiB of memory")
	}

	params := Argon2Params{MemoryKiB: 1 << 16, Time: 2, Threads: 1, KeyLen: 32}
	key, err := Argon2Key([]byte("password"), []byte("somesalt"), params)
	require.Nil(t, err)
	require.Equal(
		t,
		"09316115d5cf24ed5a15a31a3ba326e5cf32edc24702987c02b6566f61913cf7",
		hex.EncodeToString(key),
	)
}

func TestArgon2KeyDeterministic(t *testing.T) {
	a, err := Argon2Key([]byte("test"), []byte("saltsalt"), cheapParams)
	require.Nil(t, err)
	require.Len(t, a, 64)

	b, err := Argon2Key([]byte("test"), []byte("saltsalt"), cheapParams)
	require.Nil(t, err)
	require.Equal(t, a, b)

	c, err := Argon2Key([]byte("test"), []byte("pepperpepper"), cheapParams)
	require.Nil(t, err)
	require.NotEqual(t, a, c)
}

func TestArgon2ParamsValidate(t *testing.T) {
	tcs := []struct {
		name   string
		params Argon2Params
	}{
		{"zero-time", Argon2Params{MemoryKiB: 64, Time: 0, Threads: 1, KeyLen: 32}},
		{"zero-threads", Argon2Params{MemoryKiB: 64, Time: 1, Threads: 0, KeyLen: 32}},
		{"too-little-memory", Argon2Params{MemoryKiB: 31, Time: 1, Threads: 4, KeyLen: 32}},
		{"zero-key-len", Argon2Params{MemoryKiB: 64, Time: 1, Threads: 1, KeyLen: 0}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.True(t, errors.Is(tc.params.Validate(), ErrInvalidParams))

			key, err := Argon2Key([]byte("test"), []byte("saltsalt"), tc.params)
			require.True(t, errors.Is(err, ErrInvalidParams))
			require.Nil(t, key)
		})
	}
}

func TestArgon2KeyShortSalt(t *testing.T) {
	key, err := Argon2Key([]byte("test"), []byte("salt"), cheapParams)
	require.True(t, errors.Is(err, ErrKDF))
	require.Nil(t, key)
}
