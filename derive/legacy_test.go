package derive

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigest(t *testing.T) {
	require.Equal(
		t,
		"840006653e9ac9e95117a15c915caab81662918e925de9e004f774ff82d7079a40d4d27b1b372657c61d46d470304c88c788b3a4527ad074d1dccbee5dbaa99a",
		Digest([]byte("hello world")),
	)
}

func TestLegacyHash(t *testing.T) {
	tcs := []struct {
		name     string
		password string
		salt     string
		rounds   int
		expect   string
	}{
		{
			name:     "one-round",
			password: "test",
			salt:     "salt",
			rounds:   1,
			expect:   "2a247335dd9f59396a61822655998a9ddcd52912017d5f402a6140a8792b18426e90adf165d9e3dad5f954f850273e31739e1032fc970aef62cef036cb3e2143",
		}, {
			name:     "twelve-rounds",
			password: "test",
			salt:     "salt",
			rounds:   12,
			expect:   "bee77f7ef2ce70d1a073b71da9c5ea74013dcfe70f3a5a46db160984958f49614e39788cfc0f84d086686f2c94f4c5fafb14f55959548eaa5dc06f0a42a6435c",
		}, {
			name:     "utf8-input",
			password: "pässwörd",
			salt:     "salzig",
			rounds:   3,
			expect:   "a279da119ecaf5ec1dc63ee19a0858f258d8b8a2136148b4188f456e5fabbde2e42a5cf3b223b30238c7854eb6ee150e16914174730f503c025e3664a10f9b12",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			digest, err := LegacyHash([]byte(tc.password), []byte(tc.salt), tc.rounds)
			require.Nil(t, err)
			require.Equal(t, tc.expect, digest)
			require.Len(t, digest, LegacyHexLen)
		})
	}
}

func TestLegacyHashRehashesHexText(t *testing.T) {
	first, err := LegacyHash([]byte("test"), []byte("salt"), 1)
	require.Nil(t, err)

	second, err := LegacyHash([]byte("test"), []byte("salt"), 2)
	require.Nil(t, err)

	// The second round hashes the hex text of the first one.
	require.Equal(t, Digest([]byte(first)), second)
}

func TestLegacyHashDeterministic(t *testing.T) {
	a, err := LegacyHash([]byte("correct horse"), []byte("battery staple"), 100)
	require.Nil(t, err)

	b, err := LegacyHash([]byte("correct horse"), []byte("battery staple"), 100)
	require.Nil(t, err)

	require.Equal(t, a, b)
}

func TestLegacyHashDoesNotTouchInput(t *testing.T) {
	password, salt := []byte("test"), []byte("salt")
	_, err := LegacyHash(password, salt, 1)
	require.Nil(t, err)

	require.Equal(t, "test", string(password))
	require.Equal(t, "salt", string(salt))
}

func TestLegacyHashBadRounds(t *testing.T) {
	for _, rounds := range []int{0, -1} {
		digest, err := LegacyHash([]byte("test"), []byte("salt"), rounds)
		require.True(t, errors.Is(err, ErrInvalidParams))
		require.Empty(t, digest)
	}
}
