package derive

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testHexA = "2a247335dd9f59396a61822655998a9ddcd52912017d5f402a6140a8792b18426e90adf165d9e3dad5f954f850273e31739e1032fc970aef62cef036cb3e2143"
	testB64A = "KiRzNd2fWTlqYYImVZmKndzVKRIBfV9AKmFAqHkrGEJukK3xZdnj2tX5VPhQJz4xc54QMvyXCu9izvA2yz4hQw=="
	testHexB = "840006653e9ac9e95117a15c915caab81662918e925de9e004f774ff82d7079a40d4d27b1b372657c61d46d470304c88c788b3a4527ad074d1dccbee5dbaa99a"
	testB64B = "hAAGZT6ayelRF6FckVyquBZikY6SXengBPd0/4LXB5pA1NJ7GzcmV8YdRtRwMEyIx4izpFJ60HTR3MvuXbqpmg=="
)

func TestEncodeHexToBase64(t *testing.T) {
	for hexText, b64 := range map[string]string{testHexA: testB64A, testHexB: testB64B} {
		encoded, err := Encode(HexRaw(hexText), FormatBase64, 1000)
		require.Nil(t, err)
		require.Equal(t, b64, encoded)
	}
}

func TestEncodeHexPassthrough(t *testing.T) {
	encoded, err := Encode(HexRaw(testHexA), FormatHex, 1000)
	require.Nil(t, err)
	require.Equal(t, testHexA, encoded)
}

func TestEncodeBytesIgnoresHexFormat(t *testing.T) {
	raw := BytesRaw([]byte{0xde, 0xad, 0xbe, 0xef})
	for _, format := range []Format{FormatBase64, FormatHex} {
		encoded, err := Encode(raw, format, 100)
		require.Nil(t, err)
		require.Equal(t, "3q2+7w==", encoded)
	}
}

func TestEncodeBadHex(t *testing.T) {
	for _, bad := range []string{"xyz", "abc", testHexA[:127] + "g"} {
		encoded, err := Encode(HexRaw(bad), FormatBase64, 1000)
		require.True(t, errors.Is(err, ErrEncoding), "input %q", bad)
		require.Empty(t, encoded)
	}
}

func TestEncodeTruncation(t *testing.T) {
	tcs := []struct {
		name   string
		maxLen int
		expect string
	}{
		{"longer-than-output", 500, testB64A},
		{"exact-length", len(testB64A), testB64A},
		{"shorter", 20, testB64A[:20]},
		{"below-base64-block", 3, "KiR"},
		{"zero", 0, ""},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := Encode(HexRaw(testHexA), FormatBase64, tc.maxLen)
			require.Nil(t, err)
			require.Equal(t, tc.expect, encoded)
		})
	}
}

func TestEncodeNegativeLength(t *testing.T) {
	_, err := Encode(HexRaw(testHexA), FormatBase64, -1)
	require.True(t, errors.Is(err, ErrInvalidParams))
}

func TestTruncateCountsCharacters(t *testing.T) {
	require.Equal(t, "äö", Truncate("äöü", 2))
	require.Equal(t, "äöü", Truncate("äöü", 3))
	require.Equal(t, "", Truncate("äöü", -5))
	require.Equal(t, strings.Repeat("a", 10), Truncate(strings.Repeat("a", 10), 10))
}

func TestFormatString(t *testing.T) {
	require.Equal(t, "base64", FormatBase64.String())
	require.Equal(t, "base16", FormatHex.String())
}
