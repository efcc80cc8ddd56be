package input

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"5551234567", "5551234567"},
		{"(555) 123-456", "555123456"},
		{"+1 (555) 123-4567", "15551234567"},
		{"abc", ""},
		{"0x12\t3\n", "0123"},
		{"٣٤٥", ""}, // arabic-indic digits are not 0-9
		{"１２３", ""},
		{"5 5 5", "555"},
	}
	for _, tc := range cases {
		if got := SanitizePhone(tc.in); got != tc.want {
			t.Fatalf("SanitizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizePhoneKeepsOnlyDigitsInOrder(t *testing.T) {
	inputs := []string{
		"", "a1b2c3", "9-8-7-6", "(03) 9999 0000", "🙂1🙂2", "phone: 0400 111 222 ext 9",
		strings.Repeat("1a", 64),
	}
	for _, in := range inputs {
		got := SanitizePhone(in)
		for _, r := range got {
			require.True(t, r >= '0' && r <= '9', "non-digit %q in %q", r, got)
		}
		// got must be a subsequence of in
		i := 0
		for _, r := range in {
			if i < len(got) && rune(got[i]) == r {
				i++
			}
		}
		require.Equal(t, len(got), i, "order not preserved for %q", in)
	}
}

func TestSanitizePhoneIdempotent(t *testing.T) {
	for _, in := range []string{"", "(555) 123-456", "x", "12 34 56 78 90", "٣1"} {
		once := SanitizePhone(in)
		require.Equal(t, once, SanitizePhone(once))
	}
}

func TestSanitizeAnyKeepsInput(t *testing.T) {
	require.Equal(t, "12ab 3", Sanitize("12ab 3", Any))
}

func TestComplete(t *testing.T) {
	require.True(t, Complete("123456", 6))
	require.False(t, Complete("12345", 6))
	require.False(t, Complete("1234567", 6))
	require.True(t, Complete("ééé", 3))
}

func TestFieldApply(t *testing.T) {
	require.Equal(t, "5551234567", PhoneField().Apply("555-123-4567"))
	require.Equal(t, "12-34", CodeField().Apply("12-34"))
	require.True(t, CodeField().Mask)
	require.True(t, PhoneField().SubmitOnEnter)
}
