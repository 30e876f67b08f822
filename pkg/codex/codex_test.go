package codex

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlphabet(t *testing.T) {
	t.Parallel()

	require.Len(t, Alphabet, 32)

	// 256 must divide evenly by the alphabet size or Draw would be biased.
	require.Zero(t, 256%len(Alphabet))

	for _, confusable := range []string{"0", "O", "1", "I"} {
		require.NotContains(t, Alphabet, confusable)
	}
}

func TestDraw(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(`^[A-Z0-9]{8}$`)

	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		code := Draw()
		require.Len(t, code, Length)
		require.Regexp(t, pattern, code)
		for _, r := range code {
			require.Contains(t, Alphabet, string(r))
		}
		seen[code] = struct{}{}
	}

	// 1000 draws from a 32^8 space colliding would mean a broken RNG.
	require.Len(t, seen, 1000)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ABCD2345", Normalize("  abcd2345\n"))
	require.Equal(t, "ABCD2345", Normalize("ABCD2345"))
	require.Equal(t, "", Normalize("   "))
}

func TestValid(t *testing.T) {
	t.Parallel()

	require.True(t, Valid(Draw()))
	require.True(t, Valid(strings.Repeat("A", Length)))

	require.False(t, Valid(""))
	require.False(t, Valid("SHORT"))
	require.False(t, Valid(strings.Repeat("A", Length+1)))
	require.False(t, Valid("ABCD234O")) // O is not in the alphabet
	require.False(t, Valid("abcd2345")) // not normalized
}
