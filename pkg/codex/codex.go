// Package codex generates and normalizes human-typable invite codes.
//
// Codes are fixed-length draws from a 32-symbol alphabet that excludes the
// visually ambiguous glyphs 0/O and 1/I, so a code read off a letter or a
// QR poster can be typed back without transcription errors.
package codex

import (
	"crypto/rand"
	"fmt"
	"strings"
)

const (
	// Alphabet is the 32-symbol code alphabet. 32 divides 256 evenly, so a
	// single random byte modulo len(Alphabet) is a uniform draw.
	Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	// Length is the fixed code length. 32^8 is ~1.1e12, which keeps the
	// collision probability against any realistic active-code count near
	// zero; uniqueness is still enforced at the store layer.
	Length = 8
)

// Draw returns a new random code. It never returns an error from the
// underlying entropy source short of the platform RNG being broken, in
// which case it panics rather than minting predictable codes.
func Draw() string {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("codex: entropy source failed: %v", err))
	}

	out := make([]byte, Length)
	for i, b := range buf {
		out[i] = Alphabet[int(b)%len(Alphabet)]
	}
	return string(out)
}

// Normalize maps raw user input onto canonical code form: surrounding
// whitespace removed and letters upcased. It does not validate.
func Normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Valid reports whether s is a well-formed code: exactly Length symbols,
// all drawn from Alphabet. Input is expected to be normalized already.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(Alphabet, rune(s[i])) {
			return false
		}
	}
	return true
}
