package domain

import "strings"

const (
	// CodeAlphabet holds the characters a pairing code is drawn from. The
	// digits 0 and 1 and the letter O are left out so a code read off a
	// screen cannot be mistyped.
	CodeAlphabet = "ABCDEFGHIJKLMNPQRSTUVWXYZ23456789"

	// CodeLength is the fixed number of characters in a pairing code.
	CodeLength = 12
)

// NormalizeCode trims and upper-cases a code supplied by a client and reports
// whether the result is well formed.
func NormalizeCode(raw string) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if len(code) != CodeLength {
		return "", false
	}
	for i := 0; i < len(code); i++ {
		if strings.IndexByte(CodeAlphabet, code[i]) < 0 {
			return "", false
		}
	}
	return code, true
}
