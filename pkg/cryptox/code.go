package cryptox

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateCode returns a string of length characters sampled uniformly, with
// replacement, from alphabet. Sampling goes through rand.Int so there is no
// modulo bias for alphabets whose size is not a power of two.
func GenerateCode(alphabet string, length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("code length must be positive, got %d", length)
	}
	if len(alphabet) < 2 {
		return "", fmt.Errorf("code alphabet needs at least 2 characters, got %d", len(alphabet))
	}

	size := big.NewInt(int64(len(alphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", fmt.Errorf("failed to generate random code: %w", err)
		}
		out[i] = alphabet[n.Int64()]
	}

	return string(out), nil
}
