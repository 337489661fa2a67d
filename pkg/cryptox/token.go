package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// Token sizes in bytes before encoding.
const (
	TokenSize128 = 16 // 22 chars base64url
	TokenSize256 = 32 // 43 chars base64url
)

// GenerateToken returns size random bytes as an unpadded base64url string.
func GenerateToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// GenerateSessionRef returns a new opaque session reference. The prefix keeps
// references recognisable in client logs without revealing anything else.
func GenerateSessionRef() (string, error) {
	token, err := GenerateToken(TokenSize256)
	if err != nil {
		return "", err
	}
	return "sess_" + token, nil
}

// FingerprintToken returns the base64url SHA-256 of token (43 chars). Stored
// in place of the raw value so a leaked table does not leak live references.
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
