package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// GenerateRandomToken returns a 64-char hex token from 32 random
// bytes. Used for magic links and invite links.
func GenerateRandomToken() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the process has no entropy source;
		// nothing sensible to do but stop.
		panic("auth: crypto/rand unavailable: " + err.Error())
	}
	return hex.EncodeToString(buf)
}

// HashToken returns the hex SHA-256 of a token. Invites store only
// this hash; lookups hash the presented token and match on the digest.
func HashToken(token string) string {
	if token == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
