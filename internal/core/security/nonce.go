package security

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NonceBytes is the entropy width of a payment nonce. 32 bytes keeps the
// collision probability negligible at any realistic volume.
const NonceBytes = 32

// GeneratePaymentNonce creates the opaque correlation token for a payment
// session: 32 random bytes, hex-encoded (64 characters). The nonce is
// unrelated to any sequence number or user identifier.
func GeneratePaymentNonce() (string, error) {
	// 1. Generate random bytes using crypto/rand (cryptographically secure)
	bytes := make([]byte, NonceBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	// 2. Convert to hexadecimal string
	return hex.EncodeToString(bytes), nil
}
