package security

import (
	"encoding/hex"
	"testing"
)

func TestGeneratePaymentNonceShape(t *testing.T) {
	nonce, err := GeneratePaymentNonce()
	if err != nil {
		t.Fatalf("GeneratePaymentNonce returned error: %v", err)
	}

	if len(nonce) != NonceBytes*2 {
		t.Errorf("nonce length = %d, want %d hex chars", len(nonce), NonceBytes*2)
	}

	raw, err := hex.DecodeString(nonce)
	if err != nil {
		t.Fatalf("nonce is not valid hex: %v", err)
	}
	if len(raw) != NonceBytes {
		t.Errorf("nonce entropy = %d bytes, want %d", len(raw), NonceBytes)
	}
}

func TestGeneratePaymentNonceUniqueness(t *testing.T) {
	n := 1_000_000
	if testing.Short() {
		n = 10_000
	}

	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		nonce, err := GeneratePaymentNonce()
		if err != nil {
			t.Fatalf("generation %d failed: %v", i, err)
		}
		if _, dup := seen[nonce]; dup {
			t.Fatalf("nonce collision after %d generations: %s", i, nonce)
		}
		seen[nonce] = struct{}{}
	}
}
