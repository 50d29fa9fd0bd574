package session

import (
	"testing"
	"time"
)

func TestIssueAndVerifyToken(t *testing.T) {
	p := NewProvider("test-secret")

	token, err := p.IssueToken("alice@example.com", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	email, err := p.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if email != "alice@example.com" {
		t.Errorf("resolved email = %q, want alice@example.com", email)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	p := NewProvider("test-secret")

	token, err := p.IssueToken("alice@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	if _, err := p.VerifyToken(token); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestVerifyForeignToken(t *testing.T) {
	issuer := NewProvider("secret-a")
	verifier := NewProvider("secret-b")

	token, err := issuer.IssueToken("alice@example.com", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	if _, err := verifier.VerifyToken(token); err == nil {
		t.Error("expected token signed with a different secret to be rejected")
	}
}

func TestVerifyGarbageToken(t *testing.T) {
	p := NewProvider("test-secret")
	if _, err := p.VerifyToken("not-a-token"); err == nil {
		t.Error("expected malformed token to be rejected")
	}
}
