// Package payment implements the payment-session issuer: one call verifies
// the caller, mints a single-use nonce, persists the tracked record, and
// describes the cookie that binds the nonce to the caller's browser.
package payment

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/LazarusAA/miniapp-monorepo/internal/core/domain"
	"github.com/LazarusAA/miniapp-monorepo/internal/core/security"
)

// NonceCookieName is the cookie that carries the payment nonce back to the
// frontend.
const NonceCookieName = "payment-nonce"

// NonceCookieMaxAge bounds how long an issued nonce stays bound to the
// browser. One hour, matching the payment flow's own window.
const NonceCookieMaxAge = int(time.Hour / time.Second)

// OwnerDirectory resolves a verified email to a durable user record.
type OwnerDirectory interface {
	// FindByEmail returns domain.ErrUserNotFound when no account exists for
	// the email, and domain.ErrStoreUnavailable (wrapped) on infra failure.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// RecordStore persists payment records. CreateRecord must allocate the next
// sequence number and insert the record as one atomic unit: two concurrent
// calls are never given the same PaymentID.
type RecordStore interface {
	CreateRecord(ctx context.Context, nonce string, userID uuid.UUID) (*domain.PaymentRecord, error)
}

// CookieSpec tells the transport layer exactly how to set the session-binding
// cookie. The issuer never touches the response itself.
type CookieSpec struct {
	Name     string
	Value    string
	Path     string
	MaxAge   int
	Secure   bool
	HTTPOnly bool
	SameSite string
}

// Session is the result of a successful initiation. Nonce goes in the
// response body; Cookie is applied to the response channel.
type Session struct {
	Nonce  string
	Cookie CookieSpec
}

type Issuer struct {
	Users    OwnerDirectory
	Payments RecordStore
}

func NewIssuer(users OwnerDirectory, payments RecordStore) *Issuer {
	return &Issuer{Users: users, Payments: payments}
}

// Initiate runs the full issuance sequence for the caller identified by
// email. No state is touched until the caller is resolved to a durable user;
// no cookie is described unless the record was persisted.
func (i *Issuer) Initiate(ctx context.Context, email string) (*Session, error) {
	// 1. Identity guard. The middleware normally catches this, but the
	// issuer must hold the invariant on its own.
	if email == "" {
		return nil, domain.ErrUnauthorized
	}

	// 2. Resolve to a durable account
	user, err := i.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// 3. Mint the correlation nonce
	nonce, err := security.GeneratePaymentNonce()
	if err != nil {
		slog.Error("Failed to generate payment nonce", "error", err)
		return nil, domain.ErrStoreUnavailable
	}

	// 4. Allocate sequence + persist, atomically in the store
	record, err := i.Payments.CreateRecord(ctx, nonce, user.ID)
	if err != nil {
		return nil, err
	}

	slog.Info("💳 Payment session issued", "payment_id", record.PaymentID, "user_id", user.ID)

	return &Session{
		Nonce: nonce,
		Cookie: CookieSpec{
			Name:     NonceCookieName,
			Value:    nonce,
			Path:     "/",
			MaxAge:   NonceCookieMaxAge,
			Secure:   true,
			HTTPOnly: true,
			SameSite: "Strict",
		},
	}, nil
}
