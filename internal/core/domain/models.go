package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User is a registered account holder, resolved from a verified session email.
type User struct {
	ID        uuid.UUID
	Email     string
	CreatedAt time.Time
}

// PaymentRecord tracks one initiated payment session.
// PaymentID orders records by creation time and is never exposed to the
// client; Nonce is the only value the client sees and carries no meaning
// beyond correlation.
type PaymentRecord struct {
	PaymentID int64
	Nonce     string
	UserID    uuid.UUID
	CreatedAt time.Time
}

// PriceQuote is a read-only snapshot of the configured subscription price,
// denominated in WORLD.
type PriceQuote struct {
	Amount decimal.Decimal `json:"amount"`
}
