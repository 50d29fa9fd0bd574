package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/LazarusAA/miniapp-monorepo/internal/core/domain"
)

// maxAllocationRetries bounds the compare-and-swap loop in CreateRecord. Two
// retries is already rare; three losses in a row means the store is swamped.
const maxAllocationRetries = 3

type PaymentRepository struct {
	db *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// CreateRecord allocates the next payment_id and inserts the record in a
// single statement, so the read-max and the write cannot interleave across
// round trips. The UNIQUE constraint on payment_id backstops the allocation:
// if two inserts still race inside Postgres, the loser gets a unique
// violation and retries with a fresh allocation.
func (r *PaymentRepository) CreateRecord(ctx context.Context, nonce string, userID uuid.UUID) (*domain.PaymentRecord, error) {
	query := `
		INSERT INTO payments (payment_id, nonce, user_id)
		SELECT COALESCE(MAX(payment_id), 0) + 1, $1, $2 FROM payments
		RETURNING payment_id, nonce, user_id, created_at
	`

	var lastErr error
	for attempt := 0; attempt < maxAllocationRetries; attempt++ {
		var rec domain.PaymentRecord
		err := r.db.QueryRow(ctx, query, nonce, userID).Scan(
			&rec.PaymentID, &rec.Nonce, &rec.UserID, &rec.CreatedAt,
		)
		if err == nil {
			return &rec, nil
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Lost the allocation race, take the next number
			slog.Warn("Payment ID allocation collided, retrying", "attempt", attempt+1)
			lastErr = err
			continue
		}

		slog.Error("Failed to create payment record", "error", err)
		return nil, fmt.Errorf("%w: failed to create payment record", domain.ErrStoreUnavailable)
	}

	slog.Error("Payment ID allocation exhausted retries", "error", lastErr)
	return nil, fmt.Errorf("%w: payment id allocation kept colliding", domain.ErrStoreUnavailable)
}

// MaxPaymentID returns the highest sequence number written so far, or 0 when
// no payments exist.
func (r *PaymentRepository) MaxPaymentID(ctx context.Context) (int64, error) {
	var max int64
	err := r.db.QueryRow(ctx, `SELECT COALESCE(MAX(payment_id), 0) FROM payments`).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to read max payment id", domain.ErrStoreUnavailable)
	}
	return max, nil
}
