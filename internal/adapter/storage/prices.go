package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/LazarusAA/miniapp-monorepo/internal/core/domain"
)

type PriceRepository struct {
	db *pgxpool.Pool
}

func NewPriceRepository(db *pgxpool.Pool) *PriceRepository {
	return &PriceRepository{db: db}
}

// Current reads the single configured subscription price, verbatim.
func (r *PriceRepository) Current(ctx context.Context) (domain.PriceQuote, error) {
	query := `SELECT world_amount FROM subscription_price LIMIT 1`

	var quote domain.PriceQuote
	err := r.db.QueryRow(ctx, query).Scan(&quote.Amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.PriceQuote{}, domain.ErrPriceNotFound
	}
	if err != nil {
		slog.Error("Failed to fetch subscription price", "error", err)
		return domain.PriceQuote{}, fmt.Errorf("%w: failed to fetch subscription price", domain.ErrStoreUnavailable)
	}
	return quote, nil
}
