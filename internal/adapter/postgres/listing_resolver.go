package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"casa-boost/internal/core/domain"
)

// ListingResolver implements port.ListingResolver over the marketplace's
// listings table. Read-only; the listing domain owns writes.
type ListingResolver struct {
	pool *pgxpool.Pool
}

// NewListingResolver returns a new resolver instance.
func NewListingResolver(pool *pgxpool.Pool) *ListingResolver {
	return &ListingResolver{pool: pool}
}

// GetListingSummary returns the listing or (nil, nil) when it no longer
// exists. Missing listings are a normal condition during slot enrichment.
func (r *ListingResolver) GetListingSummary(ctx context.Context, listingID int64) (*domain.ListingSummary, error) {
	var l domain.ListingSummary
	err := r.pool.QueryRow(ctx, `SELECT id, title, city, price, image_url FROM listings WHERE id = $1`, listingID).
		Scan(&l.ID, &l.Title, &l.City, &l.Price, &l.ImageURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}
