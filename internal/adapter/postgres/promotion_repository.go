package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"casa-boost/internal/core/domain"
	"casa-boost/internal/core/port"
)

// agentCodeCounter is the counters row backing the sequence allocator.
const agentCodeCounter = "agent_codes"

// pgSerializationFailure is the SQLSTATE raised when a Serializable
// transaction loses against a concurrent one.
const pgSerializationFailure = "40001"

const campaignColumns = `id, listing_id, requester_id, slot_type, duration_days, requested_days,
       price, payment_reference, status, start_at, end_at, created_at`

// PromotionRepository implements port.PromotionRepository using pgxpool.
type PromotionRepository struct {
	pool *pgxpool.Pool
}

// NewPromotionRepository returns a new repository instance.
func NewPromotionRepository(pool *pgxpool.Pool) *PromotionRepository {
	return &PromotionRepository{pool: pool}
}

// CreateCampaign persists a new campaign record.
func (r *PromotionRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO campaigns
    (id, listing_id, requester_id, slot_type, duration_days, requested_days,
     price, payment_reference, status, start_at, end_at, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		c.ID, c.ListingID, c.RequesterID, c.SlotType, c.DurationDays, c.RequestedDays,
		c.Price, c.PaymentReference, c.Status, c.StartAt, c.EndAt, c.CreatedAt)
	return err
}

// GetCampaign returns the campaign or (nil, nil) when absent.
func (r *PromotionRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListCampaigns returns campaigns matching the filter ordered by end_at
// ascending (nulls last), then created_at ascending, so the soonest to
// expire is first.
func (r *PromotionRepository) ListCampaigns(ctx context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE 1=1`
	args := []interface{}{}
	if f.Status != nil {
		args = append(args, *f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.EndAfter != nil {
		args = append(args, *f.EndAfter)
		query += fmt.Sprintf(" AND end_at > $%d", len(args))
	}
	query += " ORDER BY end_at ASC NULLS LAST, created_at ASC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// TransitionStatus applies tr only if the stored status equals expected.
// The single conditional UPDATE is the atomic guard; a zero row count with
// the campaign present means another decision won the race.
func (r *PromotionRepository) TransitionStatus(ctx context.Context, id uuid.UUID, expected domain.CampaignStatus, tr port.StatusTransition) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns
SET status = $1,
    start_at = COALESCE($2, start_at),
    end_at = COALESCE($3, end_at),
    requested_days = COALESCE($4, requested_days)
WHERE id = $5 AND status = $6`,
		tr.Status, tr.StartAt, tr.EndAt, tr.RequestedDays, id, expected)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err = r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM campaigns WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return port.ErrNotFound
	}
	return port.ErrAlreadyDecided
}

// GetAccount returns the account or (nil, nil) when absent.
func (r *PromotionRepository) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	var a domain.Account
	err := r.pool.QueryRow(ctx, `SELECT id, display_name, agent_code, created_at FROM accounts WHERE id = $1`, id).
		Scan(&a.ID, &a.DisplayName, &a.AgentCode, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// AllocateAgentCode bumps the shared counter and writes the allocated code
// to the account inside one Serializable transaction, with the account row
// locked. If the account already carries a code it is returned unchanged
// and the counter is not advanced, so the sequence stays gap-free.
func (r *PromotionRepository) AllocateAgentCode(ctx context.Context, accountID int64) (int64, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return 0, err
	}
	// rollback is a no-op once the transaction is committed
	defer tx.Rollback(ctx)

	var existing *int64
	err = tx.QueryRow(ctx, `SELECT agent_code FROM accounts WHERE id = $1 FOR UPDATE`, accountID).Scan(&existing)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, port.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return *existing, nil
	}

	var code int64
	err = tx.QueryRow(ctx, `UPDATE counters SET next_value = next_value + 1 WHERE name = $1 RETURNING next_value - 1`,
		agentCodeCounter).Scan(&code)
	if err != nil {
		return 0, asAllocationErr(err)
	}
	if _, err = tx.Exec(ctx, `UPDATE accounts SET agent_code = $1 WHERE id = $2`, code, accountID); err != nil {
		return 0, asAllocationErr(err)
	}
	if err = tx.Commit(ctx); err != nil {
		return 0, asAllocationErr(err)
	}
	return code, nil
}

// asAllocationErr maps a Postgres serialization failure to the retryable
// port error; everything else passes through.
func asAllocationErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgSerializationFailure {
		return port.ErrAllocationConflict
	}
	return err
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.ListingID,
		&c.RequesterID,
		&c.SlotType,
		&c.DurationDays,
		&c.RequestedDays,
		&c.Price,
		&c.PaymentReference,
		&c.Status,
		&c.StartAt,
		&c.EndAt,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
