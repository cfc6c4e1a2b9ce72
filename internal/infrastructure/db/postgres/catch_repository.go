package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pechomax/pechomax-api/internal/core/domain"
)

// CatchRepository implements ports.CatchRepository over postgres. Ownership
// scoping is part of the mutation statements themselves, so a non-owner can
// never win a race against the check.
type CatchRepository struct {
	pool *pgxpool.Pool
}

func NewCatchRepository(pool *pgxpool.Pool) *CatchRepository {
	return &CatchRepository{pool: pool}
}

const catchColumns = `id, user_id, species_id, location_id, length, weight, description, date, pictures, point_value, created_at, updated_at`

func scanCatch(row pgx.Row) (*domain.Catch, error) {
	var c domain.Catch
	err := row.Scan(
		&c.ID, &c.UserID, &c.SpeciesID, &c.LocationID,
		&c.Length, &c.Weight, &c.Description, &c.Date,
		&c.Pictures, &c.PointValue, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CatchRepository) Create(ctx context.Context, c *domain.Catch) (*domain.Catch, error) {
	query := `
		INSERT INTO catches (user_id, species_id, location_id, length, weight, description, date, pictures, point_value)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + catchColumns
	pictures := c.Pictures
	if pictures == nil {
		pictures = []string{}
	}
	created, err := scanCatch(querier(ctx, r.pool).QueryRow(ctx, query,
		c.UserID, c.SpeciesID, c.LocationID, c.Length, c.Weight, c.Description, c.Date, pictures, c.PointValue,
	))
	if err != nil {
		return nil, fmt.Errorf("insert catch: %w", err)
	}
	return created, nil
}

func (r *CatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Catch, error) {
	c, err := scanCatch(querier(ctx, r.pool).QueryRow(ctx, `SELECT `+catchColumns+` FROM catches WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCatchNotFound
		}
		return nil, fmt.Errorf("find catch: %w", err)
	}
	return c, nil
}

func (r *CatchRepository) List(ctx context.Context, page, pageSize int) ([]domain.Catch, error) {
	limit, offset := pageBounds(page, pageSize)
	rows, err := querier(ctx, r.pool).Query(ctx,
		`SELECT `+catchColumns+` FROM catches ORDER BY updated_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list catches: %w", err)
	}
	defer rows.Close()
	return collectCatches(rows)
}

func (r *CatchRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Catch, error) {
	rows, err := querier(ctx, r.pool).Query(ctx,
		`SELECT `+catchColumns+` FROM catches WHERE user_id = $1 ORDER BY updated_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list catches by user: %w", err)
	}
	defer rows.Close()
	return collectCatches(rows)
}

func collectCatches(rows pgx.Rows) ([]domain.Catch, error) {
	var catches []domain.Catch
	for rows.Next() {
		c, err := scanCatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan catch: %w", err)
		}
		catches = append(catches, *c)
	}
	return catches, rows.Err()
}

// Update persists a catch. When ownerID is not uuid.Nil the statement is
// additionally filtered by user_id.
func (r *CatchRepository) Update(ctx context.Context, c *domain.Catch, ownerID uuid.UUID) (*domain.Catch, error) {
	query := `
		UPDATE catches
		SET length = $2, weight = $3, location_id = $4, description = $5,
		    date = $6, pictures = $7, point_value = $8, updated_at = now()
		WHERE id = $1 AND ($9::uuid IS NULL OR user_id = $9)
		RETURNING ` + catchColumns
	pictures := c.Pictures
	if pictures == nil {
		pictures = []string{}
	}
	var scope *uuid.UUID
	if ownerID != uuid.Nil {
		scope = &ownerID
	}
	updated, err := scanCatch(querier(ctx, r.pool).QueryRow(ctx, query,
		c.ID, c.Length, c.Weight, c.LocationID, c.Description, c.Date, pictures, c.PointValue, scope,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCatchNotFound
		}
		return nil, fmt.Errorf("update catch: %w", err)
	}
	return updated, nil
}

// Delete removes a catch, scoped the same way as Update.
func (r *CatchRepository) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	var scope *uuid.UUID
	if ownerID != uuid.Nil {
		scope = &ownerID
	}
	tag, err := querier(ctx, r.pool).Exec(ctx,
		`DELETE FROM catches WHERE id = $1 AND ($2::uuid IS NULL OR user_id = $2)`, id, scope)
	if err != nil {
		return fmt.Errorf("delete catch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCatchNotFound
	}
	return nil
}
