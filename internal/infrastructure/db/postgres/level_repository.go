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

// LevelRepository implements ports.LevelRepository over postgres.
type LevelRepository struct {
	pool *pgxpool.Pool
}

func NewLevelRepository(pool *pgxpool.Pool) *LevelRepository {
	return &LevelRepository{pool: pool}
}

const levelColumns = `id, title, value, start, "end", created_at, updated_at`

func scanLevel(row pgx.Row) (*domain.Level, error) {
	var l domain.Level
	if err := row.Scan(&l.ID, &l.Title, &l.Value, &l.Start, &l.End, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LevelRepository) Create(ctx context.Context, level *domain.Level) (*domain.Level, error) {
	query := `
		INSERT INTO levels (title, value, start, "end")
		VALUES ($1, $2, $3, $4)
		RETURNING ` + levelColumns
	created, err := scanLevel(querier(ctx, r.pool).QueryRow(ctx, query, level.Title, level.Value, level.Start, level.End))
	if err != nil {
		return nil, fmt.Errorf("insert level: %w", err)
	}
	return created, nil
}

func (r *LevelRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Level, error) {
	level, err := scanLevel(querier(ctx, r.pool).QueryRow(ctx, `SELECT `+levelColumns+` FROM levels WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLevelNotFound
		}
		return nil, fmt.Errorf("find level: %w", err)
	}
	return level, nil
}

// ListOrderedByValue returns the full ladder in resolution order.
func (r *LevelRepository) ListOrderedByValue(ctx context.Context) ([]domain.Level, error) {
	rows, err := querier(ctx, r.pool).Query(ctx, `SELECT `+levelColumns+` FROM levels ORDER BY value ASC`)
	if err != nil {
		return nil, fmt.Errorf("list levels: %w", err)
	}
	defer rows.Close()
	return collectLevels(rows)
}

func (r *LevelRepository) List(ctx context.Context, page, pageSize int) ([]domain.Level, error) {
	limit, offset := pageBounds(page, pageSize)
	rows, err := querier(ctx, r.pool).Query(ctx,
		`SELECT `+levelColumns+` FROM levels ORDER BY value ASC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list levels: %w", err)
	}
	defer rows.Close()
	return collectLevels(rows)
}

func collectLevels(rows pgx.Rows) ([]domain.Level, error) {
	var levels []domain.Level
	for rows.Next() {
		l, err := scanLevel(rows)
		if err != nil {
			return nil, fmt.Errorf("scan level: %w", err)
		}
		levels = append(levels, *l)
	}
	return levels, rows.Err()
}

func (r *LevelRepository) Update(ctx context.Context, level *domain.Level) (*domain.Level, error) {
	query := `
		UPDATE levels
		SET title = $2, value = $3, start = $4, "end" = $5, updated_at = now()
		WHERE id = $1
		RETURNING ` + levelColumns
	updated, err := scanLevel(querier(ctx, r.pool).QueryRow(ctx, query,
		level.ID, level.Title, level.Value, level.Start, level.End))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLevelNotFound
		}
		return nil, fmt.Errorf("update level: %w", err)
	}
	return updated, nil
}

// Delete removes a level. Users referencing it fall back to a NULL level
// (FK is ON DELETE SET NULL) until their next progression write.
func (r *LevelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := querier(ctx, r.pool).Exec(ctx, `DELETE FROM levels WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete level: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLevelNotFound
	}
	return nil
}
