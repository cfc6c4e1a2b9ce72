package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pechomax/pechomax-api/internal/core/domain"
)

// SpeciesRepository implements ports.SpeciesRepository over postgres.
type SpeciesRepository struct {
	pool *pgxpool.Pool
}

func NewSpeciesRepository(pool *pgxpool.Pool) *SpeciesRepository {
	return &SpeciesRepository{pool: pool}
}

const speciesColumns = `id, name, point_value, created_at, updated_at`

func scanSpecies(row pgx.Row) (*domain.Species, error) {
	var s domain.Species
	if err := row.Scan(&s.ID, &s.Name, &s.PointValue, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SpeciesRepository) Create(ctx context.Context, s *domain.Species) (*domain.Species, error) {
	query := `INSERT INTO species (name, point_value) VALUES ($1, $2) RETURNING ` + speciesColumns
	created, err := scanSpecies(querier(ctx, r.pool).QueryRow(ctx, query, s.Name, s.PointValue))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrSpeciesExists
		}
		return nil, fmt.Errorf("insert species: %w", err)
	}
	return created, nil
}

func (r *SpeciesRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Species, error) {
	s, err := scanSpecies(querier(ctx, r.pool).QueryRow(ctx, `SELECT `+speciesColumns+` FROM species WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSpeciesNotFound
		}
		return nil, fmt.Errorf("find species: %w", err)
	}
	return s, nil
}

func (r *SpeciesRepository) List(ctx context.Context, page, pageSize int) ([]domain.Species, error) {
	limit, offset := pageBounds(page, pageSize)
	rows, err := querier(ctx, r.pool).Query(ctx,
		`SELECT `+speciesColumns+` FROM species ORDER BY name ASC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list species: %w", err)
	}
	defer rows.Close()

	var result []domain.Species
	for rows.Next() {
		s, err := scanSpecies(rows)
		if err != nil {
			return nil, fmt.Errorf("scan species: %w", err)
		}
		result = append(result, *s)
	}
	return result, rows.Err()
}

func (r *SpeciesRepository) Update(ctx context.Context, s *domain.Species) (*domain.Species, error) {
	query := `UPDATE species SET name = $2, point_value = $3, updated_at = now() WHERE id = $1 RETURNING ` + speciesColumns
	updated, err := scanSpecies(querier(ctx, r.pool).QueryRow(ctx, query, s.ID, s.Name, s.PointValue))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSpeciesNotFound
		}
		return nil, fmt.Errorf("update species: %w", err)
	}
	return updated, nil
}

func (r *SpeciesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := querier(ctx, r.pool).Exec(ctx, `DELETE FROM species WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete species: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSpeciesNotFound
	}
	return nil
}
