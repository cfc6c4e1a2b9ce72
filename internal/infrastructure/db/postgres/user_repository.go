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

// UserRepository implements ports.UserRepository over postgres.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, username, email, password, role, phone_number, profile_pic, city, region, zip_code, level_id, score, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var phone, pic, city, region, zip *string
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role,
		&phone, &pic, &city, &region, &zip,
		&u.LevelID, &u.Score, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if phone != nil {
		u.PhoneNumber = *phone
	}
	if pic != nil {
		u.ProfilePic = *pic
	}
	if city != nil {
		u.City = *city
	}
	if region != nil {
		u.Region = *region
	}
	if zip != nil {
		u.ZipCode = *zip
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (username, email, password, role, profile_pic)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		RETURNING ` + userColumns
	row := querier(ctx, r.pool).QueryRow(ctx, query,
		user.Username, user.Email, user.PasswordHash, user.Role, user.ProfilePic,
	)
	created, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := querier(ctx, r.pool).QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// FindByCredential looks the user up by username or email.
func (r *UserRepository) FindByCredential(ctx context.Context, credential string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email = $1`
	user, err := scanUser(querier(ctx, r.pool).QueryRow(ctx, query, credential))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by credential: %w", err)
	}
	return user, nil
}

func (r *UserRepository) CountAdmins(ctx context.Context) (int64, error) {
	var count int64
	err := querier(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, domain.RoleAdmin).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return count, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		UPDATE users
		SET email = $2,
		    phone_number = NULLIF($3, ''),
		    profile_pic = NULLIF($4, ''),
		    city = NULLIF($5, ''),
		    region = NULLIF($6, ''),
		    zip_code = NULLIF($7, ''),
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns
	row := querier(ctx, r.pool).QueryRow(ctx, query,
		user.ID, user.Email, user.PhoneNumber, user.ProfilePic, user.City, user.Region, user.ZipCode,
	)
	updated, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return updated, nil
}

// IncrementScore applies the delta in a single statement so concurrent
// updates to the same row serialize at the store instead of racing a
// read-modify-write in application code. NULL scores count as zero.
func (r *UserRepository) IncrementScore(ctx context.Context, id uuid.UUID, delta int64) (int64, error) {
	query := `
		UPDATE users
		SET score = COALESCE(score, 0) + $2, updated_at = now()
		WHERE id = $1
		RETURNING score`
	var score int64
	err := querier(ctx, r.pool).QueryRow(ctx, query, id, delta).Scan(&score)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrUserNotFound
		}
		return 0, fmt.Errorf("increment score: %w", err)
	}
	return score, nil
}

// SetLevelIfScore writes the level only while the row's score still equals
// expectedScore. A miss is disambiguated into stale-vs-gone.
func (r *UserRepository) SetLevelIfScore(ctx context.Context, id uuid.UUID, levelID *uuid.UUID, expectedScore int64) error {
	q := querier(ctx, r.pool)
	tag, err := q.Exec(ctx,
		`UPDATE users SET level_id = $2, updated_at = now() WHERE id = $1 AND score = $3`,
		id, levelID, expectedScore,
	)
	if err != nil {
		return fmt.Errorf("set level: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("set level existence check: %w", err)
	}
	if !exists {
		return domain.ErrUserNotFound
	}
	return domain.ErrStaleWrite
}
