package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/vidtube_backend/internal/apperrors"
	"github.com/SscSPs/vidtube_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/vidtube_backend/internal/core/ports/repositories"
	"github.com/SscSPs/vidtube_backend/internal/models"
	"github.com/SscSPs/vidtube_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `user_id::text, username, email, full_name, password_hash, avatar_url,
	cover_image_url, refresh_token_hash, watch_history::text[], created_at, updated_at`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func scanUser(row pgx.Row) (*domain.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Username,
		&m.Email,
		&m.FullName,
		&m.PasswordHash,
		&m.AvatarURL,
		&m.CoverImageURL,
		&m.RefreshTokenHash,
		&m.WatchHistory,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u := mapping.ToDomainUser(m)
	return &u, nil
}

func (r *PgxUserRepository) findOne(ctx context.Context, where string, arg any) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where
	user, err := scanUser(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, "user_id = $1", userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email = $1", email)
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, "username = $1", username)
}

func (r *PgxUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)`,
		username, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user uniqueness: %w", err)
	}
	return exists, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
        INSERT INTO users (user_id, username, email, full_name, password_hash, avatar_url,
            cover_image_url, watch_history, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Username,
		m.Email,
		m.FullName,
		m.PasswordHash,
		m.AvatarURL,
		m.CoverImageURL,
		m.WatchHistory,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return apperrors.NewDuplicateError("user with email or username already exists")
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) UpdateAccountDetails(ctx context.Context, userID, fullName, email string) (*domain.User, error) {
	query := `
        UPDATE users SET full_name = $2, email = $3, updated_at = NOW()
        WHERE user_id = $1
        RETURNING ` + userColumns
	user, err := scanUser(r.Pool.QueryRow(ctx, query, userID, fullName, email))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, apperrors.ErrNotFound
		case isPgError(err, pgUniqueViolation):
			return nil, apperrors.NewDuplicateError("email is already in use")
		}
		return nil, fmt.Errorf("failed to update account details: %w", err)
	}
	return user, nil
}

// UpdateAvatar swaps the avatar URL inside a transaction so the replaced URL is read under a row lock.
func (r *PgxUserRepository) UpdateAvatar(ctx context.Context, userID, avatarURL string) (*domain.User, string, error) {
	var previous string
	user, err := r.swapImageColumn(ctx, userID, "avatar_url", avatarURL, func(row pgx.Row) error {
		return row.Scan(&previous)
	})
	if err != nil {
		return nil, "", err
	}
	return user, previous, nil
}

func (r *PgxUserRepository) UpdateCoverImage(ctx context.Context, userID, coverImageURL string) (*domain.User, string, error) {
	var previous *string
	user, err := r.swapImageColumn(ctx, userID, "cover_image_url", coverImageURL, func(row pgx.Row) error {
		return row.Scan(&previous)
	})
	if err != nil {
		return nil, "", err
	}
	if previous == nil {
		return user, "", nil
	}
	return user, *previous, nil
}

// swapImageColumn locks the user row, reads the current value of column, then overwrites it.
// column is always a constant chosen by this file.
func (r *PgxUserRepository) swapImageColumn(ctx context.Context, userID, column, newURL string, scanPrevious func(pgx.Row) error) (*domain.User, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	err = scanPrevious(tx.QueryRow(ctx, `SELECT `+column+` FROM users WHERE user_id = $1 FOR UPDATE`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", column, err)
	}

	query := `UPDATE users SET ` + column + ` = $2, updated_at = NOW() WHERE user_id = $1 RETURNING ` + userColumns
	user, err := scanUser(tx.QueryRow(ctx, query, userID, newURL))
	if err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", column, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *PgxUserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string, clearSession bool) error {
	query := `
        UPDATE users
        SET password_hash = $2,
            refresh_token_hash = CASE WHEN $3::boolean THEN NULL ELSE refresh_token_hash END,
            updated_at = NOW()
        WHERE user_id = $1;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, userID, passwordHash, clearSession)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) SetRefreshTokenHash(ctx context.Context, userID, tokenHash string) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`UPDATE users SET refresh_token_hash = $2 WHERE user_id = $1`,
		userID, tokenHash,
	)
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SwapRefreshTokenHash is the compare-and-swap behind rotation: of two concurrent callers
// presenting the same old hash, only one can match.
func (r *PgxUserRepository) SwapRefreshTokenHash(ctx context.Context, userID, oldHash, newHash string) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`UPDATE users SET refresh_token_hash = $3 WHERE user_id = $1 AND refresh_token_hash = $2`,
		userID, oldHash, newHash,
	)
	if err != nil {
		return fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("refresh token already rotated: %w", apperrors.ErrUnauthorized)
	}
	return nil
}

func (r *PgxUserRepository) ClearRefreshTokenHash(ctx context.Context, userID string) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`UPDATE users SET refresh_token_hash = NULL WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
