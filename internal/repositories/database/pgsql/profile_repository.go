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

// profileRepository implements the ProfileRepository interface
type profileRepository struct {
	BaseRepository
}

func newProfileRepository(db *pgxpool.Pool) portsrepo.ProfileRepository {
	return &profileRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetChannelProfile computes both counts and the viewer's subscription flag in the same statement
// that matches the channel, so they are consistent with each other.
func (r *profileRepository) GetChannelProfile(ctx context.Context, viewerID, username string) (*domain.ChannelProfile, error) {
	query := `
		SELECT
			u.user_id::text,
			u.username,
			u.full_name,
			u.email,
			u.avatar_url,
			u.cover_image_url,
			(SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = u.user_id) AS subscribers_count,
			(SELECT COUNT(*) FROM subscriptions s WHERE s.subscriber_id = u.user_id) AS channels_subscribed_to_count,
			EXISTS (
				SELECT 1 FROM subscriptions s
				WHERE s.channel_id = u.user_id AND s.subscriber_id = $2::uuid
			) AS is_subscribed
		FROM users u
		WHERE u.username = $1
	`

	var profile domain.ChannelProfile
	err := r.Pool.QueryRow(ctx, query, username, nullableUUID(viewerID)).Scan(
		&profile.UserID,
		&profile.Username,
		&profile.FullName,
		&profile.Email,
		&profile.AvatarURL,
		&profile.CoverImageURL,
		&profile.SubscribersCount,
		&profile.ChannelsSubscribedToCount,
		&profile.IsSubscribed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error querying channel profile: %w", err)
	}
	return &profile, nil
}

// GetWatchHistory resolves the stored ID sequence in one query. ORDINALITY keeps the stored
// order and duplicates; IDs whose video row is gone are skipped.
func (r *profileRepository) GetWatchHistory(ctx context.Context, userID string) ([]domain.WatchHistoryEntry, error) {
	query := `
		SELECT
			h.position,
			v.video_id::text,
			v.title,
			v.description,
			v.video_file_url,
			v.thumbnail_url,
			v.duration_seconds,
			v.views,
			v.is_published,
			v.created_at,
			o.user_id::text AS owner_id,
			o.username AS owner_username,
			o.full_name AS owner_full_name,
			o.avatar_url AS owner_avatar_url
		FROM users u
		CROSS JOIN LATERAL unnest(u.watch_history) WITH ORDINALITY AS h(video_id, position)
		JOIN videos v ON v.video_id = h.video_id
		LEFT JOIN users o ON o.user_id = v.owner_id
		WHERE u.user_id = $1
		ORDER BY h.position
	`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying watch history: %w", err)
	}
	defer rows.Close()

	var result []models.WatchHistoryRow
	for rows.Next() {
		var row models.WatchHistoryRow
		if err := rows.Scan(
			&row.Position,
			&row.VideoID,
			&row.Title,
			&row.Description,
			&row.VideoFileURL,
			&row.ThumbnailURL,
			&row.DurationSeconds,
			&row.Views,
			&row.IsPublished,
			&row.CreatedAt,
			&row.OwnerID,
			&row.OwnerUsername,
			&row.OwnerFullName,
			&row.OwnerAvatarURL,
		); err != nil {
			return nil, fmt.Errorf("error scanning watch history row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating watch history rows: %w", err)
	}

	return mapping.ToDomainWatchHistory(result), nil
}

func (r *profileRepository) AppendWatchHistory(ctx context.Context, userID, videoID string) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`UPDATE users SET watch_history = array_append(watch_history, $2::uuid), updated_at = NOW() WHERE user_id = $1`,
		userID, videoID,
	)
	if err != nil {
		return fmt.Errorf("failed to append watch history: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *profileRepository) VideoExists(ctx context.Context, videoID string) (bool, error) {
	var exists bool
	if err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM videos WHERE video_id = $1)`, videoID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check video: %w", err)
	}
	return exists, nil
}
