package models

import (
	"database/sql"
	"time"
)

// WatchHistoryRow is one row of the watch-history query: a video joined with its owner.
// Owner columns are NULL when the owner row is missing.
type WatchHistoryRow struct {
	Position        int64          `db:"position"`
	VideoID         string         `db:"video_id"`
	Title           string         `db:"title"`
	Description     string         `db:"description"`
	VideoFileURL    string         `db:"video_file_url"`
	ThumbnailURL    string         `db:"thumbnail_url"`
	DurationSeconds float64        `db:"duration_seconds"`
	Views           int64          `db:"views"`
	IsPublished     bool           `db:"is_published"`
	CreatedAt       time.Time      `db:"created_at"`
	OwnerID         sql.NullString `db:"owner_id"`
	OwnerUsername   sql.NullString `db:"owner_username"`
	OwnerFullName   sql.NullString `db:"owner_full_name"`
	OwnerAvatarURL  sql.NullString `db:"owner_avatar_url"`
}
