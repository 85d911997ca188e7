package models

import (
	"database/sql"
)

// User is a row of the users table.
type User struct {
	UserID        string         `db:"user_id"`
	Username      string         `db:"username"`
	Email         string         `db:"email"`
	FullName      string         `db:"full_name"`
	PasswordHash  string         `db:"password_hash"`
	AvatarURL     string         `db:"avatar_url"`
	CoverImageURL sql.NullString `db:"cover_image_url"`
	WatchHistory  []string       `db:"watch_history"`
	Timestamps

	// Hash of the single active refresh token; NULL when logged out.
	RefreshTokenHash sql.NullString `db:"refresh_token_hash"`
}
