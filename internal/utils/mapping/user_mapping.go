package mapping

import (
	"database/sql"

	"github.com/SscSPs/vidtube_backend/internal/core/domain"
	"github.com/SscSPs/vidtube_backend/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	m := models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		Email:        d.Email,
		FullName:     d.FullName,
		PasswordHash: d.PasswordHash,
		AvatarURL:    d.AvatarURL,
		WatchHistory: d.WatchHistory,
		Timestamps:   ToModelTimestamps(d.Timestamps),
	}
	if m.WatchHistory == nil {
		m.WatchHistory = []string{}
	}
	if d.CoverImageURL != nil {
		m.CoverImageURL = sql.NullString{String: *d.CoverImageURL, Valid: true}
	}
	if d.RefreshTokenHash != nil {
		m.RefreshTokenHash = sql.NullString{String: *d.RefreshTokenHash, Valid: true}
	}
	return m
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		Email:        m.Email,
		FullName:     m.FullName,
		PasswordHash: m.PasswordHash,
		AvatarURL:    m.AvatarURL,
		WatchHistory: m.WatchHistory,
		Timestamps:   ToDomainTimestamps(m.Timestamps),
	}
	if d.WatchHistory == nil {
		d.WatchHistory = []string{}
	}
	if m.CoverImageURL.Valid {
		cover := m.CoverImageURL.String
		d.CoverImageURL = &cover
	}
	if m.RefreshTokenHash.Valid {
		hash := m.RefreshTokenHash.String
		d.RefreshTokenHash = &hash
	}
	return d
}
