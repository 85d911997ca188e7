package mapping

import (
	"github.com/SscSPs/vidtube_backend/internal/core/domain"
	"github.com/SscSPs/vidtube_backend/internal/models"
)

// ToDomainWatchHistoryEntry converts a joined watch-history row, collapsing the owner columns into one object.
func ToDomainWatchHistoryEntry(m models.WatchHistoryRow) domain.WatchHistoryEntry {
	entry := domain.WatchHistoryEntry{
		VideoID:         m.VideoID,
		Title:           m.Title,
		Description:     m.Description,
		VideoFileURL:    m.VideoFileURL,
		ThumbnailURL:    m.ThumbnailURL,
		DurationSeconds: m.DurationSeconds,
		Views:           m.Views,
		IsPublished:     m.IsPublished,
		CreatedAt:       m.CreatedAt,
	}
	if m.OwnerID.Valid {
		entry.Owner = &domain.VideoOwner{
			UserID:    m.OwnerID.String,
			Username:  m.OwnerUsername.String,
			FullName:  m.OwnerFullName.String,
			AvatarURL: m.OwnerAvatarURL.String,
		}
	}
	return entry
}

// ToDomainWatchHistory converts rows in order. The result is never nil.
func ToDomainWatchHistory(rows []models.WatchHistoryRow) []domain.WatchHistoryEntry {
	entries := make([]domain.WatchHistoryEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, ToDomainWatchHistoryEntry(r))
	}
	return entries
}
