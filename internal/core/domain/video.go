package domain

import "time"

// WatchHistoryEntry is one position in a user's watch history, resolved to its video and owner.
// Owner is nil when the owning account no longer exists.
type WatchHistoryEntry struct {
	VideoID         string      `json:"videoID"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	VideoFileURL    string      `json:"videoFile"`
	ThumbnailURL    string      `json:"thumbnail"`
	DurationSeconds float64     `json:"duration"`
	Views           int64       `json:"views"`
	IsPublished     bool        `json:"isPublished"`
	CreatedAt       time.Time   `json:"createdAt"`
	Owner           *VideoOwner `json:"owner"`
}
