package domain

import "time"

// Timestamps holds the creation and last-modification times of a persisted entity.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
