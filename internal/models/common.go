package models

import "time"

// Timestamps holds creation and update times as stored in the database.
type Timestamps struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
