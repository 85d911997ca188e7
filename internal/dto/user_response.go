package dto

import (
	"time"

	"github.com/SscSPs/vidtube_backend/internal/core/domain"
)

// UserResponse is the sanitized user returned to clients.
type UserResponse struct {
	UserID       string    `json:"userID"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	Avatar       string    `json:"avatar"`
	CoverImage   string    `json:"coverImage"`
	WatchHistory []string  `json:"watchHistory"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ToUserResponse converts a domain user to UserResponse. Credential fields have no counterpart here.
func ToUserResponse(user *domain.User) UserResponse {
	resp := UserResponse{
		UserID:       user.UserID,
		Username:     user.Username,
		Email:        user.Email,
		FullName:     user.FullName,
		Avatar:       user.AvatarURL,
		WatchHistory: user.WatchHistory,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
	if user.CoverImageURL != nil {
		resp.CoverImage = *user.CoverImageURL
	}
	if resp.WatchHistory == nil {
		resp.WatchHistory = []string{}
	}
	return resp
}
