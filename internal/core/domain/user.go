package domain

// User represents an account on the platform.
// PasswordHash and RefreshTokenHash never leave the server.
type User struct {
	UserID        string   `json:"userID"`
	Username      string   `json:"username"`
	Email         string   `json:"email"`
	FullName      string   `json:"fullName"`
	AvatarURL     string   `json:"avatar"`
	CoverImageURL *string  `json:"coverImage,omitempty"`
	WatchHistory  []string `json:"watchHistory"`
	Timestamps

	PasswordHash     string  `json:"-"`
	RefreshTokenHash *string `json:"-"`
}

// Sanitized returns a copy of the user with credential material stripped.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	u.RefreshTokenHash = nil
	if u.WatchHistory == nil {
		u.WatchHistory = []string{}
	}
	return u
}

// HasActiveSession reports whether a refresh token is currently stored for the user.
func (u *User) HasActiveSession() bool {
	return u.RefreshTokenHash != nil && *u.RefreshTokenHash != ""
}

// VideoOwner is the public projection of a user embedded in video views.
type VideoOwner struct {
	UserID    string `json:"userID"`
	Username  string `json:"username"`
	FullName  string `json:"fullName"`
	AvatarURL string `json:"avatar"`
}
