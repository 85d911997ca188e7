package dto

// RegisterUserRequest carries the text fields of the multipart registration form.
// Blank values are rejected by the user service so that every missing field yields the same message.
type RegisterUserRequest struct {
	Username string `form:"username" json:"username"`
	Email    string `form:"email" json:"email"`
	FullName string `form:"fullName" json:"fullName"`
	Password string `form:"password" json:"password"`
}

// LoginRequest represents the credentials submitted to log in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,notblank"`
	Password string `json:"password" binding:"required,notblank"`
}

// RefreshTokenRequest is the optional body of a refresh call when the cookie is absent.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ChangePasswordRequest represents a password change by the authenticated user.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required,notblank"`
	NewPassword string `json:"newPassword" binding:"required,notblank"`
}
