package dto

// UpdateAccountRequest defines the account fields a user may change.
type UpdateAccountRequest struct {
	FullName string `json:"fullName" binding:"required,notblank"`
	Email    string `json:"email" binding:"required,notblank"`
}
