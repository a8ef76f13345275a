// Package dto provides data transfer objects for the user HTTP layer.
package dto

// RegisterUserRequest represents the API request for user registration
type RegisterUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest represents the API request for updating an account.
// Password must carry the current password when NewPassword is set.
type UpdateUserRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	NewPassword string `json:"newPassword"`
}
