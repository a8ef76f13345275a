// Package dto provides data transfer objects for the auth HTTP layer.
package dto

// LoginRequest contains the credentials submitted to the login endpoint
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
