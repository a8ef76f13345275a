// Package dto provides data transfer objects for the auth HTTP layer.
package dto

// LoginResponse carries the signed auth token back to the client
type LoginResponse struct {
	Token string `json:"token"`
}
