package dto

import (
	"github.com/allisson/notes/internal/user/domain"
	"github.com/allisson/notes/internal/user/usecase"
)

// ToRegisterUserInput converts a RegisterUserRequest DTO to a use case input
func ToRegisterUserInput(req RegisterUserRequest) usecase.RegisterUserInput {
	return usecase.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
}

// ToUpdateUserInput converts an UpdateUserRequest DTO to a use case input
func ToUpdateUserInput(req UpdateUserRequest) usecase.UpdateUserInput {
	return usecase.UpdateUserInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		NewPassword: req.NewPassword,
	}
}

// ToUserResponse converts a domain User model to a UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToUserListResponse converts a slice of domain users to response DTOs
func ToUserListResponse(users []*domain.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, ToUserResponse(user))
	}
	return responses
}
