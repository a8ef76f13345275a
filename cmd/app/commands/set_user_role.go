package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	authDomain "github.com/allisson/notes/internal/auth/domain"
	authUseCase "github.com/allisson/notes/internal/auth/usecase"
)

// setUserRoleOutput is the command result rendered to the user.
type setUserRoleOutput struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// RunSetUserRole changes the role of an existing user identified by email.
// Registration always creates regular users, so promoting the first
// administrator happens through this command.
//
// Requirements: Database must be migrated and accessible.
func RunSetUserRole(
	ctx context.Context,
	userRepo authUseCase.UserRepository,
	logger *slog.Logger,
	email string,
	role string,
	format string,
	io IOTuple,
) error {
	newRole, err := parseRole(role)
	if err != nil {
		return err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return fmt.Errorf("email is required")
	}

	user, err := userRepo.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	user.Role = newRole
	if err := userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	output := setUserRoleOutput{
		ID:    user.ID.String(),
		Email: user.Email,
		Role:  string(user.Role),
	}

	if format == "json" {
		outputJSON(output, io.Writer)
	} else {
		outputText(output, io.Writer)
	}

	logger.Info("user role updated",
		slog.String("user_id", output.ID),
		slog.String("role", output.Role),
	)

	return nil
}

// parseRole converts a role string to an authDomain.Role.
// Returns an error if the role string is invalid.
func parseRole(role string) (authDomain.Role, error) {
	switch role {
	case "admin":
		return authDomain.RoleAdmin, nil
	case "user":
		return authDomain.RoleUser, nil
	default:
		return "", fmt.Errorf("invalid role: %s (valid options: admin, user)", role)
	}
}

// outputText outputs the result in human-readable text format.
func outputText(output setUserRoleOutput, writer io.Writer) {
	fmt.Fprintf(writer, "User ID: %s\n", output.ID)
	fmt.Fprintf(writer, "Email:   %s\n", output.Email)
	fmt.Fprintf(writer, "Role:    %s\n", output.Role)
}

// outputJSON outputs the result in JSON format for machine consumption.
func outputJSON(output setUserRoleOutput, writer io.Writer) {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(output)
}
