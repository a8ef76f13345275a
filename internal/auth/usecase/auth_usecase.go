package usecase

import (
	"context"
	"log/slog"
	"strings"

	validation "github.com/jellydator/validation"

	authService "github.com/allisson/notes/internal/auth/service"
	apperrors "github.com/allisson/notes/internal/errors"
	userDomain "github.com/allisson/notes/internal/user/domain"
	appValidation "github.com/allisson/notes/internal/validation"
)

// authUseCase handles credential verification and token issuance
type authUseCase struct {
	userRepo        UserRepository
	passwordService authService.PasswordService
	tokenCodec      authService.TokenCodec
	logger          *slog.Logger
}

// NewAuthUseCase creates a new AuthUseCase
func NewAuthUseCase(
	userRepo UserRepository,
	passwordService authService.PasswordService,
	tokenCodec authService.TokenCodec,
	logger *slog.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenCodec:      tokenCodec,
		logger:          logger,
	}
}

// validateLoginInput validates the login credentials shape
func (uc *authUseCase) validateLoginInput(input LoginInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(5, 255).Error("password must be between 5 and 255 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// Login verifies the credentials and issues a signed auth token.
// Stored hashes in the legacy bcrypt format are upgraded in place on
// successful verification; an upgrade failure does not block the login.
func (uc *authUseCase) Login(ctx context.Context, input LoginInput) (string, error) {
	if err := uc.validateLoginInput(input); err != nil {
		return "", err
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.Wrap(apperrors.ErrInvalidCredentials, "unknown email")
		}
		return "", err
	}

	valid, legacy := uc.passwordService.Verify(input.Password, user.PasswordHash)
	if !valid {
		return "", apperrors.Wrap(apperrors.ErrInvalidCredentials, "password mismatch")
	}

	if legacy {
		if err := uc.upgradePasswordHash(ctx, user, input.Password); err != nil {
			uc.logger.Warn("failed to upgrade legacy password hash",
				slog.String("user_id", user.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	token, err := uc.tokenCodec.Issue(user.Identity())
	if err != nil {
		return "", apperrors.Wrap(err, "failed to issue auth token")
	}

	return token, nil
}

func (uc *authUseCase) upgradePasswordHash(ctx context.Context, user *userDomain.User, plainPassword string) error {
	hashedPassword, err := uc.passwordService.Hash(plainPassword)
	if err != nil {
		return apperrors.Wrap(err, "failed to hash password")
	}
	user.PasswordHash = hashedPassword
	return uc.userRepo.Update(ctx, user)
}
