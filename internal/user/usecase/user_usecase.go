package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	authDomain "github.com/allisson/notes/internal/auth/domain"
	authService "github.com/allisson/notes/internal/auth/service"
	"github.com/allisson/notes/internal/database"
	apperrors "github.com/allisson/notes/internal/errors"
	"github.com/allisson/notes/internal/user/domain"
	appValidation "github.com/allisson/notes/internal/validation"
)

// UserUseCase handles user-related business logic
type UserUseCase struct {
	txManager       database.TxManager
	userRepo        UserRepository
	passwordService authService.PasswordService
	tokenCodec      authService.TokenCodec
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	passwordService authService.PasswordService,
	tokenCodec authService.TokenCodec,
) UseCase {
	return &UserUseCase{
		txManager:       txManager,
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenCodec:      tokenCodec,
	}
}

// validateRegisterUserInput validates the registration input using jellydator/validation
func (uc *UserUseCase) validateRegisterUserInput(input RegisterUserInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(3, 255).Error("name must be between 3 and 255 characters"),
		),
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

// validateUpdateUserInput validates the account update input
func (uc *UserUseCase) validateUpdateUserInput(input UpdateUserInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(3, 255).Error("name must be between 3 and 255 characters"),
		),
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&input.NewPassword,
			validation.Length(5, 255).Error("newPassword must be between 5 and 255 characters"),
		),
	)
	if err != nil {
		return appValidation.WrapValidationError(err)
	}
	if input.NewPassword != "" && input.Password == "" {
		return apperrors.Wrap(apperrors.ErrInvalidCredentials, "current password is required to set a new password")
	}
	return nil
}

// Register creates a new user account and issues its first auth token
func (uc *UserUseCase) Register(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	if err := uc.validateRegisterUserInput(input); err != nil {
		return nil, err
	}

	hashedPassword, err := uc.passwordService.Hash(input.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	user := &domain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Name:         strings.TrimSpace(input.Name),
		Email:        normalizeEmail(input.Email),
		PasswordHash: hashedPassword,
		Role:         authDomain.RoleUser,
	}

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		// Repository maps unique violations to domain.ErrEmailAlreadyTaken
		return uc.userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	token, err := uc.tokenCodec.Issue(user.Identity())
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to issue auth token")
	}

	return &RegisterUserOutput{User: user, Token: token}, nil
}

// GetByID retrieves a user by ID
func (uc *UserUseCase) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// List retrieves users ordered by creation time
func (uc *UserUseCase) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	return uc.userRepo.List(ctx, offset, limit)
}

// Update modifies the caller's own account. The password change path
// requires the current password and verifies it against the stored hash.
func (uc *UserUseCase) Update(
	ctx context.Context,
	caller authDomain.Identity,
	id uuid.UUID,
	input UpdateUserInput,
) (*domain.User, error) {
	if caller.ID != id {
		return nil, apperrors.Wrap(apperrors.ErrForbidden, "cannot modify another user's account")
	}

	if err := uc.validateUpdateUserInput(input); err != nil {
		return nil, err
	}

	var user *domain.User
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = uc.userRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if input.NewPassword != "" {
			valid, _ := uc.passwordService.Verify(input.Password, user.PasswordHash)
			if !valid {
				return apperrors.Wrap(apperrors.ErrInvalidCredentials, "current password mismatch")
			}
			hashedPassword, err := uc.passwordService.Hash(input.NewPassword)
			if err != nil {
				return apperrors.Wrap(err, "failed to hash password")
			}
			user.PasswordHash = hashedPassword
		}

		user.Name = strings.TrimSpace(input.Name)
		user.Email = normalizeEmail(input.Email)

		return uc.userRepo.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes the caller's own account
func (uc *UserUseCase) Delete(ctx context.Context, caller authDomain.Identity, id uuid.UUID) error {
	if caller.ID != id {
		return apperrors.Wrap(apperrors.ErrForbidden, "cannot delete another user's account")
	}
	return uc.userRepo.Delete(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}
