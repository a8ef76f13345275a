package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/allisson/notes/internal/label/domain"
	appValidation "github.com/allisson/notes/internal/validation"
)

// LabelUseCase handles label-related business logic
type LabelUseCase struct {
	labelRepo LabelRepository
}

// NewLabelUseCase creates a new LabelUseCase
func NewLabelUseCase(labelRepo LabelRepository) UseCase {
	return &LabelUseCase{
		labelRepo: labelRepo,
	}
}

// validateLabelInput validates a label payload
func (uc *LabelUseCase) validateLabelInput(input LabelInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// Create creates a new label owned by the authenticated identity
func (uc *LabelUseCase) Create(ctx context.Context, ownerID uuid.UUID, input LabelInput) (*domain.Label, error) {
	if err := uc.validateLabelInput(input); err != nil {
		return nil, err
	}

	label := &domain.Label{
		ID:      uuid.Must(uuid.NewV7()),
		OwnerID: ownerID,
		Name:    strings.TrimSpace(input.Name),
	}

	if err := uc.labelRepo.Create(ctx, label); err != nil {
		return nil, err
	}

	return label, nil
}

// GetByID retrieves one of the owner's labels
func (uc *LabelUseCase) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Label, error) {
	return uc.labelRepo.GetByID(ctx, ownerID, id)
}

// List retrieves the owner's labels
func (uc *LabelUseCase) List(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*domain.Label, error) {
	return uc.labelRepo.List(ctx, ownerID, offset, limit)
}

// Update renames one of the owner's labels
func (uc *LabelUseCase) Update(ctx context.Context, ownerID, id uuid.UUID, input LabelInput) (*domain.Label, error) {
	if err := uc.validateLabelInput(input); err != nil {
		return nil, err
	}

	label, err := uc.labelRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	label.Name = strings.TrimSpace(input.Name)

	if err := uc.labelRepo.Update(ctx, label); err != nil {
		return nil, err
	}

	return label, nil
}

// Delete removes one of the owner's labels
func (uc *LabelUseCase) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return uc.labelRepo.Delete(ctx, ownerID, id)
}
