// internal/services/errors.go
package services

import (
	"errors"

	"github.com/javajoker/catalog-admin/internal/models"
)

var (
	ErrWizardNotFound      = errors.New("wizard session not found")
	ErrInvalidTransition   = errors.New("transition not allowed from current step")
	ErrDraftIncomplete     = errors.New("draft is not ready to be confirmed")
	ErrVariantNotFound     = errors.New("variant option not found")
	ErrCombinationNotFound = models.ErrCombinationNotFound
	ErrBlankCategoryName   = errors.New("category name cannot be blank")
	ErrUnknownCategory     = errors.New("category does not exist")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidImage        = errors.New("invalid image file")
	ErrImageTooLarge       = errors.New("image exceeds maximum allowed size")
	ErrImageNotFound       = errors.New("image not found")
)
