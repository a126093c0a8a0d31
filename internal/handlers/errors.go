// internal/handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/catalog-admin/internal/models"
	"github.com/javajoker/catalog-admin/internal/services"
	"github.com/javajoker/catalog-admin/internal/utils"
)

// respondError maps service errors onto the response envelope. current, when
// not nil, is attached as details so the client can redraw the wizard.
func respondError(c *gin.Context, err error, current interface{}) {
	switch {
	case errors.Is(err, services.ErrWizardNotFound):
		utils.NotFoundResponse(c, "Wizard session")
	case errors.Is(err, services.ErrVariantNotFound):
		utils.NotFoundResponse(c, "Variant option")
	case errors.Is(err, services.ErrCombinationNotFound):
		utils.NotFoundResponse(c, "Combination")
	case errors.Is(err, services.ErrImageNotFound):
		utils.NotFoundResponse(c, "Image")
	case errors.Is(err, services.ErrInvalidTransition):
		utils.ErrorResponse(c, http.StatusConflict, "INVALID_TRANSITION", err.Error(), current)
	case errors.Is(err, services.ErrDraftIncomplete):
		details := gin.H{"wizard": current}
		var invalid *models.InvalidDraftError
		if errors.As(err, &invalid) {
			details["field"] = invalid.Field
			details["reason"] = invalid.Reason
		}
		utils.UnprocessableResponse(c, "DRAFT_INCOMPLETE", "Product draft is incomplete", details)
	case errors.Is(err, services.ErrBlankCategoryName):
		utils.BadRequestResponse(c, "Category name cannot be blank", nil)
	case errors.Is(err, services.ErrUnknownCategory):
		utils.UnprocessableResponse(c, "UNKNOWN_CATEGORY", "Category does not exist", gin.H{"wizard": current})
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.UnauthorizedResponse(c, "Invalid credentials!")
	case errors.Is(err, services.ErrImageTooLarge):
		utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error(), nil)
	case errors.Is(err, services.ErrInvalidImage):
		utils.BadRequestResponse(c, "Invalid image file", err.Error())
	default:
		_ = c.Error(err)
		utils.InternalErrorResponse(c, "")
	}
}

// bindJSON decodes and validates the request body, writing the error
// response itself on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return false
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return false
	}
	return true
}
