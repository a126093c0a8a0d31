// internal/handlers/wizard.go
package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/javajoker/catalog-admin/internal/models"
	"github.com/javajoker/catalog-admin/internal/services"
	"github.com/javajoker/catalog-admin/internal/utils"
)

// WizardHandler exposes the add-product wizard. Every edit endpoint is
// accepted on any step and returns the updated session view.
type WizardHandler struct {
	wizardService  *services.WizardService
	storageService *services.StorageService
}

type DescriptionRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=200"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	Brand       *string `json:"brand" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
}

type VariantRequest struct {
	Name *string `json:"name" validate:"omitempty,max=100"`
	// Comma separated, as typed into the values field.
	Values *string `json:"values"`
}

type CombinationRequest struct {
	SKU      *string             `json:"sku" validate:"omitempty,max=100"`
	Quantity *utils.NumericInput `json:"quantity"`
	InStock  *bool               `json:"inStock"`
}

type PricingRequest struct {
	PriceINR       *utils.NumericInput `json:"priceInr"`
	DiscountValue  *utils.NumericInput `json:"discountValue"`
	DiscountMethod *string             `json:"discountMethod" validate:"omitempty,oneof=pct flat"`
}

func NewWizardHandler(wizardService *services.WizardService, storageService *services.StorageService) *WizardHandler {
	return &WizardHandler{
		wizardService:  wizardService,
		storageService: storageService,
	}
}

// POST /products/drafts
func (h *WizardHandler) StartDraft(c *gin.Context) {
	utils.CreatedResponse(c, h.wizardService.Start())
}

// GET /products/drafts/:id
func (h *WizardHandler) GetDraft(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	view, err := h.wizardService.Get(id)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	utils.SuccessResponse(c, view)
}

// PATCH /products/drafts/:id/description
func (h *WizardHandler) UpdateDescription(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req DescriptionRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.wizardService.SetDescription(id, services.DescriptionUpdate{
		Name:        req.Name,
		Category:    req.Category,
		Brand:       req.Brand,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err, view)
		return
	}
	utils.SuccessResponse(c, view)
}

// POST /products/drafts/:id/image
func (h *WizardHandler) UploadImage(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	if _, err := h.wizardService.Get(id); err != nil {
		respondError(c, err, nil)
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, "No image uploaded", err.Error())
		return
	}
	if limit := h.storageService.MaxSize(); limit > 0 && header.Size > limit {
		respondError(c, services.ErrImageTooLarge, nil)
		return
	}

	file, err := header.Open()
	if err != nil {
		utils.BadRequestResponse(c, "Failed to read upload", err.Error())
		return
	}
	defer file.Close()

	uploaded, err := h.storageService.UploadImage(file)
	if err != nil {
		respondError(c, err, nil)
		return
	}

	view, err := h.wizardService.AttachImage(id, uploaded)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	utils.SuccessResponse(c, gin.H{"upload": uploaded, "wizard": view})
}

// POST /products/drafts/:id/variants
func (h *WizardHandler) AddVariant(c *gin.Context) {
	h.update(c, func(w *services.Wizard) error {
		w.AddVariant()
		return nil
	})
}

// PATCH /products/drafts/:id/variants/:index
func (h *WizardHandler) UpdateVariant(c *gin.Context) {
	index, ok := variantIndex(c)
	if !ok {
		return
	}
	var req VariantRequest
	if !bindJSON(c, &req) {
		return
	}
	h.update(c, func(w *services.Wizard) error {
		return w.UpdateVariant(index, services.VariantUpdate{Name: req.Name, Values: req.Values})
	})
}

// DELETE /products/drafts/:id/variants/:index
func (h *WizardHandler) RemoveVariant(c *gin.Context) {
	index, ok := variantIndex(c)
	if !ok {
		return
	}
	h.update(c, func(w *services.Wizard) error {
		return w.RemoveVariant(index)
	})
}

// POST /products/drafts/:id/combinations/generate
func (h *WizardHandler) GenerateCombinations(c *gin.Context) {
	h.update(c, func(w *services.Wizard) error {
		w.GenerateCombinations()
		return nil
	})
}

// PATCH /products/drafts/:id/combinations/*key
func (h *WizardHandler) UpdateCombination(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	var req CombinationRequest
	if !bindJSON(c, &req) {
		return
	}

	update := services.CombinationUpdate{SKU: req.SKU, InStock: req.InStock}
	if req.Quantity != nil {
		q := string(*req.Quantity)
		update.Quantity = &q
	}
	h.update(c, func(w *services.Wizard) error {
		return w.UpdateCombination(key, update)
	})
}

// PATCH /products/drafts/:id/pricing
func (h *WizardHandler) UpdatePricing(c *gin.Context) {
	var req PricingRequest
	if !bindJSON(c, &req) {
		return
	}

	var update services.PricingUpdate
	if req.PriceINR != nil {
		v := string(*req.PriceINR)
		update.PriceINR = &v
	}
	if req.DiscountValue != nil {
		v := string(*req.DiscountValue)
		update.DiscountValue = &v
	}
	if req.DiscountMethod != nil {
		m := models.DiscountMethod(*req.DiscountMethod)
		update.DiscountMethod = &m
	}
	h.update(c, func(w *services.Wizard) error {
		w.SetPricing(update)
		return nil
	})
}

// POST /products/drafts/:id/next
func (h *WizardHandler) Next(c *gin.Context) {
	h.update(c, (*services.Wizard).Next)
}

// POST /products/drafts/:id/back
func (h *WizardHandler) Back(c *gin.Context) {
	h.update(c, (*services.Wizard).Back)
}

// POST /products/drafts/:id/cancel
func (h *WizardHandler) Cancel(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	if err := h.wizardService.Cancel(id); err != nil {
		current, _ := h.wizardService.Get(id)
		respondError(c, err, current)
		return
	}
	utils.SuccessResponse(c, gin.H{"message": "Draft discarded"})
}

// POST /products/drafts/:id/confirm
func (h *WizardHandler) Confirm(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	product, current, err := h.wizardService.Confirm(id)
	if err != nil {
		respondError(c, err, current)
		return
	}
	utils.CreatedResponse(c, services.Summarize(product))
}

func (h *WizardHandler) update(c *gin.Context, fn func(w *services.Wizard) error) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	view, err := h.wizardService.Update(id, fn)
	if err != nil {
		respondError(c, err, view)
		return
	}
	utils.SuccessResponse(c, view)
}

// sessionID parses the :id path parameter. An id that is not a UUID cannot
// name a session, so it is reported as not found.
func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Wizard session")
		return uuid.Nil, false
	}
	return id, true
}

func variantIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid variant index", nil)
		return 0, false
	}
	return index, true
}
