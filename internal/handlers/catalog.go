// internal/handlers/catalog.go
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/catalog-admin/internal/services"
	"github.com/javajoker/catalog-admin/internal/utils"
)

type CatalogHandler struct {
	store            *services.CatalogStore
	dashboardService *services.DashboardService
	exportService    *services.ExportService
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"notblank,max=100"`
}

func NewCatalogHandler(store *services.CatalogStore, dashboardService *services.DashboardService, exportService *services.ExportService) *CatalogHandler {
	return &CatalogHandler{
		store:            store,
		dashboardService: dashboardService,
		exportService:    exportService,
	}
}

// GET /dashboard?tab=
func (h *CatalogHandler) GetDashboard(c *gin.Context) {
	utils.SuccessResponse(c, h.dashboardService.View(c.Query("tab")))
}

// GET /catalog
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	utils.SuccessResponse(c, h.dashboardService.Catalog())
}

// GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	products := h.dashboardService.ListProducts(params.Category, params.Search)
	start, end := utils.PageBounds(params, len(products))

	result := utils.CreatePaginationResult(products[start:end], int64(len(products)), params)
	utils.PaginatedResponse(c, result)
}

// GET /categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	utils.SuccessResponse(c, h.store.Categories())
}

// POST /categories
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.store.AddCategory(req.Name)
	if err != nil {
		respondError(c, err, nil)
		return
	}

	utils.CreatedResponse(c, category)
}

// GET /reports/catalog.xlsx
func (h *CatalogHandler) ExportCatalog(c *gin.Context) {
	buf, err := h.exportService.Workbook(h.store.GetState())
	if err != nil {
		respondError(c, err, nil)
		return
	}

	filename := fmt.Sprintf("catalog-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, services.XLSXContentType, buf.Bytes())
}
