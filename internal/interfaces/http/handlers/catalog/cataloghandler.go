// Package catalog serves the read-only reference catalog over HTTP.
package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"loomflow/internal/domain/catalog"
	"loomflow/internal/shared/logger"
	"loomflow/internal/shared/utils"
)

type CatalogHandler struct {
	catalogRepo catalog.Repository
	logger      logger.Interface
}

func NewCatalogHandler(catalogRepo catalog.Repository) *CatalogHandler {
	return &CatalogHandler{
		catalogRepo: catalogRepo,
		logger:      logger.NewLogger(),
	}
}

// ListOrders handles GET /catalog/orders
func (h *CatalogHandler) ListOrders(c *gin.Context) {
	orders, err := h.catalogRepo.ListOrders(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", orders)
}

// GetOrder handles GET /catalog/orders/:id
func (h *CatalogHandler) GetOrder(c *gin.Context) {
	order, err := h.catalogRepo.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", order)
}

// GetTemplate handles GET /catalog/templates/:id
func (h *CatalogHandler) GetTemplate(c *gin.Context) {
	template, err := h.catalogRepo.GetTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", template)
}

// ListUsers handles GET /catalog/users
func (h *CatalogHandler) ListUsers(c *gin.Context) {
	users, err := h.catalogRepo.ListUsers(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", users)
}
