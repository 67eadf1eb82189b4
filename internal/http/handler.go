// Package http provides the HTTP handlers and router for the catalog service.
package http

import (
	nethttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/talhanuhuymaz/Renart-Case/internal/domain/dto"
	"github.com/talhanuhuymaz/Renart-Case/internal/service"
)

// ServiceVersion is reported by the root descriptor endpoint.
const ServiceVersion = "1.0.0"

// Handler provides HTTP handlers for the catalog routes.
type Handler struct {
	catalog service.Catalog
}

// NewHandler creates a new Handler instance.
func NewHandler(catalog service.Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// Info handles GET / requests.
//
// @Summary      Service descriptor
// @Description  Returns the service name, version, available endpoints, and gold price source chain.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.ServiceInfo
// @Router       / [get]
func (h *Handler) Info(c *gin.Context) {
	c.JSON(nethttp.StatusOK, dto.ServiceInfo{
		Message: "Renart Case Backend API",
		Version: ServiceVersion,
		Endpoints: map[string]string{
			"products": "/products - Get all products with calculated prices",
		},
		GoldPriceSource: "MetalpriceAPI (primary) → GoldAPI (secondary) → Fallback ($75/g)",
		Status:          "running",
	})
}

// Products handles GET /products requests.
//
// The response is a bare JSON array rather than an envelope, matching what
// catalog clients expect. Gold price resolution happens per request and
// degrades to a constant, so this endpoint never fails on provider errors.
//
// @Summary      List priced products
// @Description  Returns the full catalog with price and rating computed from a freshly resolved gold price.
// @Tags         Catalog
// @Produce      json
// @Success      200 {array} model.PricedProduct
// @Router       /products [get]
func (h *Handler) Products(c *gin.Context) {
	products := h.catalog.Products(c.Request.Context())
	c.JSON(nethttp.StatusOK, products)
}
