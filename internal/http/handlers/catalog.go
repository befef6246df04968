package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/node42/node42-backend/internal/domain"
	"github.com/node42/node42-backend/internal/http/response"
	"github.com/node42/node42-backend/internal/platform/logger"
	"github.com/node42/node42-backend/internal/services"
)

type CatalogHandler struct {
	log            *logger.Logger
	catalogService services.CatalogService
}

func NewCatalogHandler(log *logger.Logger, catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		log:            log.With("handler", "CatalogHandler"),
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) ListCompanies(c *gin.Context) {
	companies, err := h.catalogService.Companies(c.Request.Context())
	if err != nil {
		h.log.Error("ListCompanies failed", "error", err)
		response.RespondError(c, http.StatusInternalServerError, "Failed to fetch companies", nil)
		return
	}
	response.RespondOK(c, gin.H{"companies": companies})
}

func (h *CatalogHandler) ListCommodities(c *gin.Context) {
	companyID := c.Query("companyId")
	productName := c.Query("productName")
	customerID := c.Query("customerId")

	commodities, err := h.catalogService.Commodities(c.Request.Context(), companyID, productName, customerID)
	if err != nil {
		h.log.Error("ListCommodities failed", "error", err, "company_id", companyID, "product_name", productName)
		response.RespondError(c, http.StatusInternalServerError, "Failed to fetch commodities", gin.H{"commodities": []any{}})
		return
	}
	response.RespondOK(c, gin.H{"commodities": commodities})
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	companyID := c.Query("companyId")
	commodityID := c.Query("commodityId")

	products, err := h.catalogService.Products(c.Request.Context(), companyID, commodityID)
	if err != nil {
		h.log.Error("ListProducts failed", "error", err, "company_id", companyID, "commodity_id", commodityID)
		response.RespondError(c, http.StatusInternalServerError, "Failed to fetch products", gin.H{"products": []any{}})
		return
	}
	response.RespondOK(c, gin.H{"products": products})
}

func (h *CatalogHandler) ListUnspscClasses(c *gin.Context) {
	companyName := c.Query("companyName")
	if companyName == "" {
		response.RespondOK(c, gin.H{"classes": []any{}, "grouped": gin.H{}})
		return
	}

	classes, grouped, err := h.catalogService.UnspscClasses(c.Request.Context(), companyName)
	if err != nil {
		h.log.Error("ListUnspscClasses failed", "error", err, "company_name", companyName)
		response.RespondError(c, http.StatusInternalServerError, "Failed to fetch UNSPSC classes", nil)
		return
	}
	response.RespondOK(c, gin.H{"classes": classes, "grouped": grouped})
}

func (h *CatalogHandler) ListUnspscCommodities(c *gin.Context) {
	companyName := c.Query("companyName")
	if companyName == "" {
		response.RespondOK(c, gin.H{"commodities": []domain.UnspscCommodityOption{}})
		return
	}
	className := c.Query("className")

	commodities, err := h.catalogService.UnspscCommodities(c.Request.Context(), companyName, className)
	if err != nil {
		h.log.Error("ListUnspscCommodities failed", "error", err, "company_name", companyName, "class_name", className)
		response.RespondError(c, http.StatusInternalServerError, "Failed to fetch UNSPSC commodities", nil)
		return
	}
	response.RespondOK(c, gin.H{"commodities": commodities})
}
