package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/node42/node42-backend/internal/http/response"
	"github.com/node42/node42-backend/internal/platform/logger"
	"github.com/node42/node42-backend/internal/services"
)

type MarketHandler struct {
	log           *logger.Logger
	marketService services.MarketService
}

func NewMarketHandler(log *logger.Logger, marketService services.MarketService) *MarketHandler {
	return &MarketHandler{
		log:           log.With("handler", "MarketHandler"),
		marketService: marketService,
	}
}

func (h *MarketHandler) ListMarkets(c *gin.Context) {
	commodityID := c.Query("commodityId")
	companyID := c.Query("companyId")

	markets, err := h.marketService.Markets(c.Request.Context(), commodityID, companyID)
	if err != nil {
		h.log.Error("ListMarkets failed", "error", err, "commodity_id", commodityID, "company_id", companyID)
		response.RespondError(c, http.StatusInternalServerError, "Failed to fetch markets", gin.H{"markets": []any{}})
		return
	}
	response.RespondOK(c, gin.H{"markets": markets})
}

func (h *MarketHandler) GetMarket(c *gin.Context) {
	slug := c.Param("id")

	market, err := h.marketService.MarketBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, services.ErrMarketNotFound) {
			response.RespondError(c, http.StatusNotFound, "Market not found", nil)
			return
		}
		h.log.Error("GetMarket failed", "error", err, "slug", slug)
		response.RespondError(c, http.StatusInternalServerError, "Failed to fetch market", nil)
		return
	}
	response.RespondOK(c, gin.H{"market": market})
}
