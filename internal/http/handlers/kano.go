package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/node42/node42-backend/internal/http/response"
	"github.com/node42/node42-backend/internal/platform/logger"
	"github.com/node42/node42-backend/internal/services"
)

type KanoHandler struct {
	log         *logger.Logger
	kanoService services.KanoService
}

func NewKanoHandler(log *logger.Logger, kanoService services.KanoService) *KanoHandler {
	return &KanoHandler{
		log:         log.With("handler", "KanoHandler"),
		kanoService: kanoService,
	}
}

func (h *KanoHandler) GetKanoRanges(c *gin.Context) {
	marketName := c.Query("marketName")
	if marketName == "" {
		response.RespondError(c, http.StatusBadRequest, "marketName parameter is required", gin.H{"features": []any{}})
		return
	}

	features, err := h.kanoService.FeaturesForMarket(c.Request.Context(), marketName)
	if err != nil {
		h.log.Error("GetKanoRanges failed", "error", err, "market", marketName)
		response.RespondError(c, http.StatusInternalServerError, "Failed to fetch Kano ranges", gin.H{"features": []any{}})
		return
	}
	response.RespondOK(c, gin.H{"features": features, "count": len(features)})
}
