package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/node42/node42-backend/internal/http/response"
	"github.com/node42/node42-backend/internal/platform/logger"
	"github.com/node42/node42-backend/internal/services"
)

type ConstraintHandler struct {
	log               *logger.Logger
	constraintService services.ConstraintService
}

func NewConstraintHandler(log *logger.Logger, constraintService services.ConstraintService) *ConstraintHandler {
	return &ConstraintHandler{
		log:               log.With("handler", "ConstraintHandler"),
		constraintService: constraintService,
	}
}

func (h *ConstraintHandler) GetConstraints(c *gin.Context) {
	commodityID := c.Query("commodityId")
	if commodityID == "" {
		response.RespondError(c, http.StatusBadRequest, "commodityId is required", nil)
		return
	}
	view := h.constraintService.ConstraintsForCommodity(c.Request.Context(), commodityID)
	response.RespondOK(c, view)
}
