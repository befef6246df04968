package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/node42/node42-backend/internal/http/response"
	"github.com/node42/node42-backend/internal/platform/logger"
	"github.com/node42/node42-backend/internal/services"
)

type JobHandler struct {
	log        *logger.Logger
	jobService services.JobService
}

func NewJobHandler(log *logger.Logger, jobService services.JobService) *JobHandler {
	return &JobHandler{
		log:        log.With("handler", "JobHandler"),
		jobService: jobService,
	}
}

func (h *JobHandler) GetCoreJobs(c *gin.Context) {
	marketName := c.Query("marketName")
	view := h.jobService.CoreJobsForMarket(c.Request.Context(), marketName)
	response.RespondOK(c, view)
}

func (h *JobHandler) GetProductJobs(c *gin.Context) {
	commodityID := c.Query("commodityId")
	if commodityID == "" {
		response.RespondError(c, http.StatusBadRequest, "commodityId is required", nil)
		return
	}
	view := h.jobService.ProductJobsForCommodity(c.Request.Context(), commodityID)
	response.RespondOK(c, view)
}
