package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/node42/node42-backend/internal/http/response"
	"github.com/node42/node42-backend/internal/platform/logger"
	"github.com/node42/node42-backend/internal/services"
)

type CustomerHandler struct {
	log             *logger.Logger
	customerService services.CustomerService
}

func NewCustomerHandler(log *logger.Logger, customerService services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		log:             log.With("handler", "CustomerHandler"),
		customerService: customerService,
	}
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	response.RespondOK(c, gin.H{"customers": h.customerService.List()})
}
