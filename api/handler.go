package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"api_drugstore/internal/sales"
)

// salesHandler holds the sales service and implements HTTP handlers for sales operations.
type salesHandler struct {
	salesService *sales.Service
	logger       *zap.Logger
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(salesService *sales.Service, logger *zap.Logger) *salesHandler {
	return &salesHandler{
		salesService: salesService,
		logger:       logger,
	}
}

// handleCreateSale handles the POST /sale/add endpoint.
func (h *salesHandler) handleCreateSale(ctx *gin.Context) {
	var req sales.AddSaleRequest
	if !bindJSON(ctx, h.logger, &req) {
		return
	}

	sale, err := h.salesService.AddSale(ctx.Request.Context(), req)
	if err != nil {
		writeError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, sale)
}

func (h *salesHandler) handleGetSalesForCustomer(ctx *gin.Context) {
	customerID, ok := paramID(ctx, "customerId")
	if !ok {
		return
	}

	list, err := h.salesService.FindAllSalesForCustomer(ctx.Request.Context(), customerID)
	if err != nil {
		writeError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, list)
}

func (h *salesHandler) handleGetSale(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	sale, err := h.salesService.FindSaleByID(ctx.Request.Context(), id)
	if err != nil {
		writeError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, sale)
}
