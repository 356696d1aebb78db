package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"api_drugstore/internal/addresses"
)

type addressesHandler struct {
	service *addresses.Service
	logger  *zap.Logger
}

func (h *addressesHandler) handleGetAllForCustomer(c *gin.Context) {
	customerID, ok := paramID(c, "customerId")
	if !ok {
		return
	}
	list, err := h.service.FindAllForCustomer(c.Request.Context(), customerID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *addressesHandler) handleAdd(c *gin.Context) {
	var req addresses.AddAddressRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}
	address, err := h.service.AddAddress(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, address)
}

func (h *addressesHandler) handleUpdate(c *gin.Context) {
	var req addresses.AddressDTO
	if !bindJSON(c, h.logger, &req) {
		return
	}
	address, err := h.service.UpdateAddress(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, address)
}

func (h *addressesHandler) handleActivateAsShipping(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.service.ActivateAsShipping(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *addressesHandler) handleDelete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteAddress(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
