package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"api_drugstore/internal/customers"
)

type customersHandler struct {
	service *customers.Service
	logger  *zap.Logger
}

func (h *customersHandler) handleGetAll(c *gin.Context) {
	list, err := h.service.FindAllCustomers(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *customersHandler) handleGetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	customer, err := h.service.FindCustomerByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *customersHandler) handleGetByName(c *gin.Context) {
	list, err := h.service.FindCustomersByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *customersHandler) handleAdd(c *gin.Context) {
	var req customers.AddCustomerRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}
	customer, err := h.service.AddCustomer(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *customersHandler) handleUpdate(c *gin.Context) {
	var req customers.CustomerDTO
	if !bindJSON(c, h.logger, &req) {
		return
	}
	customer, err := h.service.UpdateCustomer(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *customersHandler) handleDelete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteCustomer(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
