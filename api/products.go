package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"api_drugstore/internal/products"
)

type productsHandler struct {
	service *products.Service
	logger  *zap.Logger
}

func (h *productsHandler) handleGetAll(c *gin.Context) {
	list, err := h.service.FindAllProducts(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *productsHandler) handleGetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	product, err := h.service.FindProductByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *productsHandler) handleAdd(c *gin.Context) {
	var req products.AddProductRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}
	product, err := h.service.AddProduct(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *productsHandler) handleDelete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteProduct(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
