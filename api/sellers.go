package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"api_drugstore/internal/sellers"
)

type sellersHandler struct {
	service *sellers.Service
	logger  *zap.Logger
}

func (h *sellersHandler) handleGetAll(c *gin.Context) {
	list, err := h.service.FindAllSellers(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *sellersHandler) handleGetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	seller, err := h.service.FindSellerByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, seller)
}

func (h *sellersHandler) handleGetByName(c *gin.Context) {
	list, err := h.service.FindSellersByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *sellersHandler) handleAdd(c *gin.Context) {
	var req sellers.AddSellerRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}
	seller, err := h.service.AddSeller(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, seller)
}

func (h *sellersHandler) handleUpdate(c *gin.Context) {
	var req sellers.SellerDTO
	if !bindJSON(c, h.logger, &req) {
		return
	}
	seller, err := h.service.UpdateSeller(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, seller)
}

func (h *sellersHandler) handleDelete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteSeller(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
