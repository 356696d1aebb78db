package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"api_drugstore/internal/apperrors"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func respondError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, errorBody{Message: msg, Status: status})
}

// mapError returns the status and client-facing message for err. Unknown
// errors never leak their text.
func mapError(err error) (int, string) {
	var (
		v  *apperrors.ValidationError
		nf *apperrors.NotFoundError
		cf *apperrors.ConflictError
	)
	switch {
	case errors.As(err, &v):
		return http.StatusBadRequest, v.Message
	case errors.As(err, &nf):
		return http.StatusNotFound, nf.Error()
	case errors.As(err, &cf):
		return http.StatusConflict, cf.Message
	default:
		return http.StatusInternalServerError, "Internal server error."
	}
}

func writeError(c *gin.Context, logger *zap.Logger, err error) {
	status, msg := mapError(err)
	fields := []zap.Field{
		zap.String("path", c.FullPath()),
		zap.Int("status", status),
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", fields...)
	} else {
		logger.Warn("request rejected", fields...)
	}
	respondError(c, status, msg)
}

// paramID parses a positive integer path parameter. It writes a 400 and
// returns false when the value is malformed.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid "+name+".")
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, logger *zap.Logger, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		logger.Warn("failed to bind JSON request", zap.String("path", c.FullPath()), zap.Error(err))
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return false
	}
	return true
}
