package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"api_drugstore/internal/apperrors"
	"api_drugstore/internal/idempotency"
)

// idempotentRouter serves POST /sale/add through the Idempotency
// middleware. The handler answers with the status in the X-Status header.
func idempotentRouter(t *testing.T, store idempotency.Store, calls *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zaptest.NewLogger(t)
	r := gin.New()
	r.POST("/sale/add", Idempotency(store, logger), func(c *gin.Context) {
		*calls++
		if c.GetHeader("X-Status") == "fail" {
			writeError(c, logger, apperrors.NotFound("Customer"))
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": *calls})
	})
	return r
}

func post(r http.Handler, key, status string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/sale/add", nil)
	if key != "" {
		req.Header.Set(idempotencyKeyHeader, key)
	}
	if status != "" {
		req.Header.Set("X-Status", status)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func redisStore(t *testing.T) idempotency.Store {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return idempotency.NewRedisStore(rdb, time.Hour)
}

func TestIdempotency_DuplicateRejected(t *testing.T) {
	var calls int
	r := idempotentRouter(t, redisStore(t), &calls)

	assert.Equal(t, http.StatusCreated, post(r, "k1", "").Code)

	w := post(r, "k1", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"message":"Duplicate request.","status":409}`, w.Body.String())
	assert.Equal(t, 1, calls)

	assert.Equal(t, http.StatusCreated, post(r, "k2", "").Code)
	assert.Equal(t, http.StatusCreated, post(r, "", "").Code)
	assert.Equal(t, http.StatusCreated, post(r, "", "").Code)
	assert.Equal(t, 4, calls)
}

func TestIdempotency_FailureReleasesKey(t *testing.T) {
	var calls int
	r := idempotentRouter(t, redisStore(t), &calls)

	assert.Equal(t, http.StatusNotFound, post(r, "k1", "fail").Code)
	assert.Equal(t, http.StatusCreated, post(r, "k1", "").Code)
	assert.Equal(t, http.StatusConflict, post(r, "k1", "").Code)
	assert.Equal(t, 2, calls)
}

type brokenStore struct{}

func (brokenStore) Reserve(context.Context, string) (bool, error) {
	return false, errors.New("connection refused")
}

func (brokenStore) Release(context.Context, string) error { return nil }

func TestIdempotency_StoreDownLetsRequestThrough(t *testing.T) {
	var calls int
	r := idempotentRouter(t, brokenStore{}, &calls)

	assert.Equal(t, http.StatusCreated, post(r, "k1", "").Code)
	assert.Equal(t, http.StatusCreated, post(r, "k1", "").Code)
	assert.Equal(t, 2, calls)
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(requestIDKey)) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
	assert.Equal(t, "abc-123", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	generated := w.Header().Get(requestIDHeader)
	require.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())
}

func TestMapError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		msg    string
	}{
		{apperrors.Validation("Sale must have a seller."), http.StatusBadRequest, "Sale must have a seller."},
		{apperrors.NotFound("Stock"), http.StatusNotFound, "Stock not found."},
		{apperrors.Conflict("Duplicate request."), http.StatusConflict, "Duplicate request."},
		{errors.New("pq: connection reset"), http.StatusInternalServerError, "Internal server error."},
	}
	for _, tt := range tests {
		status, msg := mapError(tt.err)
		assert.Equal(t, tt.status, status)
		assert.Equal(t, tt.msg, msg)
	}
}
