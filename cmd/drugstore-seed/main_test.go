package main

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"api_drugstore/api"
	"api_drugstore/client"
	"api_drugstore/internal/app"
	"api_drugstore/internal/database/databasetest"
)

func TestRun(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := databasetest.New(t, app.Models()...)
	logger := zaptest.NewLogger(t)
	router := gin.New()
	api.InitRoutes(router, app.NewServices(db, logger, app.Options{}), logger)
	srv := httptest.NewServer(router)
	defer srv.Close()

	require.NoError(t, run(context.Background(), client.New(srv.URL, 5*time.Second), logger))

	c := client.New(srv.URL, 5*time.Second)
	defer c.Close()
	list, err := c.SalesForCustomer(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Len(t, list[0].SaleProducts, 3)
	// 1×10.00 + 2×5.00 + 3×3.75
	assert.Equal(t, "31.25", list[0].Total.StringFixed(2))
}
