package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"api_drugstore/api"
	"api_drugstore/client"
	"api_drugstore/internal/app"
	"api_drugstore/internal/customers"
	"api_drugstore/internal/database/databasetest"
	"api_drugstore/internal/products"
	"api_drugstore/internal/sales"
	"api_drugstore/internal/sellers"
)

func newTestClient(t *testing.T) *client.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := databasetest.New(t, app.Models()...)
	logger := zaptest.NewLogger(t)

	router := gin.New()
	api.InitRoutes(router, app.NewServices(db, logger, app.Options{}), logger)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	c := client.New(srv.URL, 5*time.Second)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestClient_SaleFlow(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	cust, err := c.AddCustomer(ctx, customers.AddCustomerRequest{FirstName: "Ana", LastName: "Souza", Email: "ana@example.com"})
	require.NoError(t, err)
	sel, err := c.AddSeller(ctx, sellers.AddSellerRequest{
		FirstName: "Rui", LastName: "Costa", Shift: sellers.ShiftNight,
		AdmissionDate: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	prod, err := c.AddProduct(ctx, products.AddProductRequest{
		Name: "Aspirin", Manufacturer: "Bayer", Price: decimal.RequireFromString("12.50"), Stock: 10,
	})
	require.NoError(t, err)

	pid := prod.ID
	sale, err := c.AddSale(ctx, sales.AddSaleRequest{
		PaymentMethod: "CARD",
		CustomerID:    cust.ID,
		SellerID:      sel.ID,
		SaleProducts:  []sales.SaleProductRequest{{ProductID: &pid, Quantity: 2}},
	}, "order-1")
	require.NoError(t, err)
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(25)), "total %s", sale.Total)

	list, err := c.SalesForCustomer(ctx, cust.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, sale.ID, list[0].ID)
	assert.Equal(t, "Aspirin", list[0].SaleProducts[0].ProductName)
}

func TestClient_APIError(t *testing.T) {
	c := newTestClient(t)

	_, err := c.AddSale(context.Background(), sales.AddSaleRequest{PaymentMethod: "CASH", CustomerID: 1, SellerID: 1}, "")
	require.Error(t, err)

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Sale must have at least one product.", apiErr.Message)
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := client.New(url, time.Second)
	defer c.Close()

	_, err := c.SalesForCustomer(context.Background(), 1)
	require.Error(t, err)
	var apiErr *client.APIError
	assert.False(t, errors.As(err, &apiErr))
}
