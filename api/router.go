package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"api_drugstore/internal/addresses"
	"api_drugstore/internal/customers"
	"api_drugstore/internal/idempotency"
	"api_drugstore/internal/products"
	"api_drugstore/internal/sales"
	"api_drugstore/internal/sellers"
)

// Services are the domain services the routes are bound to.
type Services struct {
	Customers *customers.Service
	Sellers   *sellers.Service
	Products  *products.Service
	Addresses *addresses.Service
	Sales     *sales.Service

	// Idempotency guards POST /sale/add. Nil disables the check.
	Idempotency idempotency.Store
	// Health reports whether the backing store is reachable.
	Health func(ctx context.Context) error
}

// InitRoutes registers every endpoint and the shared middleware on the
// given Gin engine.
func InitRoutes(e *gin.Engine, svc Services, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	e.Use(RequestID(), RequestLogger(logger))

	salesHandler := NewSalesHandler(svc.Sales, logger)
	saleAdd := []gin.HandlerFunc{salesHandler.handleCreateSale}
	if svc.Idempotency != nil {
		saleAdd = append([]gin.HandlerFunc{Idempotency(svc.Idempotency, logger)}, saleAdd...)
	}
	sale := e.Group("/sale")
	sale.POST("/add", saleAdd...)
	sale.GET("/all-for-customer=:customerId", salesHandler.handleGetSalesForCustomer)
	sale.GET("/by-id=:id", salesHandler.handleGetSale)

	ch := &customersHandler{service: svc.Customers, logger: logger}
	customer := e.Group("/customer")
	customer.GET("/all", ch.handleGetAll)
	customer.GET("/by-id=:id", ch.handleGetByID)
	customer.GET("/by-name=:name", ch.handleGetByName)
	customer.POST("/add", ch.handleAdd)
	customer.POST("/update", ch.handleUpdate)
	customer.DELETE("/delete=:id", ch.handleDelete)

	sh := &sellersHandler{service: svc.Sellers, logger: logger}
	seller := e.Group("/seller")
	seller.GET("/all", sh.handleGetAll)
	seller.GET("/by-id=:id", sh.handleGetByID)
	seller.GET("/by-name=:name", sh.handleGetByName)
	seller.POST("/add", sh.handleAdd)
	seller.POST("/update", sh.handleUpdate)
	seller.DELETE("/delete=:id", sh.handleDelete)

	ph := &productsHandler{service: svc.Products, logger: logger}
	product := e.Group("/products")
	product.GET("/all", ph.handleGetAll)
	product.GET("/:id", ph.handleGetByID)
	product.POST("/add", ph.handleAdd)
	product.DELETE("/delete=:id", ph.handleDelete)

	ah := &addressesHandler{service: svc.Addresses, logger: logger}
	address := e.Group("/address")
	address.GET("/all-for-customer=:customerId", ah.handleGetAllForCustomer)
	address.POST("/add", ah.handleAdd)
	address.POST("/update", ah.handleUpdate)
	address.POST("/activate-address-as-shipping=:id", ah.handleActivateAsShipping)
	address.DELETE("/delete=:id", ah.handleDelete)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	e.GET("/health", func(c *gin.Context) {
		if svc.Health != nil {
			if err := svc.Health(c.Request.Context()); err != nil {
				logger.Error("health check failed", zap.Error(err))
				respondError(c, http.StatusServiceUnavailable, "Database unavailable.")
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
