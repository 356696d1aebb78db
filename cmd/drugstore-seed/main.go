// Command drugstore-seed loads a demo catalogue into a running drugstore API
// and places one sale against it.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"api_drugstore/client"
	"api_drugstore/internal/customers"
	"api_drugstore/internal/products"
	"api_drugstore/internal/sales"
	"api_drugstore/internal/sellers"
)

var catalogue = []products.AddProductRequest{
	{Name: "Aspirin 500mg", Manufacturer: "Bayer", Price: decimal.RequireFromString("10.00"), Stock: 100},
	{Name: "Dipyrone 1g", Manufacturer: "Medley", Price: decimal.RequireFromString("5.00"), Stock: 50},
	{Name: "Saline 0.9% 500ml", Manufacturer: "Baxter", Price: decimal.RequireFromString("3.75"), Stock: 200},
}

func main() {
	baseURL := flag.String("url", "http://localhost:8081", "drugstore API base URL")
	timeout := flag.Duration("timeout", 10*time.Second, "per-request timeout")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := run(context.Background(), client.New(*baseURL, *timeout), logger); err != nil {
		logger.Error("seed failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, c *client.Client, logger *zap.Logger) error {
	defer c.Close()

	cust, err := c.AddCustomer(ctx, customers.AddCustomerRequest{
		FirstName: "Maria", LastName: "Oliveira", Email: "maria." + uuid.NewString()[:8] + "@example.com",
	})
	if err != nil {
		return err
	}
	logger.Info("customer created", zap.Int64("customer_id", cust.ID))

	sel, err := c.AddSeller(ctx, sellers.AddSellerRequest{
		FirstName: "João", LastName: "Pereira", Shift: sellers.ShiftDay, AdmissionDate: time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	logger.Info("seller created", zap.Int64("seller_id", sel.ID))

	items := make([]sales.SaleProductRequest, 0, len(catalogue))
	for i, p := range catalogue {
		created, err := c.AddProduct(ctx, p)
		if err != nil {
			return err
		}
		logger.Info("product created", zap.Int64("product_id", created.ID), zap.String("name", created.Name))
		pid := created.ID
		items = append(items, sales.SaleProductRequest{ProductID: &pid, Quantity: i + 1})
	}

	sale, err := c.AddSale(ctx, sales.AddSaleRequest{
		PaymentMethod: "CASH",
		CustomerID:    cust.ID,
		SellerID:      sel.ID,
		SaleProducts:  items,
	}, uuid.NewString())
	if err != nil {
		return err
	}
	logger.Info("sale created",
		zap.Int64("sale_id", sale.ID),
		zap.String("total", sale.Total.StringFixed(2)),
		zap.Int("items", len(sale.SaleProducts)),
	)
	return nil
}
