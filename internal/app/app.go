// Package app wires storages and services together on one database.
package app

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"api_drugstore/api"
	"api_drugstore/internal/addresses"
	"api_drugstore/internal/customers"
	"api_drugstore/internal/database"
	"api_drugstore/internal/idempotency"
	"api_drugstore/internal/products"
	"api_drugstore/internal/sales"
	"api_drugstore/internal/sellers"
)

// Models lists every persisted type, in migration order.
func Models() []any {
	return []any{
		&customers.Customer{},
		&sellers.Seller{},
		&products.Product{},
		&products.Stock{},
		&addresses.Address{},
		&addresses.CustomerAddress{},
		&sales.Sale{},
		&sales.SaleProduct{},
	}
}

type Options struct {
	StrictStock bool
	Idempotency idempotency.Store
}

// NewServices builds the services behind the HTTP routes.
func NewServices(db *gorm.DB, logger *zap.Logger, opts Options) api.Services {
	tx := database.NewTxManager(db)

	customerStorage := customers.NewGormStorage(db)
	sellerStorage := sellers.NewGormStorage(db)
	productStorage := products.NewGormStorage(db)

	return api.Services{
		Customers: customers.NewService(customerStorage, logger.Named("customers")),
		Sellers:   sellers.NewService(sellerStorage, logger.Named("sellers")),
		Products:  products.NewService(productStorage, tx, logger.Named("products")),
		Addresses: addresses.NewService(addresses.NewGormStorage(db), customerStorage, tx, logger.Named("addresses")),
		Sales: sales.NewService(sales.Dependencies{
			Storage:   sales.NewGormStorage(db),
			Customers: customerStorage,
			Sellers:   sellerStorage,
			Products:  productStorage,
			Tx:        tx,
		}, logger.Named("sales"), sales.WithStrictStock(opts.StrictStock)),
		Idempotency: opts.Idempotency,
		Health: func(ctx context.Context) error {
			return database.Ping(ctx, db)
		},
	}
}
