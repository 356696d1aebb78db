package sales

import (
	"context"

	"api_drugstore/internal/apperrors"
	"api_drugstore/internal/customers"
	"api_drugstore/internal/products"
	"api_drugstore/internal/sellers"
)

type CustomerFinder interface {
	FindByID(ctx context.Context, id int64) (*customers.Customer, error)
}

type SellerFinder interface {
	FindByID(ctx context.Context, id int64) (*sellers.Seller, error)
}

// ProductCatalog is the slice of the product store a sale needs: batched
// product reads and in-place stock decrements.
type ProductCatalog interface {
	FindByIDs(ctx context.Context, ids []int64) ([]products.Product, error)
	DecrementStock(ctx context.Context, productID int64, qty int) (int, error)
}

type resolution struct {
	customer *customers.Customer
	seller   *sellers.Seller
	products map[int64]products.Product
}

// resolve loads every entity req refers to, failing on the first one
// missing. Products are fetched with one query.
func (s *Service) resolve(ctx context.Context, req AddSaleRequest) (*resolution, error) {
	customer, err := s.customers.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	seller, err := s.sellers.FindByID(ctx, req.SellerID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(req.SaleProducts))
	for _, item := range req.SaleProducts {
		ids = append(ids, *item.ProductID)
	}
	found, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	catalog := make(map[int64]products.Product, len(found))
	for _, p := range found {
		catalog[p.ID] = p
	}
	for _, id := range ids {
		if _, ok := catalog[id]; !ok {
			return nil, apperrors.NotFound("Product")
		}
	}

	return &resolution{customer: customer, seller: seller, products: catalog}, nil
}
