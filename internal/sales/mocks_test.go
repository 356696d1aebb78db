package sales

import (
	"context"

	"github.com/stretchr/testify/mock"

	"api_drugstore/internal/customers"
	"api_drugstore/internal/products"
	"api_drugstore/internal/sellers"
)

type mockStorage struct{ mock.Mock }

func (m *mockStorage) CreateSale(ctx context.Context, sale *Sale) error {
	return m.Called(ctx, sale).Error(0)
}

func (m *mockStorage) CreateSaleProducts(ctx context.Context, items []SaleProduct) error {
	return m.Called(ctx, items).Error(0)
}

func (m *mockStorage) FindSaleByID(ctx context.Context, id int64) (*Sale, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*Sale)
	return s, args.Error(1)
}

func (m *mockStorage) FindSalesByCustomerID(ctx context.Context, customerID int64) ([]Sale, error) {
	args := m.Called(ctx, customerID)
	s, _ := args.Get(0).([]Sale)
	return s, args.Error(1)
}

func (m *mockStorage) FindLineItems(ctx context.Context, saleIDs []int64) ([]LineItem, error) {
	args := m.Called(ctx, saleIDs)
	l, _ := args.Get(0).([]LineItem)
	return l, args.Error(1)
}

type mockCustomers struct{ mock.Mock }

func (m *mockCustomers) FindByID(ctx context.Context, id int64) (*customers.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customers.Customer)
	return c, args.Error(1)
}

type mockSellers struct{ mock.Mock }

func (m *mockSellers) FindByID(ctx context.Context, id int64) (*sellers.Seller, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*sellers.Seller)
	return s, args.Error(1)
}

type mockCatalog struct{ mock.Mock }

func (m *mockCatalog) FindByIDs(ctx context.Context, ids []int64) ([]products.Product, error) {
	args := m.Called(ctx, ids)
	p, _ := args.Get(0).([]products.Product)
	return p, args.Error(1)
}

func (m *mockCatalog) DecrementStock(ctx context.Context, productID int64, qty int) (int, error) {
	args := m.Called(ctx, productID, qty)
	return args.Int(0), args.Error(1)
}

// mockTx counts transactions and runs fn without a database.
type mockTx struct{ calls int }

func (m *mockTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}
