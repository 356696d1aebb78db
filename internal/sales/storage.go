package sales

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"api_drugstore/internal/apperrors"
	"api_drugstore/internal/database"
)

// Storage is the persistence layer for sales and their line items.
type Storage interface {
	CreateSale(ctx context.Context, sale *Sale) error
	CreateSaleProducts(ctx context.Context, items []SaleProduct) error
	FindSaleByID(ctx context.Context, id int64) (*Sale, error)
	FindSalesByCustomerID(ctx context.Context, customerID int64) ([]Sale, error)
	FindLineItems(ctx context.Context, saleIDs []int64) ([]LineItem, error)
}

// GormStorage implements Storage on top of gorm.
type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

var _ Storage = (*GormStorage)(nil)

func (s *GormStorage) CreateSale(ctx context.Context, sale *Sale) error {
	if err := database.Conn(ctx, s.db).Create(sale).Error; err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateSaleProducts inserts items in one statement and fills their ids.
func (s *GormStorage) CreateSaleProducts(ctx context.Context, items []SaleProduct) error {
	if len(items) == 0 {
		return nil
	}
	if err := database.Conn(ctx, s.db).Create(&items).Error; err != nil {
		return fmt.Errorf("insert sale products: %w", err)
	}
	return nil
}

func (s *GormStorage) FindSaleByID(ctx context.Context, id int64) (*Sale, error) {
	var sale Sale
	err := database.Conn(ctx, s.db).First(&sale, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Sale")
	}
	if err != nil {
		return nil, fmt.Errorf("find sale %d: %w", id, err)
	}
	return &sale, nil
}

func (s *GormStorage) FindSalesByCustomerID(ctx context.Context, customerID int64) ([]Sale, error) {
	out := make([]Sale, 0)
	err := database.Conn(ctx, s.db).
		Where("customer_id = ?", customerID).
		Order("id").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("find sales for customer %d: %w", customerID, err)
	}
	return out, nil
}

// FindLineItems returns the line items of all given sales, in insertion
// order, with the product name attached.
func (s *GormStorage) FindLineItems(ctx context.Context, saleIDs []int64) ([]LineItem, error) {
	out := make([]LineItem, 0)
	if len(saleIDs) == 0 {
		return out, nil
	}
	err := database.Conn(ctx, s.db).
		Table("sale_products AS sp").
		Select("sp.id, sp.sale_id, sp.product_id, COALESCE(p.name, '') AS product_name, sp.quantity").
		Joins("LEFT JOIN products p ON p.id = sp.product_id").
		Where("sp.sale_id IN ?", saleIDs).
		Order("sp.id").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("find sale line items: %w", err)
	}
	return out, nil
}
