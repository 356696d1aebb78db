package products

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"api_drugstore/internal/apperrors"
	"api_drugstore/internal/database"
)

// Storage is the persistence layer for products and their stock.
type Storage interface {
	Create(ctx context.Context, p *Product, stock *Stock) error
	Delete(ctx context.Context, id int64) error
	FindDTOByID(ctx context.Context, id int64) (*ProductDTO, error)
	FindAllDTOs(ctx context.Context) ([]ProductDTO, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Product, error)
	FindStockByProductID(ctx context.Context, productID int64) (*Stock, error)
	DecrementStock(ctx context.Context, productID int64, qty int) (int, error)
}

// GormStorage implements Storage on top of gorm.
type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

var _ Storage = (*GormStorage)(nil)

func (s *GormStorage) Create(ctx context.Context, p *Product, stock *Stock) error {
	conn := database.Conn(ctx, s.db)
	if err := conn.Create(p).Error; err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	stock.ProductID = p.ID
	if err := conn.Create(stock).Error; err != nil {
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

func (s *GormStorage) Delete(ctx context.Context, id int64) error {
	conn := database.Conn(ctx, s.db)
	if err := conn.Where("product_id = ?", id).Delete(&Stock{}).Error; err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	res := conn.Delete(&Product{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Product")
	}
	return nil
}

func (s *GormStorage) dtoQuery(ctx context.Context) *gorm.DB {
	return database.Conn(ctx, s.db).
		Table("products AS p").
		Select("p.id, p.name, p.manufacturer, p.price, COALESCE(s.quantity, 0) AS stock").
		Joins("LEFT JOIN stocks s ON s.product_id = p.id")
}

func (s *GormStorage) FindDTOByID(ctx context.Context, id int64) (*ProductDTO, error) {
	var out []ProductDTO
	if err := s.dtoQuery(ctx).Where("p.id = ?", id).Scan(&out).Error; err != nil {
		return nil, fmt.Errorf("find product %d: %w", id, err)
	}
	if len(out) == 0 {
		return nil, apperrors.NotFound("Product")
	}
	return &out[0], nil
}

func (s *GormStorage) FindAllDTOs(ctx context.Context) ([]ProductDTO, error) {
	out := make([]ProductDTO, 0)
	if err := s.dtoQuery(ctx).Order("p.id").Scan(&out).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}

// FindByIDs loads every product whose id is in ids with a single query.
// Missing ids are simply absent from the result.
func (s *GormStorage) FindByIDs(ctx context.Context, ids []int64) ([]Product, error) {
	out := make([]Product, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	if err := database.Conn(ctx, s.db).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("find products by ids: %w", err)
	}
	return out, nil
}

func (s *GormStorage) FindStockByProductID(ctx context.Context, productID int64) (*Stock, error) {
	var st Stock
	err := database.Conn(ctx, s.db).Where("product_id = ?", productID).First(&st).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Stock")
	}
	if err != nil {
		return nil, fmt.Errorf("find stock for product %d: %w", productID, err)
	}
	return &st, nil
}

// DecrementStock subtracts qty from the product's stock in a single UPDATE
// and returns the resulting quantity. The subtraction happens in the
// database, so concurrent decrements never overwrite each other. The result
// may be negative.
func (s *GormStorage) DecrementStock(ctx context.Context, productID int64, qty int) (int, error) {
	conn := database.Conn(ctx, s.db)
	res := conn.Model(&Stock{}).
		Where("product_id = ?", productID).
		Update("quantity", gorm.Expr("quantity - ?", qty))
	if res.Error != nil {
		return 0, fmt.Errorf("decrement stock for product %d: %w", productID, res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, apperrors.NotFound("Stock")
	}

	var st Stock
	if err := conn.Where("product_id = ?", productID).Take(&st).Error; err != nil {
		return 0, fmt.Errorf("read stock for product %d: %w", productID, err)
	}
	return st.Quantity, nil
}
