package products

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"api_drugstore/internal/apperrors"
)

// Transactor runs fn inside a single database transaction.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides catalog operations.
type Service struct {
	storage Storage
	tx      Transactor
	logger  *zap.Logger
}

func NewService(storage Storage, tx Transactor, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{storage: storage, tx: tx, logger: logger}
}

// ValidateAdd checks a new product's fields.
func ValidateAdd(req AddProductRequest) error {
	if req.Name == "" {
		return apperrors.Validation("Product name cannot be empty.")
	}
	if req.Manufacturer == "" {
		return apperrors.Validation("Product manufacturer cannot be empty.")
	}
	if !req.Price.IsPositive() {
		return apperrors.Validation("Product price must be greater than 0.")
	}
	if req.Stock < 0 {
		return apperrors.Validation("Product stock cannot be negative.")
	}
	return nil
}

// AddProduct creates the product and its stock row together.
func (s *Service) AddProduct(ctx context.Context, req AddProductRequest) (*ProductDTO, error) {
	if err := ValidateAdd(req); err != nil {
		return nil, err
	}

	p := &Product{Name: req.Name, Manufacturer: req.Manufacturer, Price: req.Price}
	st := &Stock{Quantity: req.Stock}
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		return s.storage.Create(ctx, p, st)
	})
	if err != nil {
		s.logger.Error("failed to add product", zap.String("name", req.Name), zap.Error(err))
		return nil, fmt.Errorf("add product: %w", err)
	}

	s.logger.Info("product created", zap.Int64("product_id", p.ID))
	return &ProductDTO{ID: p.ID, Name: p.Name, Manufacturer: p.Manufacturer, Price: p.Price, Stock: st.Quantity}, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		return s.storage.Delete(ctx, id)
	})
}

func (s *Service) FindAllProducts(ctx context.Context) ([]ProductDTO, error) {
	return s.storage.FindAllDTOs(ctx)
}

func (s *Service) FindProductByID(ctx context.Context, id int64) (*ProductDTO, error) {
	return s.storage.FindDTOByID(ctx, id)
}
