package sellers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"api_drugstore/internal/apperrors"
	"api_drugstore/internal/database"
)

type Storage interface {
	Create(ctx context.Context, s *Seller) error
	Update(ctx context.Context, s *Seller) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Seller, error)
	FindAll(ctx context.Context) ([]Seller, error)
	FindByName(ctx context.Context, name string) ([]Seller, error)
}

type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

var _ Storage = (*GormStorage)(nil)

func (g *GormStorage) Create(ctx context.Context, s *Seller) error {
	if err := database.Conn(ctx, g.db).Create(s).Error; err != nil {
		return fmt.Errorf("insert seller: %w", err)
	}
	return nil
}

func (g *GormStorage) Update(ctx context.Context, s *Seller) error {
	res := database.Conn(ctx, g.db).Model(&Seller{ID: s.ID}).Updates(map[string]any{
		"first_name":     s.FirstName,
		"last_name":      s.LastName,
		"shift":          s.Shift,
		"admission_date": s.AdmissionDate,
	})
	if res.Error != nil {
		return fmt.Errorf("update seller %d: %w", s.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Seller")
	}
	return nil
}

func (g *GormStorage) Delete(ctx context.Context, id int64) error {
	res := database.Conn(ctx, g.db).Delete(&Seller{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete seller %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Seller")
	}
	return nil
}

func (g *GormStorage) FindByID(ctx context.Context, id int64) (*Seller, error) {
	var s Seller
	err := database.Conn(ctx, g.db).First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Seller")
	}
	if err != nil {
		return nil, fmt.Errorf("find seller %d: %w", id, err)
	}
	return &s, nil
}

func (g *GormStorage) FindAll(ctx context.Context) ([]Seller, error) {
	out := make([]Seller, 0)
	if err := database.Conn(ctx, g.db).Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}
	return out, nil
}

func (g *GormStorage) FindByName(ctx context.Context, name string) ([]Seller, error) {
	out := make([]Seller, 0)
	pattern := "%" + strings.ToLower(name) + "%"
	err := database.Conn(ctx, g.db).
		Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", pattern, pattern).
		Order("id").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("find sellers by name: %w", err)
	}
	return out, nil
}
