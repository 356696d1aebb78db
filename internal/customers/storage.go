package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"api_drugstore/internal/apperrors"
	"api_drugstore/internal/database"
)

// Storage is the persistence layer for customers.
type Storage interface {
	Create(ctx context.Context, c *Customer) error
	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Customer, error)
	FindAll(ctx context.Context) ([]Customer, error)
	FindByName(ctx context.Context, name string) ([]Customer, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	EmailOwner(ctx context.Context, email string) (int64, error)
}

type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

var _ Storage = (*GormStorage)(nil)

func (s *GormStorage) Create(ctx context.Context, c *Customer) error {
	err := database.Conn(ctx, s.db).Create(c).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Conflict(msgEmailTaken)
	}
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func (s *GormStorage) Update(ctx context.Context, c *Customer) error {
	res := database.Conn(ctx, s.db).Model(&Customer{ID: c.ID}).Updates(map[string]any{
		"first_name": c.FirstName,
		"last_name":  c.LastName,
		"email":      c.Email,
	})
	if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
		return apperrors.Conflict(msgEmailTaken)
	}
	if res.Error != nil {
		return fmt.Errorf("update customer %d: %w", c.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Customer")
	}
	return nil
}

func (s *GormStorage) Delete(ctx context.Context, id int64) error {
	res := database.Conn(ctx, s.db).Delete(&Customer{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete customer %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Customer")
	}
	return nil
}

// FindByID returns a *apperrors.NotFoundError when no customer has id.
func (s *GormStorage) FindByID(ctx context.Context, id int64) (*Customer, error) {
	var c Customer
	err := database.Conn(ctx, s.db).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Customer")
	}
	if err != nil {
		return nil, fmt.Errorf("find customer %d: %w", id, err)
	}
	return &c, nil
}

func (s *GormStorage) FindAll(ctx context.Context) ([]Customer, error) {
	out := make([]Customer, 0)
	if err := database.Conn(ctx, s.db).Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return out, nil
}

// FindByName matches name case-insensitively against first or last name.
func (s *GormStorage) FindByName(ctx context.Context, name string) ([]Customer, error) {
	out := make([]Customer, 0)
	pattern := "%" + strings.ToLower(name) + "%"
	err := database.Conn(ctx, s.db).
		Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", pattern, pattern).
		Order("id").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("find customers by name: %w", err)
	}
	return out, nil
}

// EmailOwner returns the id of the customer registered with email, or 0.
func (s *GormStorage) EmailOwner(ctx context.Context, email string) (int64, error) {
	var c Customer
	err := database.Conn(ctx, s.db).Select("id").Where("email = ?", email).Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("find customer by email: %w", err)
	}
	return c.ID, nil
}

func (s *GormStorage) EmailExists(ctx context.Context, email string) (bool, error) {
	var n int64
	if err := database.Conn(ctx, s.db).Model(&Customer{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return false, fmt.Errorf("check customer email: %w", err)
	}
	return n > 0, nil
}
