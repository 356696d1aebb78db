package addresses

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"api_drugstore/internal/apperrors"
	"api_drugstore/internal/database"
)

type Storage interface {
	CreateAddress(ctx context.Context, a *Address) error
	UpdateAddress(ctx context.Context, a *Address) error
	DeleteAddress(ctx context.Context, id int64) error
	CreateLink(ctx context.Context, link *CustomerAddress) error
	FindLinkByAddressID(ctx context.Context, addressID int64) (*CustomerAddress, error)
	SetShipping(ctx context.Context, linkID int64, shipping bool) error
	ClearShipping(ctx context.Context, customerID int64) error
	DeleteLink(ctx context.Context, linkID int64) error
	FindDTOsByCustomerID(ctx context.Context, customerID int64) ([]AddressDTO, error)
}

type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

var _ Storage = (*GormStorage)(nil)

func (s *GormStorage) CreateAddress(ctx context.Context, a *Address) error {
	if err := database.Conn(ctx, s.db).Create(a).Error; err != nil {
		return fmt.Errorf("insert address: %w", err)
	}
	return nil
}

func (s *GormStorage) UpdateAddress(ctx context.Context, a *Address) error {
	err := database.Conn(ctx, s.db).Model(&Address{ID: a.ID}).Updates(map[string]any{
		"details": a.Details,
		"city":    a.City,
		"state":   a.State,
		"country": a.Country,
	}).Error
	if err != nil {
		return fmt.Errorf("update address %d: %w", a.ID, err)
	}
	return nil
}

func (s *GormStorage) DeleteAddress(ctx context.Context, id int64) error {
	if err := database.Conn(ctx, s.db).Delete(&Address{}, id).Error; err != nil {
		return fmt.Errorf("delete address %d: %w", id, err)
	}
	return nil
}

func (s *GormStorage) CreateLink(ctx context.Context, link *CustomerAddress) error {
	if err := database.Conn(ctx, s.db).Create(link).Error; err != nil {
		return fmt.Errorf("insert customer address: %w", err)
	}
	return nil
}

func (s *GormStorage) FindLinkByAddressID(ctx context.Context, addressID int64) (*CustomerAddress, error) {
	var link CustomerAddress
	err := database.Conn(ctx, s.db).Where("address_id = ?", addressID).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Address")
	}
	if err != nil {
		return nil, fmt.Errorf("find customer address for %d: %w", addressID, err)
	}
	return &link, nil
}

func (s *GormStorage) SetShipping(ctx context.Context, linkID int64, shipping bool) error {
	err := database.Conn(ctx, s.db).Model(&CustomerAddress{ID: linkID}).Update("is_shipping", shipping).Error
	if err != nil {
		return fmt.Errorf("set shipping flag: %w", err)
	}
	return nil
}

func (s *GormStorage) ClearShipping(ctx context.Context, customerID int64) error {
	err := database.Conn(ctx, s.db).Model(&CustomerAddress{}).
		Where("customer_id = ?", customerID).
		Update("is_shipping", false).Error
	if err != nil {
		return fmt.Errorf("clear shipping flags for customer %d: %w", customerID, err)
	}
	return nil
}

func (s *GormStorage) DeleteLink(ctx context.Context, linkID int64) error {
	if err := database.Conn(ctx, s.db).Delete(&CustomerAddress{}, linkID).Error; err != nil {
		return fmt.Errorf("delete customer address %d: %w", linkID, err)
	}
	return nil
}

func (s *GormStorage) FindDTOsByCustomerID(ctx context.Context, customerID int64) ([]AddressDTO, error) {
	out := make([]AddressDTO, 0)
	err := database.Conn(ctx, s.db).
		Table("customer_addresses AS ca").
		Select("a.id, a.details, a.city, a.state, a.country, ca.is_shipping").
		Joins("JOIN addresses a ON a.id = ca.address_id").
		Where("ca.customer_id = ?", customerID).
		Order("a.id").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list addresses for customer %d: %w", customerID, err)
	}
	return out, nil
}
