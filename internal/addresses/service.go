package addresses

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"api_drugstore/internal/apperrors"
	"api_drugstore/internal/customers"
)

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CustomerFinder resolves the owner of a new address.
type CustomerFinder interface {
	FindByID(ctx context.Context, id int64) (*customers.Customer, error)
}

type Service struct {
	storage   Storage
	customers CustomerFinder
	tx        Transactor
	logger    *zap.Logger
}

func NewService(storage Storage, customers CustomerFinder, tx Transactor, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{storage: storage, customers: customers, tx: tx, logger: logger}
}

func validateFields(details, city, state, country string) error {
	if details == "" {
		return apperrors.Validation("Address details cannot be empty.")
	}
	if city == "" {
		return apperrors.Validation("City cannot be empty.")
	}
	if state == "" {
		return apperrors.Validation("State cannot be empty.")
	}
	if country == "" {
		return apperrors.Validation("Country cannot be empty.")
	}
	return nil
}

// AddAddress attaches a new address to an existing customer. Marking it as
// shipping unmarks the customer's other addresses.
func (s *Service) AddAddress(ctx context.Context, req AddAddressRequest) (*AddressDTO, error) {
	if req.CustomerID <= 0 {
		return nil, apperrors.Validation("Customer ID must be greater than zero.")
	}
	if err := validateFields(req.Details, req.City, req.State, req.Country); err != nil {
		return nil, err
	}

	a := &Address{Details: req.Details, City: req.City, State: req.State, Country: req.Country}
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.customers.FindByID(ctx, req.CustomerID); err != nil {
			return err
		}
		if err := s.storage.CreateAddress(ctx, a); err != nil {
			return err
		}
		if req.IsShipping {
			if err := s.storage.ClearShipping(ctx, req.CustomerID); err != nil {
				return err
			}
		}
		return s.storage.CreateLink(ctx, &CustomerAddress{
			AddressID:  a.ID,
			CustomerID: req.CustomerID,
			IsShipping: req.IsShipping,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("add address: %w", err)
	}

	s.logger.Info("address created", zap.Int64("address_id", a.ID), zap.Int64("customer_id", req.CustomerID))
	return &AddressDTO{
		ID: a.ID, Details: a.Details, City: a.City, State: a.State, Country: a.Country, IsShipping: req.IsShipping,
	}, nil
}

func (s *Service) UpdateAddress(ctx context.Context, req AddressDTO) (*AddressDTO, error) {
	if req.ID <= 0 {
		return nil, apperrors.Validation("Address ID must be greater than zero.")
	}
	if err := validateFields(req.Details, req.City, req.State, req.Country); err != nil {
		return nil, err
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		link, err := s.storage.FindLinkByAddressID(ctx, req.ID)
		if err != nil {
			return err
		}
		a := &Address{ID: req.ID, Details: req.Details, City: req.City, State: req.State, Country: req.Country}
		if err := s.storage.UpdateAddress(ctx, a); err != nil {
			return err
		}
		if req.IsShipping {
			if err := s.storage.ClearShipping(ctx, link.CustomerID); err != nil {
				return err
			}
		}
		return s.storage.SetShipping(ctx, link.ID, req.IsShipping)
	})
	if err != nil {
		return nil, fmt.Errorf("update address: %w", err)
	}
	return &req, nil
}

// ActivateAsShipping makes the address the customer's only shipping address.
func (s *Service) ActivateAsShipping(ctx context.Context, addressID int64) error {
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		link, err := s.storage.FindLinkByAddressID(ctx, addressID)
		if err != nil {
			return err
		}
		if err := s.storage.ClearShipping(ctx, link.CustomerID); err != nil {
			return err
		}
		return s.storage.SetShipping(ctx, link.ID, true)
	})
}

func (s *Service) DeleteAddress(ctx context.Context, addressID int64) error {
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		link, err := s.storage.FindLinkByAddressID(ctx, addressID)
		if err != nil {
			return err
		}
		if err := s.storage.DeleteLink(ctx, link.ID); err != nil {
			return err
		}
		return s.storage.DeleteAddress(ctx, addressID)
	})
}

func (s *Service) FindAllForCustomer(ctx context.Context, customerID int64) ([]AddressDTO, error) {
	return s.storage.FindDTOsByCustomerID(ctx, customerID)
}
