package customers

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"api_drugstore/internal/apperrors"
)

const msgEmailTaken = "There already is a customer with this email in the database."

// Service provides customer management on a Storage backend.
type Service struct {
	storage  Storage
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		storage:  storage,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *Service) validateFields(firstName, lastName, email string) error {
	if firstName == "" {
		return apperrors.Validation("Customer first name cannot be empty.")
	}
	if lastName == "" {
		return apperrors.Validation("Customer last name cannot be empty.")
	}
	if email == "" {
		return apperrors.Validation("Customer email cannot be empty.")
	}
	if err := s.validate.Var(email, "email"); err != nil {
		return apperrors.Validation("Customer email is invalid.")
	}
	return nil
}

// AddCustomer registers a new customer. Emails must be unique.
func (s *Service) AddCustomer(ctx context.Context, req AddCustomerRequest) (*CustomerDTO, error) {
	taken, err := s.storage.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.Validation(msgEmailTaken)
	}
	if err := s.validateFields(req.FirstName, req.LastName, req.Email); err != nil {
		return nil, err
	}

	c := &Customer{FirstName: req.FirstName, LastName: req.LastName, Email: req.Email}
	if err := s.storage.Create(ctx, c); err != nil {
		s.logger.Error("failed to add customer", zap.Error(err))
		return nil, fmt.Errorf("add customer: %w", err)
	}
	s.logger.Info("customer created", zap.Int64("customer_id", c.ID))
	dto := toDTO(*c)
	return &dto, nil
}

// UpdateCustomer overwrites the names and email of an existing customer. An
// email held by another customer yields a *apperrors.ConflictError.
func (s *Service) UpdateCustomer(ctx context.Context, req CustomerDTO) (*CustomerDTO, error) {
	if req.ID <= 0 {
		return nil, apperrors.Validation("Customer ID must be greater than zero.")
	}
	if _, err := s.storage.FindByID(ctx, req.ID); err != nil {
		return nil, err
	}
	if err := s.validateFields(req.FirstName, req.LastName, req.Email); err != nil {
		return nil, err
	}
	owner, err := s.storage.EmailOwner(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if owner != 0 && owner != req.ID {
		return nil, apperrors.Conflict(msgEmailTaken)
	}

	c := &Customer{ID: req.ID, FirstName: req.FirstName, LastName: req.LastName, Email: req.Email}
	if err := s.storage.Update(ctx, c); err != nil {
		return nil, err
	}
	s.logger.Info("customer updated", zap.Int64("customer_id", c.ID))
	return &req, nil
}

func (s *Service) DeleteCustomer(ctx context.Context, id int64) error {
	return s.storage.Delete(ctx, id)
}

func (s *Service) FindAllCustomers(ctx context.Context) ([]CustomerDTO, error) {
	list, err := s.storage.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(list), nil
}

func (s *Service) FindCustomerByID(ctx context.Context, id int64) (*CustomerDTO, error) {
	c, err := s.storage.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toDTO(*c)
	return &dto, nil
}

func (s *Service) FindCustomersByName(ctx context.Context, name string) ([]CustomerDTO, error) {
	list, err := s.storage.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return toDTOs(list), nil
}

func toDTOs(list []Customer) []CustomerDTO {
	out := make([]CustomerDTO, 0, len(list))
	for _, c := range list {
		out = append(out, toDTO(c))
	}
	return out
}
