package sellers

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"api_drugstore/internal/apperrors"
)

const errInvalidShift = "Seller must have a valid shift: 'DAY' or 'NIGHT'."

type Service struct {
	storage  Storage
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{storage: storage, validate: validator.New(), logger: logger}
}

func (s *Service) validateFields(firstName, lastName, shift string, admission time.Time) error {
	if firstName == "" {
		return apperrors.Validation("Seller first name cannot be empty.")
	}
	if lastName == "" {
		return apperrors.Validation("Seller last name cannot be empty.")
	}
	if err := s.validate.Var(shift, "required,oneof=DAY NIGHT"); err != nil {
		return apperrors.Validation(errInvalidShift)
	}
	if admission.IsZero() {
		return apperrors.Validation("Seller admission date cannot be empty.")
	}
	return nil
}

func (s *Service) AddSeller(ctx context.Context, req AddSellerRequest) (*SellerDTO, error) {
	if err := s.validateFields(req.FirstName, req.LastName, req.Shift, req.AdmissionDate); err != nil {
		return nil, err
	}

	seller := &Seller{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Shift:         req.Shift,
		AdmissionDate: req.AdmissionDate.UTC(),
	}
	if err := s.storage.Create(ctx, seller); err != nil {
		s.logger.Error("failed to add seller", zap.Error(err))
		return nil, fmt.Errorf("add seller: %w", err)
	}
	s.logger.Info("seller created", zap.Int64("seller_id", seller.ID))
	dto := toDTO(*seller)
	return &dto, nil
}

func (s *Service) UpdateSeller(ctx context.Context, req SellerDTO) (*SellerDTO, error) {
	if req.ID <= 0 {
		return nil, apperrors.Validation("Seller ID must be greater than zero.")
	}
	if _, err := s.storage.FindByID(ctx, req.ID); err != nil {
		return nil, err
	}
	if err := s.validateFields(req.FirstName, req.LastName, req.Shift, req.AdmissionDate); err != nil {
		return nil, err
	}

	seller := &Seller{
		ID:            req.ID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Shift:         req.Shift,
		AdmissionDate: req.AdmissionDate.UTC(),
	}
	if err := s.storage.Update(ctx, seller); err != nil {
		return nil, err
	}
	dto := toDTO(*seller)
	return &dto, nil
}

func (s *Service) DeleteSeller(ctx context.Context, id int64) error {
	return s.storage.Delete(ctx, id)
}

func (s *Service) FindAllSellers(ctx context.Context) ([]SellerDTO, error) {
	list, err := s.storage.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(list), nil
}

func (s *Service) FindSellerByID(ctx context.Context, id int64) (*SellerDTO, error) {
	seller, err := s.storage.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toDTO(*seller)
	return &dto, nil
}

func (s *Service) FindSellersByName(ctx context.Context, name string) ([]SellerDTO, error) {
	list, err := s.storage.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return toDTOs(list), nil
}

func toDTOs(list []Seller) []SellerDTO {
	out := make([]SellerDTO, 0, len(list))
	for _, s := range list {
		out = append(out, toDTO(s))
	}
	return out
}
