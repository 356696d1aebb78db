package sales

import "api_drugstore/internal/apperrors"

// ValidateAddSale returns the first broken rule of req as a
// *apperrors.ValidationError. It does no I/O.
func ValidateAddSale(req AddSaleRequest) error {
	if len(req.SaleProducts) == 0 {
		return apperrors.Validation("Sale must have at least one product.")
	}
	if req.PaymentMethod == "" {
		return apperrors.Validation("Sale must have a payment method.")
	}
	if req.CustomerID <= 0 {
		return apperrors.Validation("Sale must have a customer.")
	}
	if req.SellerID <= 0 {
		return apperrors.Validation("Sale must have a seller.")
	}

	seen := make(map[int64]struct{}, len(req.SaleProducts))
	for _, item := range req.SaleProducts {
		if item.ProductID == nil {
			return apperrors.Validation("Sale product must have an ID.")
		}
		if _, dup := seen[*item.ProductID]; dup {
			return apperrors.Validation("Sale product cannot be added more than once.")
		}
		seen[*item.ProductID] = struct{}{}
		if item.Quantity <= 0 {
			return apperrors.Validation("Sale product quantity must be greater than 0.")
		}
	}
	return nil
}
