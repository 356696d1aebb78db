package sales

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"api_drugstore/internal/apperrors"
)

func id(v int64) *int64 { return &v }

func validRequest() AddSaleRequest {
	return AddSaleRequest{
		PaymentMethod: "CASH",
		CustomerID:    1,
		SellerID:      1,
		SaleProducts: []SaleProductRequest{
			{ProductID: id(1), Quantity: 2},
			{ProductID: id(2), Quantity: 1},
		},
	}
}

func TestValidateAddSale(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *AddSaleRequest)
		want   string
	}{
		{"no products", func(r *AddSaleRequest) { r.SaleProducts = nil }, "Sale must have at least one product."},
		{"empty products", func(r *AddSaleRequest) { r.SaleProducts = []SaleProductRequest{} }, "Sale must have at least one product."},
		{"no payment method", func(r *AddSaleRequest) { r.PaymentMethod = "" }, "Sale must have a payment method."},
		{"no customer", func(r *AddSaleRequest) { r.CustomerID = 0 }, "Sale must have a customer."},
		{"negative customer", func(r *AddSaleRequest) { r.CustomerID = -3 }, "Sale must have a customer."},
		{"no seller", func(r *AddSaleRequest) { r.SellerID = 0 }, "Sale must have a seller."},
		{"missing product id", func(r *AddSaleRequest) { r.SaleProducts[1].ProductID = nil }, "Sale product must have an ID."},
		{"duplicate product", func(r *AddSaleRequest) { r.SaleProducts[1].ProductID = id(1) }, "Sale product cannot be added more than once."},
		{"zero quantity", func(r *AddSaleRequest) { r.SaleProducts[0].Quantity = 0 }, "Sale product quantity must be greater than 0."},
		{"negative quantity", func(r *AddSaleRequest) { r.SaleProducts[1].Quantity = -1 }, "Sale product quantity must be greater than 0."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := ValidateAddSale(req)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestValidateAddSale_RuleOrder(t *testing.T) {
	// Empty list wins over every other broken field.
	err := ValidateAddSale(AddSaleRequest{})
	assert.EqualError(t, err, "Sale must have at least one product.")

	// Items are checked in order: a duplicate is reported before a later
	// bad quantity, and a bad quantity before a later duplicate.
	req := validRequest()
	req.SaleProducts = []SaleProductRequest{
		{ProductID: id(1), Quantity: 1},
		{ProductID: id(1), Quantity: 0},
	}
	assert.EqualError(t, ValidateAddSale(req), "Sale product cannot be added more than once.")

	req.SaleProducts = []SaleProductRequest{
		{ProductID: id(1), Quantity: 0},
		{ProductID: id(1), Quantity: 1},
	}
	assert.EqualError(t, ValidateAddSale(req), "Sale product quantity must be greater than 0.")
}

func TestValidateAddSale_Deterministic(t *testing.T) {
	req := validRequest()
	req.SaleProducts[1].ProductID = id(1)

	first := ValidateAddSale(req)
	second := ValidateAddSale(req)
	assert.Equal(t, first.Error(), second.Error())

	assert.NoError(t, ValidateAddSale(validRequest()))
}
