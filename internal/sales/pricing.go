package sales

import (
	"github.com/shopspring/decimal"

	"api_drugstore/internal/products"
)

// CalculateTotal sums price × quantity over items using the resolved
// catalog prices. Every item's product must be present in catalog.
func CalculateTotal(items []SaleProductRequest, catalog map[int64]products.Product) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		p := catalog[*item.ProductID]
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
