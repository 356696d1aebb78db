package products

import "github.com/shopspring/decimal"

// Product is a drug or item sold by the store. Price is the current price
// and is the only price a sale is ever charged at.
type Product struct {
	ID           int64           `gorm:"primaryKey" json:"id"`
	Name         string          `gorm:"size:255;not null;index" json:"name"`
	Manufacturer string          `gorm:"size:255;not null" json:"manufacturer"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
}

// Stock is the available inventory for one product.
type Stock struct {
	ID        int64 `gorm:"primaryKey" json:"id"`
	ProductID int64 `gorm:"not null;uniqueIndex" json:"productId"`
	Quantity  int   `gorm:"not null" json:"quantity"`
}

// ProductDTO is the product as returned by the API, joined with its stock.
type ProductDTO struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Manufacturer string          `json:"manufacturer"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
}

// AddProductRequest is the payload for creating a product with its stock.
type AddProductRequest struct {
	Name         string          `json:"name"`
	Manufacturer string          `json:"manufacturer"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
}
