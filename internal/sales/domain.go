package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusPending is the payment and shipping status of every new sale.
const StatusPending = "PENDING"

// Sale is a checkout linking one customer, one seller and its line items.
// Total is always computed from stored product prices.
type Sale struct {
	ID             int64           `gorm:"primaryKey"`
	PaymentMethod  string          `gorm:"size:50;not null"`
	PaymentStatus  string          `gorm:"size:20;not null"`
	ShippingStatus string          `gorm:"size:20;not null"`
	Total          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CustomerID     int64           `gorm:"not null;index"`
	SellerID       int64           `gorm:"not null;index"`
	CreatedAt      time.Time
}

// SaleProduct is one line item. A product appears at most once per sale.
type SaleProduct struct {
	ID        int64 `gorm:"primaryKey"`
	SaleID    int64 `gorm:"not null;uniqueIndex:idx_sale_product"`
	ProductID int64 `gorm:"not null;uniqueIndex:idx_sale_product"`
	Quantity  int   `gorm:"not null"`
}

// LineItem is a SaleProduct joined with the product's name.
type LineItem struct {
	ID          int64
	SaleID      int64
	ProductID   int64
	ProductName string
	Quantity    int
}

// SaleProductRequest is one requested line. ProductID is a pointer so a
// missing id can be told apart from zero.
type SaleProductRequest struct {
	ProductID *int64 `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// AddSaleRequest is the checkout payload. Any client-sent price or total is
// ignored.
type AddSaleRequest struct {
	PaymentMethod string               `json:"paymentMethod"`
	CustomerID    int64                `json:"customerId"`
	SellerID      int64                `json:"sellerId"`
	SaleProducts  []SaleProductRequest `json:"saleProducts"`
}

type SaleProductDTO struct {
	ID          int64  `json:"id"`
	Quantity    int    `json:"quantity"`
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
}

type SaleDTO struct {
	ID             int64            `json:"id"`
	PaymentMethod  string           `json:"paymentMethod"`
	PaymentStatus  string           `json:"paymentStatus"`
	ShippingStatus string           `json:"shippingStatus"`
	Total          decimal.Decimal  `json:"total"`
	CustomerID     int64            `json:"customerId"`
	SellerID       int64            `json:"sellerId"`
	CreatedAt      time.Time        `json:"createdAt"`
	SaleProducts   []SaleProductDTO `json:"saleProducts"`
}

func toDTO(s Sale, lines []LineItem) SaleDTO {
	items := make([]SaleProductDTO, 0, len(lines))
	for _, l := range lines {
		items = append(items, SaleProductDTO{
			ID:          l.ID,
			Quantity:    l.Quantity,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
		})
	}
	return SaleDTO{
		ID:             s.ID,
		PaymentMethod:  s.PaymentMethod,
		PaymentStatus:  s.PaymentStatus,
		ShippingStatus: s.ShippingStatus,
		Total:          s.Total,
		CustomerID:     s.CustomerID,
		SellerID:       s.SellerID,
		CreatedAt:      s.CreatedAt,
		SaleProducts:   items,
	}
}
