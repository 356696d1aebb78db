package addresses

// Address is a postal address. It belongs to exactly one customer through
// CustomerAddress.
type Address struct {
	ID      int64  `gorm:"primaryKey"`
	Details string `gorm:"size:255;not null"`
	City    string `gorm:"size:100;not null"`
	State   string `gorm:"size:100;not null"`
	Country string `gorm:"size:100;not null"`
}

// CustomerAddress links an address to a customer. At most one of a
// customer's addresses has IsShipping set.
type CustomerAddress struct {
	ID         int64 `gorm:"primaryKey"`
	AddressID  int64 `gorm:"not null;uniqueIndex"`
	CustomerID int64 `gorm:"not null;index"`
	IsShipping bool  `gorm:"not null;default:false"`
}

// AddressDTO is used both as API output and as the update payload.
type AddressDTO struct {
	ID         int64  `json:"id"`
	Details    string `json:"details"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	IsShipping bool   `json:"isShipping"`
}

type AddAddressRequest struct {
	Details    string `json:"details"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	IsShipping bool   `json:"isShipping"`
	CustomerID int64  `json:"customerId"`
}
