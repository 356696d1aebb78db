package sellers

import "time"

const (
	ShiftDay   = "DAY"
	ShiftNight = "NIGHT"
)

// Seller is a store employee that can be assigned to sales.
type Seller struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	FirstName     string    `gorm:"size:100;not null" json:"firstName"`
	LastName      string    `gorm:"size:100;not null" json:"lastName"`
	Shift         string    `gorm:"size:10;not null;default:DAY" json:"shift"`
	AdmissionDate time.Time `gorm:"not null" json:"admissionDate"`
}

// SellerDTO is used both as API output and as the update payload.
type SellerDTO struct {
	ID            int64     `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Shift         string    `json:"shift"`
	AdmissionDate time.Time `json:"admissionDate"`
}

type AddSellerRequest struct {
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Shift         string    `json:"shift"`
	AdmissionDate time.Time `json:"admissionDate"`
}

func toDTO(s Seller) SellerDTO {
	return SellerDTO{
		ID:            s.ID,
		FirstName:     s.FirstName,
		LastName:      s.LastName,
		Shift:         s.Shift,
		AdmissionDate: s.AdmissionDate,
	}
}
