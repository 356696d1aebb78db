package customers

// Customer is a registered buyer. Email is unique.
type Customer struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"size:100;not null" json:"firstName"`
	LastName  string `gorm:"size:100;not null" json:"lastName"`
	Email     string `gorm:"size:255;not null;uniqueIndex" json:"email"`
}

// CustomerDTO is used both as API output and as the update payload.
type CustomerDTO struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type AddCustomerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func toDTO(c Customer) CustomerDTO {
	return CustomerDTO{ID: c.ID, FirstName: c.FirstName, LastName: c.LastName, Email: c.Email}
}
