package http

import "github.com/venuedesk/hall-booking-backend/internal/customer"

type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
}

type UpdateCustomerRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone"`
}

// CustomerTag is the minimal customer info embedded in other responses.
type CustomerTag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func NewCustomerTag(c *customer.Customer) CustomerTag {
	return CustomerTag{ID: c.ID.Hex(), Name: c.Name, Email: c.Email, Phone: c.Phone}
}
