package domain

import (
	"errors"
	"time"
)

var ErrCustomerNotFound = errors.New("customer not found")
var ErrCustomerExists = errors.New("customer already exists")
var ErrInvalidCustomer = errors.New("invalid customer")

// Customer is a marketing-site customer record managed from the admin panel.
// Email is stored trimmed and lower-cased; uniqueness is enforced by the store.
type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
