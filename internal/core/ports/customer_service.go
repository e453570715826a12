package ports

import (
	"context"

	"github.com/roosly/site-api/internal/core/domain"
)

type CreateCustomerInput struct {
	Name  string
	Email string
}

type UpdateCustomerInput struct {
	ID    int64
	Name  string
	Email string
}

type CustomerService interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Create(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error)
	Update(ctx context.Context, input UpdateCustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}
