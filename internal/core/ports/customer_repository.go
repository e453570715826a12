package ports

import (
	"context"

	"github.com/roosly/site-api/internal/core/domain"
)

// CustomerRepository defines the interface for customer persistence.
// Implementations translate store-level failures into domain sentinels:
// uniqueness violations become domain.ErrCustomerExists, missing rows
// become domain.ErrCustomerNotFound.
type CustomerRepository interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Create(ctx context.Context, name, email string) (*domain.Customer, error)
	Update(ctx context.Context, id int64, name, email string) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

// CustomerCache is a best-effort read cache for the customer list.
// A miss or a cache failure is never surfaced to callers.
type CustomerCache interface {
	Get(ctx context.Context) ([]domain.Customer, bool)
	Set(ctx context.Context, customers []domain.Customer)
	Invalidate(ctx context.Context)
}
