package ports

import (
	"context"

	"github.com/roosly/site-api/internal/core/domain"
)

// AuthRepository defines the interface for user credential persistence.
// The application never writes users; provisioning happens out of band.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
