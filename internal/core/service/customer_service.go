package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/roosly/site-api/internal/pkg/metrics"
	"github.com/roosly/site-api/internal/core/domain"
	"github.com/roosly/site-api/internal/core/ports"
)

var emailCheck = validator.New()

// CustomerService implements the admin-panel CRUD operations. Input is
// validated and normalized before any repository call; repository sentinels
// pass through unchanged.
type CustomerService struct {
	repo   ports.CustomerRepository
	cache  ports.CustomerCache
	logger zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, cache ports.CustomerCache, logger zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, cache: cache, logger: logger}
}

// List returns all customers, newest first. An empty slice is a valid result.
func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	if s.cache != nil {
		if customers, ok := s.cache.Get(ctx); ok {
			metrics.ListCacheTotal.WithLabelValues("hit").Inc()
			return customers, nil
		}
		metrics.ListCacheTotal.WithLabelValues("miss").Inc()
	}

	customers, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list customers")
		metrics.CustomerOpsTotal.WithLabelValues("list", "error").Inc()
		return nil, err
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	if s.cache != nil {
		s.cache.Set(ctx, customers)
	}
	metrics.CustomerOpsTotal.WithLabelValues("list", "ok").Inc()
	return customers, nil
}

func (s *CustomerService) Create(ctx context.Context, input ports.CreateCustomerInput) (*domain.Customer, error) {
	name, email, err := normalize(input.Name, input.Email)
	if err != nil {
		metrics.CustomerOpsTotal.WithLabelValues("create", "invalid").Inc()
		return nil, err
	}

	created, err := s.repo.Create(ctx, name, email)
	if err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("failed to create customer")
		metrics.CustomerOpsTotal.WithLabelValues("create", "error").Inc()
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Int64("id", created.ID).Str("email", email).Msg("customer created")
	metrics.CustomerOpsTotal.WithLabelValues("create", "ok").Inc()
	return created, nil
}

// Update fully replaces name and email of the customer with the given id.
func (s *CustomerService) Update(ctx context.Context, input ports.UpdateCustomerInput) (*domain.Customer, error) {
	if input.ID <= 0 {
		metrics.CustomerOpsTotal.WithLabelValues("update", "invalid").Inc()
		return nil, fmt.Errorf("%w: id is required", domain.ErrInvalidCustomer)
	}
	name, email, err := normalize(input.Name, input.Email)
	if err != nil {
		metrics.CustomerOpsTotal.WithLabelValues("update", "invalid").Inc()
		return nil, err
	}

	updated, err := s.repo.Update(ctx, input.ID, name, email)
	if err != nil {
		s.logger.Warn().Err(err).Int64("id", input.ID).Msg("failed to update customer")
		metrics.CustomerOpsTotal.WithLabelValues("update", "error").Inc()
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Int64("id", updated.ID).Str("email", email).Msg("customer updated")
	metrics.CustomerOpsTotal.WithLabelValues("update", "ok").Inc()
	return updated, nil
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		metrics.CustomerOpsTotal.WithLabelValues("delete", "invalid").Inc()
		return fmt.Errorf("%w: id is required", domain.ErrInvalidCustomer)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Warn().Err(err).Int64("id", id).Msg("failed to delete customer")
		metrics.CustomerOpsTotal.WithLabelValues("delete", "error").Inc()
		return err
	}

	s.invalidate(ctx)
	s.logger.Info().Int64("id", id).Msg("customer deleted")
	metrics.CustomerOpsTotal.WithLabelValues("delete", "ok").Inc()
	return nil
}

func (s *CustomerService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

// normalize trims the name, trims and lower-cases the email, and checks the
// email against standard address syntax. Runs before any store access.
func normalize(name, email string) (string, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return "", "", fmt.Errorf("%w: name is required", domain.ErrInvalidCustomer)
	}
	if email == "" {
		return "", "", fmt.Errorf("%w: email is required", domain.ErrInvalidCustomer)
	}
	if err := emailCheck.Var(email, "email"); err != nil {
		return "", "", fmt.Errorf("%w: email must be a valid address", domain.ErrInvalidCustomer)
	}
	return name, email, nil
}
