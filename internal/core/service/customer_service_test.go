package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/roosly/site-api/internal/core/domain"
	"github.com/roosly/site-api/internal/core/ports"
)

type stubCustomerRepo struct {
	customers []domain.Customer
	nextID    int64
	listErr   error
	calls     int
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{}
}

func (r *stubCustomerRepo) List(_ context.Context) ([]domain.Customer, error) {
	r.calls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.Customer, len(r.customers))
	copy(out, r.customers)
	return out, nil
}

func (r *stubCustomerRepo) Create(_ context.Context, name, email string) (*domain.Customer, error) {
	r.calls++
	for _, c := range r.customers {
		if c.Email == email {
			return nil, domain.ErrCustomerExists
		}
	}
	r.nextID++
	customer := domain.Customer{ID: r.nextID, Name: name, Email: email}
	r.customers = append([]domain.Customer{customer}, r.customers...)
	return &customer, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, id int64, name, email string) (*domain.Customer, error) {
	r.calls++
	for i, c := range r.customers {
		if c.ID == id {
			for _, other := range r.customers {
				if other.ID != id && other.Email == email {
					return nil, domain.ErrCustomerExists
				}
			}
			r.customers[i].Name = name
			r.customers[i].Email = email
			updated := r.customers[i]
			return &updated, nil
		}
	}
	return nil, domain.ErrCustomerNotFound
}

func (r *stubCustomerRepo) Delete(_ context.Context, id int64) error {
	r.calls++
	for i, c := range r.customers {
		if c.ID == id {
			r.customers = append(r.customers[:i], r.customers[i+1:]...)
			return nil
		}
	}
	return domain.ErrCustomerNotFound
}

type stubCache struct {
	cached      []domain.Customer
	has         bool
	invalidated int
}

func (c *stubCache) Get(_ context.Context) ([]domain.Customer, bool) {
	if !c.has {
		return nil, false
	}
	return c.cached, true
}

func (c *stubCache) Set(_ context.Context, customers []domain.Customer) {
	c.cached = customers
	c.has = true
}

func (c *stubCache) Invalidate(_ context.Context) {
	c.cached = nil
	c.has = false
	c.invalidated++
}

func newCustomerService(repo *stubCustomerRepo) *CustomerService {
	return NewCustomerService(repo, nil, zerolog.Nop())
}

func TestCustomerService_CreateNormalizesEmail(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := newCustomerService(repo)

	created, err := svc.Create(context.Background(), ports.CreateCustomerInput{
		Name:  "  Jane Doe  ",
		Email: " Jane@Example.com ",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Name != "Jane Doe" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if created.Email != "jane@example.com" {
		t.Fatalf("expected normalized email, got %q", created.Email)
	}

	customers, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(customers) != 1 || customers[0].Email != "jane@example.com" {
		t.Fatalf("expected exactly one row with the normalized email, got %+v", customers)
	}
}

func TestCustomerService_CreateValidation(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := newCustomerService(repo)

	cases := []ports.CreateCustomerInput{
		{Name: "", Email: "a@b.com"},
		{Name: "   ", Email: "a@b.com"},
		{Name: "Jane", Email: ""},
		{Name: "Jane", Email: "no-at-sign"},
		{Name: "Jane", Email: "missing@domain-segment"},
	}
	for _, input := range cases {
		if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrInvalidCustomer) {
			t.Fatalf("input %+v: expected ErrInvalidCustomer, got %v", input, err)
		}
	}
	if repo.calls != 0 {
		t.Fatalf("validation failures must not touch the store, got %d calls", repo.calls)
	}
}

func TestCustomerService_CreateDuplicate(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := newCustomerService(repo)

	if _, err := svc.Create(context.Background(), ports.CreateCustomerInput{Name: "Jane", Email: "jane@example.com"}); err != nil {
		t.Fatalf("seed create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateCustomerInput{Name: "Other", Email: "JANE@example.com"}); !errors.Is(err, domain.ErrCustomerExists) {
		t.Fatalf("expected ErrCustomerExists, got %v", err)
	}
	if len(repo.customers) != 1 {
		t.Fatalf("duplicate create must not add a row, have %d", len(repo.customers))
	}
}

func TestCustomerService_UpdateOwnEmailDifferentCasing(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := newCustomerService(repo)

	created, err := svc.Create(context.Background(), ports.CreateCustomerInput{Name: "Jane Doe", Email: "Jane@Example.com"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Re-submitting the same address with different casing must not
	// conflict against the customer's own row.
	updated, err := svc.Update(context.Background(), ports.UpdateCustomerInput{
		ID:    created.ID,
		Name:  "Jane D.",
		Email: "JANE@EXAMPLE.COM",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Email != "jane@example.com" || updated.Name != "Jane D." {
		t.Fatalf("unexpected updated row: %+v", updated)
	}
}

func TestCustomerService_UpdateNotFound(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := newCustomerService(repo)

	if _, err := svc.Update(context.Background(), ports.UpdateCustomerInput{ID: 42, Name: "Jane", Email: "jane@example.com"}); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
	if len(repo.customers) != 0 {
		t.Fatalf("store state must be unchanged")
	}
}

func TestCustomerService_UpdateValidation(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := newCustomerService(repo)

	if _, err := svc.Update(context.Background(), ports.UpdateCustomerInput{ID: 0, Name: "Jane", Email: "jane@example.com"}); !errors.Is(err, domain.ErrInvalidCustomer) {
		t.Fatalf("expected ErrInvalidCustomer for missing id, got %v", err)
	}
	if _, err := svc.Update(context.Background(), ports.UpdateCustomerInput{ID: 1, Name: "Jane", Email: "not-an-email"}); !errors.Is(err, domain.ErrInvalidCustomer) {
		t.Fatalf("expected ErrInvalidCustomer for bad email, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("validation failures must not touch the store")
	}
}

func TestCustomerService_Delete(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := newCustomerService(repo)

	a, _ := svc.Create(context.Background(), ports.CreateCustomerInput{Name: "A", Email: "a@example.com"})
	b, _ := svc.Create(context.Background(), ports.CreateCustomerInput{Name: "B", Email: "b@example.com"})

	if err := svc.Delete(context.Background(), a.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	customers, _ := svc.List(context.Background())
	if len(customers) != 1 || customers[0].ID != b.ID {
		t.Fatalf("expected exactly the other row to survive, got %+v", customers)
	}

	if err := svc.Delete(context.Background(), a.ID); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound on second delete, got %v", err)
	}
}

func TestCustomerService_ListEmptyIsValid(t *testing.T) {
	svc := newCustomerService(newStubCustomerRepo())

	customers, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if customers == nil || len(customers) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", customers)
	}
}

func TestCustomerService_ListUsesCache(t *testing.T) {
	repo := newStubCustomerRepo()
	cache := &stubCache{}
	svc := NewCustomerService(repo, cache, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateCustomerInput{Name: "A", Email: "a@example.com"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if cache.invalidated != 1 {
		t.Fatalf("mutation must invalidate the cache")
	}

	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	storeCalls := repo.calls

	// Second list must be served from the cache.
	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("cached list failed: %v", err)
	}
	if repo.calls != storeCalls {
		t.Fatalf("expected cached list to skip the store")
	}
}
