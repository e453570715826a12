package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/roosly/site-api/internal/core/domain"
)

const usersCollection = "users"

// UserRepository reads user credential records. Writes happen only through
// the out-of-band provisioning path (SeedAdmin), never from request handling.
type UserRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{db: db, coll: db.Collection(usersCollection)}
}

type mongoUser struct {
	ID           int64     `bson:"id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	Role         string    `bson:"role"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &domain.User{
		ID:           mu.ID,
		Name:         mu.Name,
		Email:        mu.Email,
		PasswordHash: mu.PasswordHash,
		Role:         mu.Role,
		CreatedAt:    mu.CreatedAt,
		UpdatedAt:    mu.UpdatedAt,
	}, nil
}

// SeedAdmin upserts the admin user by email. When reset is true an existing
// record is replaced wholesale, matching the provisioning script semantics.
func (r *UserRepository) SeedAdmin(ctx context.Context, name, email, passwordHash string, reset bool) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if !reset {
		n, err := r.coll.CountDocuments(ctx, bson.M{"email": email})
		if err != nil {
			return fmt.Errorf("check existing admin: %w", err)
		}
		if n > 0 {
			return nil
		}
	}

	id, err := nextSequence(ctx, r.db, usersCollection)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	doc := mongoUser{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if reset {
		if _, err := r.coll.DeleteOne(ctx, bson.M{"email": email}); err != nil {
			return fmt.Errorf("delete existing admin: %w", err)
		}
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique email index backing the one-row-per-email
// invariant.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, uniqueIndex("email"))
	return err
}
