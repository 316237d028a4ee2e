package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"luxestate/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	UpsertUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

type PropertyRepository interface {
	Create(ctx context.Context, property *models.Property) error
	GetByID(ctx context.Context, propertyID string) (*models.Property, error)
	List(ctx context.Context, filter models.PropertyFilter) ([]models.Property, error)
	ListBySeller(ctx context.Context, sellerID string) ([]models.Property, error)
	UpdateStatus(ctx context.Context, propertyID, status string, updatedAt time.Time) (*models.Property, error)
	AppendImage(ctx context.Context, propertyID, imageURL string, updatedAt time.Time) (*models.Property, error)
	CountByType(ctx context.Context) ([]models.TypeCount, error)
}

type LeadRepository interface {
	Create(ctx context.Context, lead *models.Lead) error
	List(ctx context.Context) ([]models.Lead, error)
}

type AnalyticsRepository interface {
	Summary(ctx context.Context) (*models.Analytics, error)
}

type Repository struct {
	User      UserRepository
	Property  PropertyRepository
	Lead      LeadRepository
	Analytics AnalyticsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:      NewUserRepository(db),
		Property:  NewPropertyRepository(db),
		Lead:      NewLeadRepository(db),
		Analytics: NewAnalyticsRepository(db),
	}
}

// listLimit caps unpaginated list queries.
const listLimit = 1000

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
