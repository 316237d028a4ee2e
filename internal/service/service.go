package service

import (
	"time"

	"luxestate/internal/config"
	"luxestate/internal/models"
	"luxestate/internal/repository"
	"luxestate/internal/storage"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

type TokenIssuer interface {
	Issue(subjectID string) (string, error)
}

type Service struct {
	Auth      AuthService
	User      UserService
	Property  PropertyService
	Lead      LeadService
	Analytics AnalyticsService
}

// NewService wires services over rep. storage may be nil, in which case
// image uploads fail with ErrStorageUnavailable.
func NewService(rep *repository.Repository, cfg *config.Config, hasher PasswordHasher, tokens TokenIssuer, storage storage.Storage) *Service {
	return &Service{
		Auth:      NewAuthService(rep.User, hasher, tokens, cfg),
		User:      NewUserService(rep.User),
		Property:  NewPropertyService(rep.Property, storage),
		Lead:      NewLeadService(rep.Lead),
		Analytics: NewAnalyticsService(rep.Analytics, rep.Property),
	}
}

type clock func() time.Time

func (c clock) now() time.Time {
	if c == nil {
		return models.Now()
	}
	return c()
}
