package service

import (
	"context"

	"luxestate/internal/auth"
	"luxestate/internal/models"
	"luxestate/internal/repository"
)

type AnalyticsService interface {
	Get(ctx context.Context, actor *models.User) (*models.Analytics, error)
	PropertiesByType(ctx context.Context, actor *models.User) ([]models.TypeCount, error)
}

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	propertyRepo  repository.PropertyRepository
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository, propertyRepo repository.PropertyRepository) AnalyticsService {
	return &analyticsService{
		analyticsRepo: analyticsRepo,
		propertyRepo:  propertyRepo,
	}
}

// Get counts are computed per call and never cached.
func (s *analyticsService) Get(ctx context.Context, actor *models.User) (*models.Analytics, error) {
	if err := auth.Authorize(actor, auth.OpReadAnalytics); err != nil {
		return nil, err
	}

	return s.analyticsRepo.Summary(ctx)
}

func (s *analyticsService) PropertiesByType(ctx context.Context, actor *models.User) ([]models.TypeCount, error) {
	if err := auth.Authorize(actor, auth.OpReadAnalytics); err != nil {
		return nil, err
	}

	return s.propertyRepo.CountByType(ctx)
}
