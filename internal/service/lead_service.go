package service

import (
	"context"
	"fmt"
	"strings"

	"luxestate/internal/auth"
	"luxestate/internal/models"
	"luxestate/internal/repository"
)

type CreateLeadRequest struct {
	PropertyID string
	Name       string
	Email      string
	Phone      string
	Message    string
}

type LeadService interface {
	Create(ctx context.Context, req CreateLeadRequest) (*models.Lead, error)
	List(ctx context.Context, actor *models.User) ([]models.Lead, error)
}

type leadService struct {
	leadRepo repository.LeadRepository
}

func NewLeadService(leadRepo repository.LeadRepository) LeadService {
	return &leadService{leadRepo: leadRepo}
}

// Create records an inquiry. Anyone may submit one and the property id is
// stored as given.
func (s *leadService) Create(ctx context.Context, req CreateLeadRequest) (*models.Lead, error) {
	lead := &models.Lead{
		PropertyID: strings.TrimSpace(req.PropertyID),
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.TrimSpace(req.Email),
		Phone:      strings.TrimSpace(req.Phone),
		Message:    req.Message,
	}
	if lead.PropertyID == "" || lead.Name == "" || lead.Email == "" {
		return nil, fmt.Errorf("%w: property_id, name and email are required", models.ErrValidation)
	}

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}

	return lead, nil
}

func (s *leadService) List(ctx context.Context, actor *models.User) ([]models.Lead, error) {
	if err := auth.Authorize(actor, auth.OpReadLeads); err != nil {
		return nil, err
	}

	return s.leadRepo.List(ctx)
}
