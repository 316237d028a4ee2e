package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"luxestate/internal/models"
)

type LeadRepositoryImpl struct {
	db *sqlx.DB
}

func NewLeadRepository(db *sqlx.DB) *LeadRepositoryImpl {
	return &LeadRepositoryImpl{db: db}
}

// Create stores lead. property_id is not checked against properties.
func (r *LeadRepositoryImpl) Create(ctx context.Context, lead *models.Lead) error {
	query := `
		INSERT INTO leads (id, property_id, name, email, phone, message, created_at)
		VALUES (:id, :property_id, :name, :email, :phone, :message, :created_at)
	`

	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = models.Now()
	}

	_, err := r.db.NamedExecContext(ctx, query, lead)
	if err != nil {
		return fmt.Errorf("create lead: %w", err)
	}

	return nil
}

func (r *LeadRepositoryImpl) List(ctx context.Context) ([]models.Lead, error) {
	query := `SELECT id, property_id, name, email, phone, message, created_at FROM leads ORDER BY created_at DESC LIMIT $1`

	leads := []models.Lead{}
	if err := r.db.SelectContext(ctx, &leads, query, listLimit); err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}

	return leads, nil
}
