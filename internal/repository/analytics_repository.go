package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"luxestate/internal/models"
)

type analyticsRepository struct {
	db *sqlx.DB
}

func NewAnalyticsRepository(db *sqlx.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// Summary counts rows in one statement, so all totals come from the same
// snapshot.
func (r *analyticsRepository) Summary(ctx context.Context) (*models.Analytics, error) {
	var analytics models.Analytics

	err := r.db.GetContext(ctx, &analytics, `
		SELECT
			(SELECT COUNT(*) FROM properties) AS total_properties,
			(SELECT COUNT(*) FROM properties WHERE status = 'approved') AS approved_properties,
			(SELECT COUNT(*) FROM properties WHERE status = 'pending') AS pending_properties,
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM leads) AS total_leads
	`)
	if err != nil {
		return nil, fmt.Errorf("count analytics: %w", err)
	}

	return &analytics, nil
}
