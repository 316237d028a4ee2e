package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"luxestate/internal/models"
)

const propertyColumns = `id, title, description, price, location, bedrooms, bathrooms, area,
	property_type, images, status, seller_id, created_at, updated_at`

type PropertyRepositoryImpl struct {
	db *sqlx.DB
}

func NewPropertyRepository(db *sqlx.DB) *PropertyRepositoryImpl {
	return &PropertyRepositoryImpl{db: db}
}

func (r *PropertyRepositoryImpl) Create(ctx context.Context, property *models.Property) error {
	query := `
		INSERT INTO properties
		(id, title, description, price, location, bedrooms, bathrooms, area,
		 property_type, images, status, seller_id, created_at, updated_at)
		VALUES
		(:id, :title, :description, :price, :location, :bedrooms, :bathrooms, :area,
		 :property_type, :images, :status, :seller_id, :created_at, :updated_at)
	`

	if property.ID == "" {
		property.ID = uuid.New().String()
	}
	if property.Images == nil {
		property.Images = pq.StringArray{}
	}

	now := models.Now()
	property.CreatedAt = now
	property.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, query, property)
	if err != nil {
		return fmt.Errorf("create property: %w", err)
	}

	return nil
}

func (r *PropertyRepositoryImpl) GetByID(ctx context.Context, propertyID string) (*models.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`

	var property models.Property
	err := r.db.GetContext(ctx, &property, query, propertyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("property %s: %w", propertyID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("get property: %w", err)
	}

	return &property, nil
}

// List returns properties matching filter, newest first.
func (r *PropertyRepositoryImpl) List(ctx context.Context, filter models.PropertyFilter) ([]models.Property, error) {
	where, args := buildPropertyFilter(filter)

	query := `SELECT ` + propertyColumns + ` FROM properties`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	args = append(args, listLimit)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args))

	properties := []models.Property{}
	if err := r.db.SelectContext(ctx, &properties, query, args...); err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}

	return properties, nil
}

func buildPropertyFilter(filter models.PropertyFilter) ([]string, []interface{}) {
	var (
		where []string
		args  []interface{}
	)

	add := func(clause string, arg interface{}) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}

	if filter.Status != "" {
		add("status = $%d", filter.Status)
	}
	if filter.PropertyType != "" {
		add("property_type = $%d", filter.PropertyType)
	}
	if filter.MinPrice != nil {
		add("price >= $%d", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		add("price <= $%d", *filter.MaxPrice)
	}
	if filter.Bedrooms != nil {
		add("bedrooms = $%d", *filter.Bedrooms)
	}
	if filter.Location != "" {
		add(`location ILIKE '%%' || $%d || '%%' ESCAPE '\'`, escapeLike(filter.Location))
	}

	return where, args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes value match literally inside a LIKE pattern.
func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}

func (r *PropertyRepositoryImpl) ListBySeller(ctx context.Context, sellerID string) ([]models.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE seller_id = $1 ORDER BY created_at DESC LIMIT $2`

	properties := []models.Property{}
	if err := r.db.SelectContext(ctx, &properties, query, sellerID, listLimit); err != nil {
		return nil, fmt.Errorf("list seller properties: %w", err)
	}

	return properties, nil
}

func (r *PropertyRepositoryImpl) UpdateStatus(ctx context.Context, propertyID, status string, updatedAt time.Time) (*models.Property, error) {
	query := `
		UPDATE properties SET
			status = $2,
			updated_at = $3
		WHERE id = $1
		RETURNING ` + propertyColumns

	var property models.Property
	err := r.db.GetContext(ctx, &property, query, propertyID, status, updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("property %s: %w", propertyID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("update property status: %w", err)
	}

	return &property, nil
}

func (r *PropertyRepositoryImpl) AppendImage(ctx context.Context, propertyID, imageURL string, updatedAt time.Time) (*models.Property, error) {
	query := `
		UPDATE properties SET
			images = array_append(images, $2),
			updated_at = $3
		WHERE id = $1
		RETURNING ` + propertyColumns

	var property models.Property
	err := r.db.GetContext(ctx, &property, query, propertyID, imageURL, updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("property %s: %w", propertyID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("append property image: %w", err)
	}

	return &property, nil
}

func (r *PropertyRepositoryImpl) CountByType(ctx context.Context) ([]models.TypeCount, error) {
	query := `SELECT property_type, COUNT(*) AS count FROM properties GROUP BY property_type ORDER BY property_type`

	counts := []models.TypeCount{}
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("count properties by type: %w", err)
	}

	return counts, nil
}
