package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lib/pq"

	"luxestate/internal/auth"
	"luxestate/internal/models"
	"luxestate/internal/repository"
	"luxestate/internal/storage"
)

var (
	ErrStorageUnavailable = errors.New("image storage is not configured")
	ErrUnsupportedImage   = fmt.Errorf("%w: unsupported image type", models.ErrValidation)
)

// AllowedImageTypes are the MIME types accepted for listing photos.
var AllowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type CreatePropertyRequest struct {
	Title        string
	Description  string
	Price        float64
	Location     string
	Bedrooms     int
	Bathrooms    int
	Area         float64
	PropertyType string
	Images       []string
}

type ImageUpload struct {
	FileName    string
	ContentType string
	Body        io.Reader
	Size        int64
}

type PropertyService interface {
	Create(ctx context.Context, actor *models.User, req CreatePropertyRequest) (*models.Property, error)
	List(ctx context.Context, filter models.PropertyFilter) ([]models.Property, error)
	ListBySeller(ctx context.Context, actor *models.User) ([]models.Property, error)
	Get(ctx context.Context, propertyID string) (*models.Property, error)
	UpdateStatus(ctx context.Context, actor *models.User, propertyID, status string) (*models.Property, error)
	AddImage(ctx context.Context, actor *models.User, propertyID string, upload ImageUpload) (*models.Property, error)
}

type propertyService struct {
	propertyRepo repository.PropertyRepository
	storage      storage.Storage
	clock        clock
}

func NewPropertyService(propertyRepo repository.PropertyRepository, storage storage.Storage) PropertyService {
	return &propertyService{
		propertyRepo: propertyRepo,
		storage:      storage,
	}
}

// Create stores a new listing owned by actor. Listings always start pending.
func (s *propertyService) Create(ctx context.Context, actor *models.User, req CreatePropertyRequest) (*models.Property, error) {
	if err := auth.Authorize(actor, auth.OpCreateProperty); err != nil {
		return nil, err
	}
	if err := validateProperty(req); err != nil {
		return nil, err
	}

	property := &models.Property{
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		Price:        req.Price,
		Location:     strings.TrimSpace(req.Location),
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		Area:         req.Area,
		PropertyType: strings.TrimSpace(req.PropertyType),
		Images:       pq.StringArray(append([]string{}, req.Images...)),
		Status:       models.StatusPending,
		SellerID:     actor.ID,
	}

	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	return property, nil
}

func validateProperty(req CreatePropertyRequest) error {
	switch {
	case strings.TrimSpace(req.Title) == "":
		return fmt.Errorf("%w: title is required", models.ErrValidation)
	case strings.TrimSpace(req.PropertyType) == "":
		return fmt.Errorf("%w: property_type is required", models.ErrValidation)
	case req.Price < 0:
		return fmt.Errorf("%w: price must not be negative", models.ErrValidation)
	case req.Area <= 0:
		return fmt.Errorf("%w: area must be positive", models.ErrValidation)
	case req.Bedrooms < 0 || req.Bathrooms < 0:
		return fmt.Errorf("%w: bedrooms and bathrooms must not be negative", models.ErrValidation)
	}
	return nil
}

func (s *propertyService) List(ctx context.Context, filter models.PropertyFilter) ([]models.Property, error) {
	return s.propertyRepo.List(ctx, filter)
}

func (s *propertyService) ListBySeller(ctx context.Context, actor *models.User) ([]models.Property, error) {
	if err := auth.Authorize(actor, auth.OpListOwnProperties); err != nil {
		return nil, err
	}

	return s.propertyRepo.ListBySeller(ctx, actor.ID)
}

func (s *propertyService) Get(ctx context.Context, propertyID string) (*models.Property, error) {
	return s.propertyRepo.GetByID(ctx, propertyID)
}

// UpdateStatus moves a listing to status. Repeating the current status is
// allowed and still refreshes updated_at.
func (s *propertyService) UpdateStatus(ctx context.Context, actor *models.User, propertyID, status string) (*models.Property, error) {
	if err := auth.Authorize(actor, auth.OpUpdatePropertyStatus); err != nil {
		return nil, err
	}

	status, err := models.NormalizeStatus(status)
	if err != nil {
		return nil, err
	}

	current, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	updatedAt := models.TransitionTime(current.CreatedAt, s.clock.now())

	return s.propertyRepo.UpdateStatus(ctx, propertyID, status, updatedAt)
}

// AddImage uploads a photo and appends its URL to the listing. Sellers may
// only add photos to their own listings.
func (s *propertyService) AddImage(ctx context.Context, actor *models.User, propertyID string, upload ImageUpload) (*models.Property, error) {
	if err := auth.Authorize(actor, auth.OpUploadPropertyImage); err != nil {
		return nil, err
	}
	if _, ok := AllowedImageTypes[upload.ContentType]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, upload.ContentType)
	}
	if s.storage == nil {
		return nil, ErrStorageUnavailable
	}

	current, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RoleAdmin && current.SellerID != actor.ID {
		return nil, fmt.Errorf("%w: not the listing owner", auth.ErrForbidden)
	}

	objectName, url, err := s.storage.UploadImage(ctx, propertyID, upload.FileName, upload.ContentType, upload.Body, upload.Size)
	if err != nil {
		return nil, err
	}

	updatedAt := models.TransitionTime(current.CreatedAt, s.clock.now())

	property, err := s.propertyRepo.AppendImage(ctx, propertyID, url, updatedAt)
	if err != nil {
		if delErr := s.storage.DeleteImage(context.WithoutCancel(ctx), objectName); delErr != nil {
			slog.Error("failed to remove orphaned image", "object", objectName, "error", delErr)
		}
		return nil, err
	}

	return property, nil
}
