package handlers

import (
	"context"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"luxestate/internal/config"
	"luxestate/internal/service"
)

type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type Handlers struct {
	AuthService      service.AuthService
	UserService      service.UserService
	PropertyService  service.PropertyService
	LeadService      service.LeadService
	AnalyticsService service.AnalyticsService
	DB               HealthChecker
	Cfg              *config.Config
	Validate         *validator.Validate
}

func NewHandlers(service *service.Service, db HealthChecker, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:      service.Auth,
		UserService:      service.User,
		PropertyService:  service.Property,
		LeadService:      service.Lead,
		AnalyticsService: service.Analytics,
		DB:               db,
		Cfg:              config,
		Validate:         NewValidator(),
	}
}

// NewValidator reports fields by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
