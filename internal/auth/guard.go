package auth

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"luxestate/internal/models"
)

var (
	ErrMissingToken = fmt.Errorf("%w: missing bearer token", models.ErrUnauthenticated)
	ErrTokenInvalid = fmt.Errorf("%w: invalid token", models.ErrUnauthenticated)
	ErrUserNotFound = fmt.Errorf("%w: user not found", models.ErrUnauthenticated)
	ErrForbidden    = fmt.Errorf("%w: insufficient role", models.ErrForbidden)
)

type Operation string

const (
	OpCreateProperty       Operation = "create_property"
	OpUpdatePropertyStatus Operation = "update_property_status"
	OpUploadPropertyImage  Operation = "upload_property_image"
	OpListOwnProperties    Operation = "list_own_properties"
	OpReadLeads            Operation = "read_leads"
	OpReadUsers            Operation = "read_users"
	OpReadAnalytics        Operation = "read_analytics"
	OpBrowseProperties     Operation = "browse_properties"
	OpSubmitLead           Operation = "submit_lead"
)

type access int

const (
	accessPublic access = iota
	accessAuthenticated
	accessRoles
)

type permission struct {
	access access
	roles  []models.Role
}

var permissions = map[Operation]permission{
	OpCreateProperty:       {access: accessRoles, roles: []models.Role{models.RoleSeller, models.RoleAdmin}},
	OpUpdatePropertyStatus: {access: accessRoles, roles: []models.Role{models.RoleAdmin}},
	OpUploadPropertyImage:  {access: accessRoles, roles: []models.Role{models.RoleSeller, models.RoleAdmin}},
	OpListOwnProperties:    {access: accessAuthenticated},
	OpReadLeads:            {access: accessRoles, roles: []models.Role{models.RoleAdmin}},
	OpReadUsers:            {access: accessRoles, roles: []models.Role{models.RoleAdmin}},
	OpReadAnalytics:        {access: accessRoles, roles: []models.Role{models.RoleAdmin}},
	OpBrowseProperties:     {access: accessPublic},
	OpSubmitLead:           {access: accessPublic},
}

// AllowedRoles returns the roles that may perform op, or nil when op does
// not require a particular role.
func AllowedRoles(op Operation) []models.Role {
	return slices.Clone(permissions[op].roles)
}

type TokenValidator interface {
	Validate(token string) (string, error)
}

type UserFinder interface {
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}

// Guard turns bearer tokens into users and applies the permission matrix.
type Guard struct {
	tokens TokenValidator
	users  UserFinder
}

func NewGuard(tokens TokenValidator, users UserFinder) *Guard {
	return &Guard{tokens: tokens, users: users}
}

func (g *Guard) Resolve(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	userID, err := g.tokens.Validate(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	user, err := g.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	return user, nil
}

// RequireRole fails with ErrForbidden unless user has one of allowed.
func RequireRole(user *models.User, allowed ...models.Role) error {
	if user == nil {
		return ErrMissingToken
	}
	if !user.Role.Valid() {
		return ErrForbidden
	}
	if slices.Contains(allowed, user.Role) {
		return nil
	}
	return ErrForbidden
}

// Authorize checks whether user (nil for anonymous callers) may perform op.
func Authorize(user *models.User, op Operation) error {
	perm, ok := permissions[op]
	if !ok {
		return fmt.Errorf("%w: unknown operation %q", models.ErrForbidden, op)
	}

	switch perm.access {
	case accessPublic:
		return nil
	case accessAuthenticated:
		if user == nil {
			return ErrMissingToken
		}
		return nil
	case accessRoles:
		return RequireRole(user, perm.roles...)
	default:
		return fmt.Errorf("%w: unknown access level", models.ErrForbidden)
	}
}
