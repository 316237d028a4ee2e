package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"luxestate/internal/config"
	"luxestate/internal/models"
	"luxestate/internal/repository"
)

var ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", models.ErrUnauthenticated)

// maxPasswordBytes is the bcrypt input limit.
const maxPasswordBytes = 72

type RegisterRequest struct {
	Email    string
	Password string
	Name     string
	Role     string
}

type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

type authService struct {
	userRepo   repository.UserRepository
	hasher     PasswordHasher
	tokens     TokenIssuer
	allowAdmin bool
}

func NewAuthService(userRepo repository.UserRepository, hasher PasswordHasher, tokens TokenIssuer, cfg *config.Config) AuthService {
	return &authService{
		userRepo:   userRepo,
		hasher:     hasher,
		tokens:     tokens,
		allowAdmin: cfg.AllowAdminRegistration,
	}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	email := strings.TrimSpace(req.Email)
	name := strings.TrimSpace(req.Name)
	if email == "" || req.Password == "" || name == "" {
		return nil, fmt.Errorf("%w: email, password and name are required", models.ErrValidation)
	}
	if len(req.Password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: password must be at most %d bytes", models.ErrValidation, maxPasswordBytes)
	}

	role := models.RoleClient
	if req.Role != "" {
		parsed, ok := models.ParseRole(req.Role)
		if !ok {
			return nil, fmt.Errorf("%w: unknown role %q", models.ErrValidation, req.Role)
		}
		role = parsed
	}
	if role == models.RoleAdmin && !s.allowAdmin {
		return nil, fmt.Errorf("%w: admin accounts cannot be self-registered", models.ErrValidation)
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, fmt.Errorf("%w: email %s is already registered", models.ErrConflict, email)
	}
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: hash,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return s.session(user)
}

func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.session(user)
}

func (s *authService) session(user *models.User) (*AuthResult, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &AuthResult{Token: token, User: user}, nil
}
