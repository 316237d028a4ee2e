package service

import (
	"context"

	"luxestate/internal/auth"
	"luxestate/internal/models"
	"luxestate/internal/repository"
)

type UserService interface {
	List(ctx context.Context, actor *models.User) ([]models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(ctx context.Context, actor *models.User) ([]models.User, error) {
	if err := auth.Authorize(actor, auth.OpReadUsers); err != nil {
		return nil, err
	}

	return s.userRepo.ListUsers(ctx)
}
