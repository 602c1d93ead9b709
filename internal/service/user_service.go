package service

import (
	"context"

	"photoshare/internal/config"
	"photoshare/internal/repository"
)

type UserService interface {
	UpdateProfile(ctx context.Context, userID int, instructions, interests string) error
}

type userService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewUserService(userRepo repository.UserRepository, cfg *config.Config) UserService {
	return &userService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// UpdateProfile меняет только текстовые поля профиля текущего аккаунта
func (s *userService) UpdateProfile(ctx context.Context, userID int, instructions, interests string) error {
	err := s.userRepo.UpdateProfile(ctx, userID, instructions, interests)
	if err != nil {
		return err
	}

	return nil
}
