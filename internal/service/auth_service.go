package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"photoshare/internal/config"
	"photoshare/internal/models"
	"photoshare/internal/repository"
)

type AuthService interface {
	Signup(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	ParseSessionToken(tokenString string) (*models.Identity, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Signup создает аккаунт как есть: пароль хранится открытым текстом,
// дубликаты имён не проверяются (поведение исходной системы)
func (s *authService) Signup(ctx context.Context, username, password string) error {
	err := s.userRepo.Create(ctx, username, password)
	if err != nil {
		return fmt.Errorf("ошибка при регистрации: %w", err)
	}

	return nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByCredentials(ctx, username, password)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка аутентификации: %w", err)
	}

	token, err := s.generateSessionToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка генерации сессионного токена: %w", err)
	}

	return user, token, nil
}

// generateSessionToken выпускает HS256 JWT, который целиком несет состояние
// сессии; на сервере оно нигде не хранится
func (s *authService) generateSessionToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"userId":   user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(s.cfg.SessionDuration).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.SessionSecret))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

func (s *authService) ParseSessionToken(tokenString string) (*models.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SessionSecret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга токена: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("недействительный токен")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("неверный формат claims")
	}

	userID, ok1 := claims["userId"].(float64)
	username, ok2 := claims["username"].(string)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("неверные данные в токене")
	}

	return &models.Identity{
		UserID:   int(userID),
		Username: username,
	}, nil
}
