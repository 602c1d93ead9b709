package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"photoshare/internal/models"

	"github.com/jmoiron/sqlx"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, username, password string) error {
	query := r.db.Rebind(`INSERT INTO users (username, password) VALUES (?, ?)`)

	_, err := r.db.ExecContext(ctx, query, username, password)
	if err != nil {
		return fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, userID int) (*models.User, error) {
	var user models.User

	query := r.db.Rebind(`SELECT * FROM users WHERE id = ?`)

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пользователь с ID %d не найден", userID)
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User

	query := r.db.Rebind(`SELECT * FROM users WHERE username = ?`)

	err := r.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пользователь %s не найден", username)
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по имени: %w", err)
	}

	return &user, nil
}

// GetByCredentials - точное совпадение имени и пароля, как при входе.
// При дубликатах имён возвращается первая подходящая строка.
func (r *userRepository) GetByCredentials(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User

	query := r.db.Rebind(`SELECT * FROM users WHERE username = ? AND password = ?`)

	err := r.db.GetContext(ctx, &user, query, username, password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("неверное имя пользователя или пароль")
		}
		return nil, fmt.Errorf("ошибка при проверке учетных данных: %w", err)
	}

	return &user, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, userID int, instructions, interests string) error {
	query := r.db.Rebind(`UPDATE users SET instructions = ?, interests = ? WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, instructions, interests, userID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении профиля: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пользователь с ID %d не найден", userID)
	}

	return nil
}

func (r *userRepository) List(ctx context.Context) ([]models.UserListEntry, error) {
	var users []models.UserListEntry

	query := `SELECT username, instructions, interests FROM users`

	err := r.db.SelectContext(ctx, &users, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка пользователей: %w", err)
	}

	return users, nil
}

func (r *userRepository) Search(ctx context.Context, keyword string) ([]models.UserListEntry, error) {
	var users []models.UserListEntry

	query := r.db.Rebind(`SELECT username, instructions, interests FROM users WHERE username LIKE ?`)

	err := r.db.SelectContext(ctx, &users, query, "%"+keyword+"%")
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске пользователей: %w", err)
	}

	return users, nil
}
