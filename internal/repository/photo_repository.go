package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"photoshare/internal/models"

	"github.com/jmoiron/sqlx"
)

type photoRepository struct {
	db *sqlx.DB
}

func NewPhotoRepository(db *sqlx.DB) PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) Create(ctx context.Context, photo *models.Photo) error {
	query := r.db.Rebind(`
		INSERT INTO photos (user_id, filename, description, keywords)
		VALUES (?, ?, ?, ?)
	`)

	_, err := r.db.ExecContext(ctx, query, photo.UserID, photo.Filename, photo.Description, photo.Keywords)
	if err != nil {
		return fmt.Errorf("ошибка при создании фотографии: %w", err)
	}

	return nil
}

func (r *photoRepository) GetByID(ctx context.Context, photoID int) (*models.Photo, error) {
	var photo models.Photo

	query := r.db.Rebind(`SELECT * FROM photos WHERE id = ?`)

	err := r.db.GetContext(ctx, &photo, query, photoID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("фотография с ID %d не найдена", photoID)
		}
		return nil, fmt.Errorf("ошибка при получении фотографии: %w", err)
	}

	return &photo, nil
}

// GetAllWithOwner возвращает ленту целиком вместе с именами владельцев.
// ORDER BY id добавлен ради детерминированного порядка выдачи.
func (r *photoRepository) GetAllWithOwner(ctx context.Context) ([]models.PhotoWithOwner, error) {
	var photos []models.PhotoWithOwner

	query := `
		SELECT p.id, p.user_id, p.filename, p.description, p.keywords, u.username AS owner_username
		FROM photos p JOIN users u ON p.user_id = u.id
		ORDER BY p.id
	`

	err := r.db.SelectContext(ctx, &photos, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ленты фотографий: %w", err)
	}

	return photos, nil
}

func (r *photoRepository) GetByUserID(ctx context.Context, userID int) ([]models.Photo, error) {
	var photos []models.Photo

	query := r.db.Rebind(`SELECT * FROM photos WHERE user_id = ?`)

	err := r.db.SelectContext(ctx, &photos, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении фотографий пользователя: %w", err)
	}

	return photos, nil
}

func (r *photoRepository) UpdateMeta(ctx context.Context, photoID int, description, keywords string) error {
	query := r.db.Rebind(`UPDATE photos SET description = ?, keywords = ? WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, description, keywords, photoID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении фотографии: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("фотография с ID %d не найдена", photoID)
	}

	return nil
}

func (r *photoRepository) UpdateWithFilename(ctx context.Context, photoID int, filename, description, keywords string) error {
	query := r.db.Rebind(`UPDATE photos SET filename = ?, description = ?, keywords = ? WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, filename, description, keywords, photoID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении фотографии: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("фотография с ID %d не найдена", photoID)
	}

	return nil
}

func (r *photoRepository) Delete(ctx context.Context, photoID int) error {
	query := r.db.Rebind(`DELETE FROM photos WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, photoID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении фотографии: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("фотография с ID %d не найдена", photoID)
	}

	return nil
}

// SearchByKeyword - подстрочный поиск по полю keywords (LIKE %keyword%).
// Чувствительность к регистру определяется коллацией движка БД.
func (r *photoRepository) SearchByKeyword(ctx context.Context, keyword string) ([]models.Photo, error) {
	var photos []models.Photo

	query := r.db.Rebind(`SELECT * FROM photos WHERE keywords LIKE ?`)

	err := r.db.SelectContext(ctx, &photos, query, "%"+keyword+"%")
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске фотографий: %w", err)
	}

	return photos, nil
}
