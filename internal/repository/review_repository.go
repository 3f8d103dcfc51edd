package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"courseHub/internal/models"
)

type ReviewRepositoryImpl struct {
	db *sqlx.DB
}

func NewReviewRepository(db *sqlx.DB) *ReviewRepositoryImpl {
	return &ReviewRepositoryImpl{db: db}
}

// ReviewSort - политика сортировки списка отзывов
type ReviewSort string

const (
	SortNewest        ReviewSort = "newest"
	SortPositiveFirst ReviewSort = "positive_first"
	SortNegativeFirst ReviewSort = "negative_first"
)

// ParseReviewSort приводит параметр запроса к известной сортировке,
// любое нераспознанное значение трактуется как newest
func ParseReviewSort(value string) ReviewSort {
	switch ReviewSort(value) {
	case SortPositiveFirst:
		return SortPositiveFirst
	case SortNegativeFirst:
		return SortNegativeFirst
	default:
		return SortNewest
	}
}

func (s ReviewSort) orderClause() string {
	// review_id замыкает порядок, чтобы пагинация была детерминированной
	switch s {
	case SortPositiveFirst:
		return "rating DESC, created_at DESC, review_id"
	case SortNegativeFirst:
		return "rating ASC, created_at DESC, review_id"
	default:
		return "created_at DESC, review_id"
	}
}

// Create вставляет отзыв и инкрементирует rating_sum/rating_num курса в одной транзакции,
// поэтому агрегат всегда согласован с набором отзывов. Дубль от параллельного запроса
// ловится уникальным ограничением (course_id, user_id) и откатывает транзакцию целиком.
func (r *ReviewRepositoryImpl) Create(ctx context.Context, review *models.Review) error {
	if review.ReviewID == "" {
		review.ReviewID = uuid.New().String()
	}
	review.CreatedAt = time.Now()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO reviews (review_id, course_id, user_id, rating, text, created_at)
		VALUES (:review_id, :course_id, :user_id, :rating, :text, :created_at)
	`

	_, err = tx.NamedExecContext(ctx, insertQuery, review)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrReviewExists
		}
		return fmt.Errorf("ошибка при создании отзыва: %w", err)
	}

	updateQuery := `
		UPDATE courses
		SET rating_sum = rating_sum + $1, rating_num = rating_num + 1
		WHERE course_id = $2
	`

	result, err := tx.ExecContext(ctx, updateQuery, review.Rating, review.CourseID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении рейтинга курса: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrCourseNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return nil
}

func (r *ReviewRepositoryImpl) GetByCourseAndUser(ctx context.Context, courseID, userID string) (*models.Review, error) {
	query := `SELECT * FROM reviews WHERE course_id = $1 AND user_id = $2`

	var review models.Review
	err := r.db.GetContext(ctx, &review, query, courseID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при получении отзыва: %w", err)
	}

	return &review, nil
}

func (r *ReviewRepositoryImpl) ListByCourse(ctx context.Context, courseID string, sort ReviewSort, limit, offset int) ([]models.Review, error) {
	query := fmt.Sprintf(
		"SELECT * FROM reviews WHERE course_id = $1 ORDER BY %s LIMIT $2 OFFSET $3",
		sort.orderClause(),
	)

	reviews := []models.Review{}
	err := r.db.SelectContext(ctx, &reviews, query, courseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении отзывов: %w", err)
	}

	return reviews, nil
}

func (r *ReviewRepositoryImpl) CountByCourse(ctx context.Context, courseID string) (int, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE course_id = $1`

	var count int
	err := r.db.GetContext(ctx, &count, query, courseID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте отзывов: %w", err)
	}

	return count, nil
}

func (r *ReviewRepositoryImpl) LatestByCourse(ctx context.Context, courseID string, limit int) ([]models.Review, error) {
	query := `SELECT * FROM reviews WHERE course_id = $1 ORDER BY created_at DESC, review_id LIMIT $2`

	reviews := []models.Review{}
	err := r.db.SelectContext(ctx, &reviews, query, courseID, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении последних отзывов: %w", err)
	}

	return reviews, nil
}
