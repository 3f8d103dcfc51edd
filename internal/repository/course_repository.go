package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"courseHub/internal/models"
)

type CourseRepositoryImpl struct {
	db *sqlx.DB
}

func NewCourseRepository(db *sqlx.DB) *CourseRepositoryImpl {
	return &CourseRepositoryImpl{db: db}
}

// CourseFilter - явная спецификация фильтра списка курсов.
// Пустые поля не накладывают ограничений, условия соединяются через AND.
type CourseFilter struct {
	Name        string
	CategoryIDs []string
}

func buildCourseWhere(filter CourseFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	if len(filter.CategoryIDs) > 0 {
		args = append(args, pq.Array(filter.CategoryIDs))
		conds = append(conds, fmt.Sprintf("category_id = ANY($%d)", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *CourseRepositoryImpl) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (course_id, author_id, name, category_id, short_desc, full_desc, background_image_id, rating_sum, rating_num, created_at)
		VALUES (:course_id, :author_id, :name, :category_id, :short_desc, :full_desc, :background_image_id, :rating_sum, :rating_num, :created_at)
	`

	if course.CourseID == "" {
		course.CourseID = uuid.New().String()
	}
	course.CreatedAt = time.Now()

	_, err := r.db.NamedExecContext(ctx, query, course)
	if err != nil {
		if isIntegrityViolation(err) {
			return fmt.Errorf("%w: %v", ErrCourseInvalid, err)
		}
		return fmt.Errorf("ошибка при создании курса: %w", err)
	}

	return nil
}

func (r *CourseRepositoryImpl) GetByID(ctx context.Context, courseID string) (*models.Course, error) {
	query := `SELECT * FROM courses WHERE course_id = $1`

	var course models.Course
	err := r.db.GetContext(ctx, &course, query, courseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("ошибка при получении курса: %w", err)
	}

	return &course, nil
}

// List возвращает страницу курсов под фильтром.
// Порядок фиксированный (created_at DESC, course_id), чтобы пагинация была стабильной.
func (r *CourseRepositoryImpl) List(ctx context.Context, filter CourseFilter, limit, offset int) ([]models.Course, error) {
	where, args := buildCourseWhere(filter)

	query := fmt.Sprintf(
		"SELECT * FROM courses%s ORDER BY created_at DESC, course_id LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	courses := []models.Course{}
	err := r.db.SelectContext(ctx, &courses, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка курсов: %w", err)
	}

	return courses, nil
}

func (r *CourseRepositoryImpl) Count(ctx context.Context, filter CourseFilter) (int, error) {
	where, args := buildCourseWhere(filter)

	query := "SELECT COUNT(*) FROM courses" + where

	var count int
	err := r.db.GetContext(ctx, &count, query, args...)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте курсов: %w", err)
	}

	return count, nil
}
