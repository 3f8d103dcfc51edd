package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"courseHub/internal/models"
)

type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, courseID string) (*models.Course, error)
	List(ctx context.Context, filter CourseFilter, limit, offset int) ([]models.Course, error)
	Count(ctx context.Context, filter CourseFilter) (int, error)
}

type ReviewRepository interface {
	// Create вставляет отзыв и обновляет агрегат курса в одной транзакции.
	// Возвращает ErrReviewExists при нарушении уникальности (course_id, user_id).
	Create(ctx context.Context, review *models.Review) error
	// GetByCourseAndUser возвращает (nil, nil), если отзыва нет.
	GetByCourseAndUser(ctx context.Context, courseID, userID string) (*models.Review, error)
	ListByCourse(ctx context.Context, courseID string, sort ReviewSort, limit, offset int) ([]models.Review, error)
	CountByCourse(ctx context.Context, courseID string) (int, error)
	LatestByCourse(ctx context.Context, courseID string, limit int) ([]models.Review, error)
}

type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
}

type ImageRepository interface {
	Create(ctx context.Context, image *models.Image) error
	GetByID(ctx context.Context, imageID string) (*models.Image, error)
	Delete(ctx context.Context, imageID string) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
}

type Repository struct {
	Course   CourseRepository
	Review   ReviewRepository
	Category CategoryRepository
	Image    ImageRepository
	User     UserRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Course:   NewCourseRepository(db),
		Review:   NewReviewRepository(db),
		Category: NewCategoryRepository(db),
		Image:    NewImageRepository(db),
		User:     NewUserRepository(db),
	}
}
