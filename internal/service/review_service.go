package service

import (
	"context"
	"errors"

	"courseHub/internal/models"
	"courseHub/internal/repository"
)

// ErrInvalidRating - рейтинг вне допустимого диапазона 1..5
var ErrInvalidRating = errors.New("рейтинг должен быть от 1 до 5")

type ReviewService interface {
	CreateReview(ctx context.Context, courseID, userID string, rating int, text string) (*models.Review, error)
}

type reviewService struct {
	courseRepo repository.CourseRepository
	reviewRepo repository.ReviewRepository
}

func NewReviewService(courseRepo repository.CourseRepository, reviewRepo repository.ReviewRepository) ReviewService {
	return &reviewService{
		courseRepo: courseRepo,
		reviewRepo: reviewRepo,
	}
}

// CreateReview создаёт отзыв и обновляет агрегат рейтинга курса.
// Предварительная проверка на дубль даёт быстрый ответ в обычном случае;
// гонку двух параллельных запросов закрывает уникальное ограничение в БД,
// его нарушение репозиторий возвращает тем же ErrReviewExists.
func (s *reviewService) CreateReview(ctx context.Context, courseID, userID string, rating int, text string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	existing, err := s.reviewRepo.GetByCourseAndUser(ctx, courseID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, repository.ErrReviewExists
	}

	review := &models.Review{
		CourseID: courseID,
		UserID:   userID,
		Rating:   rating,
		Text:     text,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}
