package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"courseHub/internal/models"
	"courseHub/internal/repository"
	"courseHub/internal/storage"
)

type CreateCourseRequest struct {
	Name       string
	AuthorID   string
	CategoryID string
	ShortDesc  string
	FullDesc   string
}

// UploadedFile - принятый из multipart-формы файл фонового изображения
type UploadedFile struct {
	Name    string
	Size    int64
	Content io.Reader
}

type CourseService interface {
	// CreateCourse сохраняет изображение (если есть), затем курс.
	// Если запись курса не прошла, загруженное изображение удаляется компенсирующим шагом.
	CreateCourse(ctx context.Context, req CreateCourseRequest, file *UploadedFile) (*models.Course, error)
}

type courseService struct {
	courseRepo repository.CourseRepository
	imageRepo  repository.ImageRepository
	storage    storage.Storage
}

func NewCourseService(courseRepo repository.CourseRepository, imageRepo repository.ImageRepository, storage storage.Storage) CourseService {
	return &courseService{
		courseRepo: courseRepo,
		imageRepo:  imageRepo,
		storage:    storage,
	}
}

func (s *courseService) CreateCourse(ctx context.Context, req CreateCourseRequest, file *UploadedFile) (*models.Course, error) {
	var imageID *string
	var objectName string

	if file != nil {
		var imageURL string
		var err error

		objectName, imageURL, err = s.storage.UploadImage(ctx, file.Name, file.Content, file.Size)
		if err != nil {
			return nil, fmt.Errorf("ошибка загрузки изображения: %w", err)
		}

		image := &models.Image{
			ObjectName: objectName,
			ImageURL:   imageURL,
		}

		if err := s.imageRepo.Create(ctx, image); err != nil {
			if derr := s.storage.DeleteImage(ctx, objectName); derr != nil {
				log.Printf("Предупреждение: не удалось удалить изображение из MinIO: %v", derr)
			}
			return nil, fmt.Errorf("ошибка сохранения изображения в БД: %w", err)
		}

		imageID = &image.ImageID
	}

	course := &models.Course{
		AuthorID:          req.AuthorID,
		Name:              req.Name,
		CategoryID:        req.CategoryID,
		ShortDesc:         req.ShortDesc,
		FullDesc:          req.FullDesc,
		BackgroundImageID: imageID,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		if imageID != nil {
			if derr := s.storage.DeleteImage(ctx, objectName); derr != nil {
				log.Printf("Предупреждение: не удалось удалить изображение из MinIO: %v", derr)
			}
			if derr := s.imageRepo.Delete(ctx, *imageID); derr != nil {
				log.Printf("Предупреждение: не удалось удалить запись изображения: %v", derr)
			}
		}
		return nil, err
	}

	return course, nil
}
