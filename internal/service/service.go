package service

import (
	"courseHub/internal/config"
	"courseHub/internal/repository"
	"courseHub/internal/storage"
)

type Service struct {
	Course CourseService
	Review ReviewService
	Auth   AuthService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Course: NewCourseService(rep.Course, rep.Image, storage),
		Review: NewReviewService(rep.Course, rep.Review),
		Auth:   NewAuthService(rep.User, cfg),
	}
}
