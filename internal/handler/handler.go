package handlers

import (
	"github.com/go-playground/validator/v10"

	"courseHub/internal/config"
	"courseHub/internal/database"
	"courseHub/internal/repository"
	"courseHub/internal/service"
)

type Handlers struct {
	CourseService service.CourseService
	ReviewService service.ReviewService
	AuthService   service.AuthService
	CourseRepo    repository.CourseRepository
	ReviewRepo    repository.ReviewRepository
	CategoryRepo  repository.CategoryRepository
	ImageRepo     repository.ImageRepository
	UserRepo      repository.UserRepository
	DB            *database.DB
	Cfg           *config.Config
	Validate      *validator.Validate
}

func NewHandlers(repo *repository.Repository, services *service.Service, db *database.DB, config *config.Config) *Handlers {
	return &Handlers{
		CourseService: services.Course,
		ReviewService: services.Review,
		AuthService:   services.Auth,
		CourseRepo:    repo.Course,
		ReviewRepo:    repo.Review,
		CategoryRepo:  repo.Category,
		ImageRepo:     repo.Image,
		UserRepo:      repo.User,
		DB:            db,
		Cfg:           config,
		Validate:      validator.New(),
	}
}
