package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"courseHub/internal/middleware"
	"courseHub/internal/models"
	"courseHub/internal/repository"
	"courseHub/internal/service"
)

type PaginationResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type SearchParams struct {
	Name        string   `json:"name"`
	CategoryIDs []string `json:"categoryIds"`
}

type CourseResponse struct {
	models.Course
	AverageRating float64 `json:"averageRating"`
}

func newCourseResponse(course models.Course) CourseResponse {
	return CourseResponse{
		Course:        course,
		AverageRating: course.AverageRating(),
	}
}

type CoursesIndexResponse struct {
	Courses      []CourseResponse   `json:"courses"`
	Categories   []models.Category  `json:"categories"`
	Pagination   PaginationResponse `json:"pagination"`
	SearchParams SearchParams       `json:"searchParams"`
}

type CourseFormResponse struct {
	Error      string            `json:"error,omitempty"`
	Course     models.Course     `json:"course"`
	Categories []models.Category `json:"categories"`
	Users      []models.User     `json:"users"`
}

type CourseShowResponse struct {
	Course             CourseResponse  `json:"course"`
	BackgroundImageURL string          `json:"backgroundImageUrl,omitempty"`
	Reviews            []models.Review `json:"reviews"`
	UserReview         *models.Review  `json:"userReview"`
}

func (h *Handlers) pageParams(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	defaultLimit := h.Cfg.PageSize
	if defaultLimit < 1 {
		defaultLimit = 20
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = defaultLimit
	}

	return page, limit
}

func searchParams(r *http.Request) SearchParams {
	params := SearchParams{
		Name:        r.URL.Query().Get("name"),
		CategoryIDs: []string{},
	}

	for _, id := range r.URL.Query()["category_ids"] {
		if id != "" {
			params.CategoryIDs = append(params.CategoryIDs, id)
		}
	}

	return params
}

// Index - GET /courses/ со списком курсов под фильтром и пагинацией
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	params := searchParams(r)
	filter := repository.CourseFilter{
		Name:        params.Name,
		CategoryIDs: params.CategoryIDs,
	}

	page, limit := h.pageParams(r)

	total, err := h.CourseRepo.Count(r.Context(), filter)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	totalPages := (total + limit - 1) / limit
	// первая страница пустой выборки отдаётся пустым списком, дальше - 404
	if page > 1 && page > totalPages {
		WriteError(w, "Страница не найдена", http.StatusNotFound)
		return
	}

	courses, err := h.CourseRepo.List(r.Context(), filter, limit, (page-1)*limit)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	categories, err := h.CategoryRepo.List(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := CoursesIndexResponse{
		Courses:    make([]CourseResponse, 0, len(courses)),
		Categories: categories,
		Pagination: PaginationResponse{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
		SearchParams: params,
	}
	for _, course := range courses {
		response.Courses = append(response.Courses, newCourseResponse(course))
	}

	WriteJSON(w, response, http.StatusOK)
}

// NewCourse - GET /courses/new: данные для формы создания курса
func (h *Handlers) NewCourse(w http.ResponseWriter, r *http.Request) {
	categories, err := h.CategoryRepo.List(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	users, err := h.UserRepo.List(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteJSON(w, CourseFormResponse{
		Course:     models.Course{},
		Categories: categories,
		Users:      users,
	}, http.StatusOK)
}

// CreateCourse - POST /courses/create (multipart: поля курса + background_img)
func (h *Handlers) CreateCourse(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		if err.Error() == "http: request body too large" {
			WriteError(w, fmt.Sprintf("Файл слишком большой (макс. %d MB)",
				h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		} else {
			WriteError(w, "Ошибка при обработке формы", http.StatusBadRequest)
		}
		return
	}

	req := service.CreateCourseRequest{
		Name:       r.FormValue("name"),
		AuthorID:   r.FormValue("author_id"),
		CategoryID: r.FormValue("category_id"),
		ShortDesc:  r.FormValue("short_desc"),
		FullDesc:   r.FormValue("full_desc"),
	}

	var uploaded *service.UploadedFile

	file, header, err := r.FormFile("background_img")
	if err == nil && header.Filename != "" {
		defer file.Close()

		allowedTypes := map[string]bool{
			"image/jpeg": true,
			"image/jpg":  true,
			"image/png":  true,
			"image/gif":  true,
			"image/webp": true,
		}

		contentType := header.Header.Get("Content-Type")
		if !allowedTypes[contentType] {
			WriteError(w, "Неподдерживаемый тип файла. Разрешены: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
			return
		}

		uploaded = &service.UploadedFile{
			Name:    header.Filename,
			Size:    header.Size,
			Content: file,
		}
	}

	course, err := h.CourseService.CreateCourse(r.Context(), req, uploaded)
	if err != nil {
		if errors.Is(err, repository.ErrCourseInvalid) {
			h.writeCourseFormError(w, r, req, err)
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteRedirect(w, "/courses/", fmt.Sprintf("Курс %s был успешно добавлен!", course.Name), "success")
}

// writeCourseFormError возвращает форму с введёнными значениями для исправления
func (h *Handlers) writeCourseFormError(w http.ResponseWriter, r *http.Request, req service.CreateCourseRequest, cause error) {
	categories, _ := h.CategoryRepo.List(r.Context())
	users, _ := h.UserRepo.List(r.Context())

	WriteJSON(w, CourseFormResponse{
		Error: fmt.Sprintf("Возникла ошибка при записи данных в БД. Проверьте корректность введённых данных. (%v)", cause),
		Course: models.Course{
			AuthorID:   req.AuthorID,
			Name:       req.Name,
			CategoryID: req.CategoryID,
			ShortDesc:  req.ShortDesc,
			FullDesc:   req.FullDesc,
		},
		Categories: categories,
		Users:      users,
	}, http.StatusUnprocessableEntity)
}

// ShowCourse - GET /courses/{course_id}: курс, 5 последних отзывов и отзыв пользователя
func (h *Handlers) ShowCourse(w http.ResponseWriter, r *http.Request) {
	courseID := mux.Vars(r)["course_id"]

	course, err := h.CourseRepo.GetByID(r.Context(), courseID)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			WriteError(w, "Курс не найден", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	var backgroundImageURL string
	if course.BackgroundImageID != nil {
		image, err := h.ImageRepo.GetByID(r.Context(), *course.BackgroundImageID)
		if err != nil {
			WriteError(w, err.Error(), http.StatusInternalServerError)
			return
		}
		backgroundImageURL = image.ImageURL
	}

	reviews, err := h.ReviewRepo.LatestByCourse(r.Context(), courseID, 5)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var userReview *models.Review
	if userID, ok := middleware.UserID(r.Context()); ok {
		userReview, err = h.ReviewRepo.GetByCourseAndUser(r.Context(), courseID, userID)
		if err != nil {
			WriteError(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	WriteJSON(w, CourseShowResponse{
		Course:             newCourseResponse(*course),
		BackgroundImageURL: backgroundImageURL,
		Reviews:            reviews,
		UserReview:         userReview,
	}, http.StatusOK)
}
