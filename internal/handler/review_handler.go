package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"courseHub/internal/middleware"
	"courseHub/internal/models"
	"courseHub/internal/repository"
	"courseHub/internal/service"
)

type ReviewsResponse struct {
	Course     CourseResponse     `json:"course"`
	Reviews    []models.Review    `json:"reviews"`
	Pagination PaginationResponse `json:"pagination"`
	Sort       string             `json:"sort"`
	UserReview *models.Review     `json:"userReview"`
}

// ListReviews - GET /courses/{course_id}/reviews с сортировкой и пагинацией
func (h *Handlers) ListReviews(w http.ResponseWriter, r *http.Request) {
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

	sort := repository.ParseReviewSort(r.URL.Query().Get("sort"))
	page, limit := h.pageParams(r)

	total, err := h.ReviewRepo.CountByCourse(r.Context(), courseID)
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

	reviews, err := h.ReviewRepo.ListByCourse(r.Context(), courseID, sort, limit, (page-1)*limit)
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

	WriteJSON(w, ReviewsResponse{
		Course:  newCourseResponse(*course),
		Reviews: reviews,
		Pagination: PaginationResponse{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
		Sort:       string(sort),
		UserReview: userReview,
	}, http.StatusOK)
}

// CreateReview - POST /courses/{course_id}/reviews/create (форма: rating, text)
func (h *Handlers) CreateReview(w http.ResponseWriter, r *http.Request) {
	courseID := mux.Vars(r)["course_id"]

	userID, ok := middleware.UserID(r.Context())
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	if err := r.ParseForm(); err != nil {
		WriteError(w, "Ошибка при обработке формы", http.StatusBadRequest)
		return
	}

	// рейтинг по умолчанию 5, как в форме
	rating := 5
	if ratingStr := r.FormValue("rating"); ratingStr != "" {
		var err error
		rating, err = strconv.Atoi(ratingStr)
		if err != nil {
			WriteError(w, "Неверное значение рейтинга", http.StatusBadRequest)
			return
		}
	}

	text := r.FormValue("text")

	_, err := h.ReviewService.CreateReview(r.Context(), courseID, userID, rating, text)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrCourseNotFound):
			WriteError(w, "Курс не найден", http.StatusNotFound)
		case errors.Is(err, repository.ErrReviewExists):
			WriteRedirect(w, "/courses/"+courseID, "Вы уже оставили отзыв к этому курсу.", "warning")
		case errors.Is(err, service.ErrInvalidRating):
			WriteError(w, "Рейтинг должен быть от 1 до 5", http.StatusBadRequest)
		default:
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteRedirect(w, "/courses/"+courseID, "Ваш отзыв был успешно добавлен!", "success")
}
