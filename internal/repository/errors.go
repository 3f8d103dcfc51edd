package repository

import (
	"errors"
	"strings"
)

var (
	ErrCourseNotFound = errors.New("курс не найден")
	ErrReviewExists   = errors.New("отзыв уже оставлен")
	ErrCourseInvalid  = errors.New("некорректные данные курса")
	ErrUserNotFound   = errors.New("пользователь не найден")
)

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key value")
}

// isIntegrityViolation ловит нарушения ограничений БД: FK, CHECK, NOT NULL, UNIQUE
func isIntegrityViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "violates") ||
		strings.Contains(err.Error(), "null value in column")
}
