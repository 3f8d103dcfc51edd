package models

import (
	"time"
)

type User struct {
	UserID                 string    `json:"userId" db:"user_id"`
	Name                   string    `json:"name" db:"name"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	Role                   string    `json:"role" db:"role"`
	RefreshToken           string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"-" db:"refresh_token_expiry_time"`
}

type Category struct {
	CategoryID string `json:"categoryId" db:"category_id"`
	Name       string `json:"name" db:"name"`
}

type Course struct {
	CourseID          string    `json:"courseId" db:"course_id"`
	AuthorID          string    `json:"authorId" db:"author_id"`
	Name              string    `json:"name" db:"name"`
	CategoryID        string    `json:"categoryId" db:"category_id"`
	ShortDesc         string    `json:"shortDesc" db:"short_desc"`
	FullDesc          string    `json:"fullDesc" db:"full_desc"`
	BackgroundImageID *string   `json:"backgroundImageId" db:"background_image_id"`
	RatingSum         int       `json:"ratingSum" db:"rating_sum"`
	RatingNum         int       `json:"ratingNum" db:"rating_num"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
}

// AverageRating возвращает средний рейтинг курса, 0 если отзывов нет
func (c *Course) AverageRating() float64 {
	if c.RatingNum == 0 {
		return 0
	}
	return float64(c.RatingSum) / float64(c.RatingNum)
}

type Review struct {
	ReviewID  string    `json:"reviewId" db:"review_id"`
	CourseID  string    `json:"courseId" db:"course_id"`
	UserID    string    `json:"userId" db:"user_id"`
	Rating    int       `json:"rating" db:"rating"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Image struct {
	ImageID    string    `json:"imageId" db:"image_id"`
	ObjectName string    `json:"-" db:"object_name"`
	ImageURL   string    `json:"imageUrl" db:"image_url"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
