package models

import "time"

type Post struct {
	ID      int    `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"size:200;not null" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`
	UserID  int    `gorm:"not null;index" json:"user_id"`
	GenreID int    `gorm:"not null;index" json:"genre_id"`
	// Reserved counter: persisted and returned, but no endpoint
	// increments it yet.
	Views     int       `gorm:"not null;default:0" json:"views"`
	CreatedAt time.Time `json:"created_at"`
	// NULL until the first update; GORM's auto-touch is disabled so
	// creation leaves it unset.
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
	Author    User       `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"author"`
	Genre     PostGenre  `gorm:"foreignKey:GenreID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"genre"`
}

type CreatePostRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=200"`
	Content string `json:"content" binding:"required,min=1"`
	UserID  int    `json:"user_id" binding:"required"`
	GenreID int    `json:"genre_id" binding:"required"`
}

// UpdatePostRequest carries a partial update: nil fields were not
// supplied and must not be touched.
type UpdatePostRequest struct {
	Title   *string `json:"title" binding:"omitempty,min=1,max=200"`
	Content *string `json:"content" binding:"omitempty,min=1"`
	GenreID *int    `json:"genre_id" binding:"omitempty"`
}

type PostResponse struct {
	ID        int           `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Views     int           `json:"views"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt *time.Time    `json:"updated_at"`
	Author    UserResponse  `json:"author"`
	Genre     GenreResponse `json:"genre"`
}

func NewPostResponse(p Post) PostResponse {
	return PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Views:     p.Views,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Author:    NewUserResponse(p.Author),
		Genre:     NewGenreResponse(p.Genre),
	}
}

type PostListResponse struct {
	Posts []PostResponse `json:"posts"`
	Total int64          `json:"total"`
}
