package handlers

import (
	"gorm.io/gorm"
)

// Handler combines all handler types
type Handler struct {
	Auth    *AuthHandler
	Post    *PostHandler
	Genre   *GenreHandler
	Comment *CommentHandler
}

// NewHandler creates a unified handler with all sub-handlers.
// defaultLimit is the page size used when GET /posts omits ?limit=.
func NewHandler(db *gorm.DB, defaultLimit int) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(db),
		Post:    NewPostHandler(db, defaultLimit),
		Genre:   NewGenreHandler(db),
		Comment: NewCommentHandler(db),
	}
}
