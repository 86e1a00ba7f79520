package models

import "time"

type Comment struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	PostID    int       `gorm:"not null;index" json:"post_id"`
	UserID    int       `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	Author    User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"author"`
	Post      Post      `gorm:"foreignKey:PostID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1"`
	UserID  int    `json:"user_id" binding:"required"`
}

type CommentResponse struct {
	ID        int          `json:"id"`
	Content   string       `json:"content"`
	PostID    int          `json:"post_id"`
	CreatedAt time.Time    `json:"created_at"`
	Author    UserResponse `json:"author"`
}

func NewCommentResponse(c Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		PostID:    c.PostID,
		CreatedAt: c.CreatedAt,
		Author:    NewUserResponse(c.Author),
	}
}

type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
	Total    int64             `json:"total"`
}
