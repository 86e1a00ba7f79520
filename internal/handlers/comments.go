package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seungmo975/community-board/backend/internal/models"
)

type CommentHandler struct {
	db *gorm.DB
}

func NewCommentHandler(db *gorm.DB) *CommentHandler {
	return &CommentHandler{db: db}
}

// GetComments returns a post's comments newest-first with the commenter
// embedded. An unknown post id yields an empty list, not a 404.
func (h *CommentHandler) GetComments(c *gin.Context) {
	postID, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "유효하지 않은 게시물 ID입니다."})
		return
	}

	var comments []models.Comment
	err = h.db.Preload("Author").
		Where("post_id = ?", postID).
		Order("id desc").
		Find(&comments).Error
	if err != nil {
		writeStorageError(c, err)
		return
	}

	responses := make([]models.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, models.NewCommentResponse(comment))
	}

	c.JSON(http.StatusOK, models.CommentListResponse{Comments: responses, Total: int64(len(comments))})
}

// CreateComment creates a new comment on a post.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var input models.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	postID, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "유효하지 않은 게시물 ID입니다."})
		return
	}

	var post models.Post
	if err := h.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "게시물을 찾을 수 없습니다."})
			return
		}
		writeStorageError(c, err)
		return
	}

	comment := models.Comment{
		Content: input.Content,
		PostID:  post.ID,
		UserID:  input.UserID,
	}

	if err := h.db.Create(&comment).Error; err != nil {
		writeStorageError(c, err)
		return
	}

	if err := h.db.Preload("Author").First(&comment, comment.ID).Error; err != nil {
		writeStorageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewCommentResponse(comment))
}
