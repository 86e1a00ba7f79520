package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seungmo975/community-board/backend/internal/models"
)

type PostHandler struct {
	db           *gorm.DB
	defaultLimit int
}

func NewPostHandler(db *gorm.DB, defaultLimit int) *PostHandler {
	return &PostHandler{db: db, defaultLimit: defaultLimit}
}

// GetPosts lists posts newest-first with the author and genre embedded.
// Preload fetches each association with one batched IN query over the
// current page, never a follow-up query per row. The total counts all
// posts regardless of pagination.
func (h *PostHandler) GetPosts(c *gin.Context) {
	skip, err := nonNegativeQuery(c, "skip", 0)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "skip은 0 이상의 정수여야 합니다."})
		return
	}
	limit, err := nonNegativeQuery(c, "limit", h.defaultLimit)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "limit은 0 이상의 정수여야 합니다."})
		return
	}

	var total int64
	if err := h.db.Model(&models.Post{}).Count(&total).Error; err != nil {
		writeStorageError(c, err)
		return
	}

	var posts []models.Post
	err = h.db.Preload("Author").Preload("Genre").
		Order("id desc").
		Offset(skip).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		writeStorageError(c, err)
		return
	}

	responses := make([]models.PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, models.NewPostResponse(post))
	}

	c.JSON(http.StatusOK, models.PostListResponse{Posts: responses, Total: total})
}

// GetPost returns a single post by ID
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "유효하지 않은 게시물 ID입니다."})
		return
	}

	var post models.Post
	err = h.db.Preload("Author").Preload("Genre").First(&post, postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "게시물을 찾을 수 없습니다."})
			return
		}
		writeStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewPostResponse(post))
}

// CreatePost inserts a post and returns it with the assigned id,
// timestamps and embedded author/genre. Whether user_id and genre_id
// reference existing rows is left to the foreign-key constraints.
func (h *PostHandler) CreatePost(c *gin.Context) {
	var input models.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	post := models.Post{
		Title:   input.Title,
		Content: input.Content,
		UserID:  input.UserID,
		GenreID: input.GenreID,
	}

	if err := h.db.Create(&post).Error; err != nil {
		writeStorageError(c, err)
		return
	}

	if err := h.db.Preload("Author").Preload("Genre").First(&post, post.ID).Error; err != nil {
		writeStorageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewPostResponse(post))
}

// UpdatePost applies a partial update: only fields present in the
// request are merged over the stored row, and updated_at is set.
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var input models.UpdatePostRequest
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

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Content != nil {
		updates["content"] = *input.Content
	}
	if input.GenreID != nil {
		updates["genre_id"] = *input.GenreID
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now().UTC()
		if err := h.db.Model(&post).Updates(updates).Error; err != nil {
			writeStorageError(c, err)
			return
		}
	}

	if err := h.db.Preload("Author").Preload("Genre").First(&post, post.ID).Error; err != nil {
		writeStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewPostResponse(post))
}

func pathID(c *gin.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}

func nonNegativeQuery(c *gin.Context, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, errors.New("invalid " + key)
	}
	return v, nil
}
