package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seungmo975/community-board/backend/internal/models"
)

type GenreHandler struct {
	db *gorm.DB
}

func NewGenreHandler(db *gorm.DB) *GenreHandler {
	return &GenreHandler{db: db}
}

// GetGenres returns every genre ordered by id ascending.
func (h *GenreHandler) GetGenres(c *gin.Context) {
	var genres []models.PostGenre
	if err := h.db.Order("id asc").Find(&genres).Error; err != nil {
		writeStorageError(c, err)
		return
	}

	responses := make([]models.GenreResponse, 0, len(genres))
	for _, genre := range genres {
		responses = append(responses, models.NewGenreResponse(genre))
	}

	c.JSON(http.StatusOK, models.GenreListResponse{Genres: responses, Total: int64(len(genres))})
}
