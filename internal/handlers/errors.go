package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgFKViolation     = "23503"
	pgUniqueViolation = "23505"
)

// writeStorageError maps a storage-layer failure onto the response.
// Constraint violations are surfaced by the engine and translated here;
// they are never pre-checked by handlers. Anything else is a bare 500.
func writeStorageError(c *gin.Context, err error) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgFKViolation:
			c.JSON(http.StatusBadRequest, gin.H{"detail": "참조하는 행이 존재하지 않습니다."})
			return
		case pgUniqueViolation:
			c.JSON(http.StatusConflict, gin.H{"detail": "이미 존재하는 값입니다."})
			return
		}
	}

	c.JSON(http.StatusInternalServerError, gin.H{"detail": "서버 내부 오류가 발생했습니다."})
}
