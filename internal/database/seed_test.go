package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"

	"github.com/seungmo975/community-board/backend/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("board_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Skipf("could not start postgres container: %v", err)
	}
	t.Cleanup(func() {
		_ = testcontainers.TerminateContainer(container)
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	svc, err := New(dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = svc.Close()
	})

	return svc.GetDB()
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func TestSeedIsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Seed(db))

	assert.EqualValues(t, 3, countRows(t, db, &models.User{}))
	assert.EqualValues(t, 6, countRows(t, db, &models.PostGenre{}))
	assert.EqualValues(t, 0, countRows(t, db, &models.Post{}))

	// Second invocation must be a no-op, never a duplicate insert.
	require.NoError(t, Seed(db))

	assert.EqualValues(t, 3, countRows(t, db, &models.User{}))
	assert.EqualValues(t, 6, countRows(t, db, &models.PostGenre{}))
	assert.EqualValues(t, 0, countRows(t, db, &models.Post{}))
}

func TestSeedDemoPostsOptIn(t *testing.T) {
	db := setupTestDB(t)
	t.Setenv("SEED_DEMO_POSTS", "true")

	require.NoError(t, Seed(db))

	posts := countRows(t, db, &models.Post{})
	assert.Greater(t, posts, int64(0))

	require.NoError(t, Seed(db))
	assert.EqualValues(t, posts, countRows(t, db, &models.Post{}))
}

func TestDuplicateUserRejectedByStorage(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Seed(db))

	// Same email as a seeded user; the unique constraint, not any
	// application pre-check, must reject it.
	dup := models.User{Email: "mz@naver.com", Nickname: "someone-else", Password: "pw"}
	err := db.Create(&dup).Error
	require.Error(t, err)

	assert.EqualValues(t, 3, countRows(t, db, &models.User{}))
}

func TestPostForeignKeysEnforcedByStorage(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Seed(db))

	orphan := models.Post{Title: "고아 게시물", Content: "내용", UserID: 9999, GenreID: 9999}
	err := db.Create(&orphan).Error
	require.Error(t, err)

	assert.EqualValues(t, 0, countRows(t, db, &models.Post{}))
}

func TestHealthReportsUp(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("board_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Skipf("could not start postgres container: %v", err)
	}
	t.Cleanup(func() {
		_ = testcontainers.TerminateContainer(container)
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	svc, err := New(dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = svc.Close()
	})

	health := svc.Health()
	assert.Equal(t, "up", health["status"])
}
