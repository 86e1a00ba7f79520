package database

import (
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	"github.com/seungmo975/community-board/backend/internal/models"
)

// Seed inserts the baseline demo rows, ordered users → genres → posts
// (posts depend on the other two). Each step is guarded by a row count
// so re-running is a no-op once data exists. The whole routine runs in
// one transaction; a failure rolls everything back and the caller
// continues startup without seed data.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedUsers(tx); err != nil {
			return fmt.Errorf("seeding users: %w", err)
		}
		if err := seedGenres(tx); err != nil {
			return fmt.Errorf("seeding genres: %w", err)
		}
		if err := seedPosts(tx); err != nil {
			return fmt.Errorf("seeding posts: %w", err)
		}
		return nil
	})
}

func seedUsers(tx *gorm.DB) error {
	var count int64
	if err := tx.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Users already seeded (%d rows), skipping", count)
		return nil
	}

	users := []models.User{
		{Email: "mz@naver.com", Nickname: "mz", Password: "mz"},
		{Email: "tjdgus01@naver.com", Nickname: "쵸쵸_님", Password: "chocho"},
		{Email: "seungmo975@naver.com", Nickname: "손승모", Password: "tmdah5589@"},
	}

	if err := tx.Create(&users).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d users", len(users))
	return nil
}

func seedGenres(tx *gorm.DB) error {
	var count int64
	if err := tx.Model(&models.PostGenre{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Genres already seeded (%d rows), skipping", count)
		return nil
	}

	genres := []models.PostGenre{
		{Name: "일상"},
		{Name: "기술"},
		{Name: "여행"},
		{Name: "음악"},
		{Name: "스포츠"},
		{Name: "요리"},
	}

	if err := tx.Create(&genres).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d genres", len(genres))
	return nil
}

// seedPosts is opt-in: demo posts change what GET /posts returns, so a
// fresh database stays empty unless SEED_DEMO_POSTS is set.
func seedPosts(tx *gorm.DB) error {
	if os.Getenv("SEED_DEMO_POSTS") != "true" {
		return nil
	}

	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Posts already seeded (%d rows), skipping", count)
		return nil
	}

	var author models.User
	if err := tx.Where("email = ?", "mz@naver.com").First(&author).Error; err != nil {
		return err
	}
	var genre models.PostGenre
	if err := tx.Where("name = ?", "기술").First(&genre).Error; err != nil {
		return err
	}

	posts := []models.Post{
		{Title: "첫 번째 게시물", Content: "커뮤니티 게시판에 오신 것을 환영합니다!", UserID: author.ID, GenreID: genre.ID},
		{Title: "FastAPI에서 Go로", Content: "백엔드를 Go로 다시 작성했습니다.", UserID: author.ID, GenreID: genre.ID},
	}

	if err := tx.Create(&posts).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d posts", len(posts))
	return nil
}
