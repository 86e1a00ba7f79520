package server

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/seungmo975/community-board/backend/internal/database"
	"github.com/seungmo975/community-board/backend/internal/handlers"
)

const defaultPageLimit = 20

type Server struct {
	db      database.Service
	handler *handlers.Handler
}

// New wires the handlers to the database service.
func New(db database.Service) *Server {
	return &Server{
		db:      db,
		handler: handlers.NewHandler(db.GetDB(), pageLimitFromEnv()),
	}
}

// NewHTTPServer creates the configured *http.Server.
func NewHTTPServer(db database.Service) *http.Server {
	s := New(db)
	router := s.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000" // local dev fallback
	}

	return &http.Server{
		Addr:         "0.0.0.0:" + port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()

	// Only the configured development origins may call this API, with
	// every method and header allowed, credentials included.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "커뮤니티 게시판 API 서버가 실행 중입니다!"})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.db.Health())
	})

	r.POST("/login", s.handler.Auth.Login)

	r.GET("/posts", s.handler.Post.GetPosts)
	r.POST("/posts", s.handler.Post.CreatePost)
	r.GET("/posts/:id", s.handler.Post.GetPost)
	r.PATCH("/posts/:id", s.handler.Post.UpdatePost)

	r.GET("/posts/:id/comments", s.handler.Comment.GetComments)
	r.POST("/posts/:id/comments", s.handler.Comment.CreateComment)

	r.GET("/genres", s.handler.Genre.GetGenres)

	return r
}

func allowedOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
		}
	}

	origins := strings.Split(raw, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return origins
}

func pageLimitFromEnv() int {
	raw := os.Getenv("PAGE_LIMIT")
	if raw == "" {
		return defaultPageLimit
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return defaultPageLimit
	}
	return v
}
