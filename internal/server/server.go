package server

import (
	"main/internal/auth"
	"main/internal/config"
	"main/internal/database"
	"main/internal/handler"
	"main/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	*gin.Engine
}

func New(cfg *config.Config, users database.UserStore, reviews database.ReviewStore, google auth.GoogleAuthenticator) *Server {
	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(cfg),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	h := handler.New(users, reviews, cfg, google)

	r.GET("/", h.Home)
	r.GET("/health", h.Health)

	api := r.Group("/api")

	a := api.Group("/auth")
	a.POST("/signup", h.Signup)
	a.POST("/login", h.Login)
	a.GET("/google", h.GoogleAuth)
	a.GET("/google/callback", h.GoogleCallback)
	a.GET("/me", middleware.Auth(cfg.JWTSecret), h.Me)

	rev := api.Group("/reviews")
	rev.GET("", h.ListReviews)
	rev.GET("/stats", h.ReviewStats)
	rev.POST("", h.CreateReview)
	rev.DELETE("/:id", h.DeleteReview)
	rev.PUT("/user/:user_id", h.UpdateUserReview)

	return &Server{r}
}

func allowedOrigins(cfg *config.Config) []string {
	origins := []string{"http://localhost:5173", "http://localhost:3000"}
	for _, o := range origins {
		if o == cfg.FrontendURL {
			return origins
		}
	}
	return append(origins, cfg.FrontendURL)
}
