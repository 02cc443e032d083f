package router

import (
	"time"

	"github.com/feedback-dev/feedback/internal/handlers"
	"github.com/feedback-dev/feedback/internal/middleware"
	"github.com/feedback-dev/feedback/internal/templates"
	"github.com/feedback-dev/feedback/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.SetHTMLTemplate(templates.Must())

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.CurrentUser())

	r.GET("/health", handlers.HealthCheck)

	r.GET("/", handlers.Home)
	r.GET("/register", handlers.ShowRegister)
	r.POST("/register", handlers.HandleRegister)
	r.GET("/login", handlers.ShowLogin)
	r.POST("/login", handlers.HandleLogin)
	r.GET("/logout", handlers.Logout)

	users := r.Group("/users/:username", middleware.RequireOwner(middleware.PathUsername("username")))
	{
		users.GET("", handlers.ShowUser)
		users.POST("/delete", handlers.DeleteUser)
		users.GET("/feedback/add", handlers.ShowAddFeedback)
		users.POST("/feedback/add", handlers.HandleAddFeedback)
	}

	feedback := r.Group("/feedback/:id", middleware.RequireOwner(middleware.FeedbackOwner()))
	{
		feedback.GET("/update", handlers.ShowUpdateFeedback)
		feedback.POST("/update", handlers.HandleUpdateFeedback)
		feedback.POST("/delete", handlers.HandleDeleteFeedback)
	}

	return r
}
