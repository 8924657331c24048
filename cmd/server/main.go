package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/kaitoh/sns-api/internal/config"
	"github.com/kaitoh/sns-api/internal/constants"
	"github.com/kaitoh/sns-api/internal/database"
	"github.com/kaitoh/sns-api/internal/handlers"
	"github.com/kaitoh/sns-api/internal/middleware"
	"github.com/kaitoh/sns-api/internal/repository"
	"github.com/kaitoh/sns-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	profileService := services.NewProfileService(profileRepo)
	postService := services.NewPostService(postRepo, userRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService, cfg.MediaDir)
	postHandler := handlers.NewPostHandler(postService, cfg.MediaDir)
	commentHandler := handlers.NewCommentHandler(commentService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "SNS API is running",
		})
	})

	// Public routes: registration must be reachable without a session
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)

	// Everything else requires an authenticated caller
	authed := r.Group("/")
	authed.Use(middleware.RequireAuth())
	{
		authed.GET("/me", authHandler.Me)
		authed.GET("/myprofile", profileHandler.ListMyProfiles)

		profile := authed.Group("/profile")
		{
			profile.GET("", profileHandler.ListProfiles)
			profile.POST("", profileHandler.CreateProfile)
			profile.GET("/:id", profileHandler.GetProfile)
			profile.PUT("/:id", profileHandler.UpdateProfile)
			profile.PATCH("/:id", profileHandler.UpdateProfile)
			profile.DELETE("/:id", profileHandler.DeleteProfile)
			profile.POST("/:id/avatar", profileHandler.UploadAvatar)
		}

		post := authed.Group("/post")
		{
			post.GET("", postHandler.ListPosts)
			post.POST("", postHandler.CreatePost)
			post.GET("/:id", postHandler.GetPost)
			post.PUT("/:id", postHandler.UpdatePost)
			post.PATCH("/:id", postHandler.UpdatePost)
			post.DELETE("/:id", postHandler.DeletePost)
			post.POST("/:id/image", postHandler.UploadImage)
		}

		comment := authed.Group("/comment")
		{
			comment.GET("", commentHandler.ListComments)
			comment.POST("", commentHandler.CreateComment)
			comment.GET("/:id", commentHandler.GetComment)
			comment.PUT("/:id", commentHandler.UpdateComment)
			comment.PATCH("/:id", commentHandler.UpdateComment)
			comment.DELETE("/:id", commentHandler.DeleteComment)
		}
	}

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
