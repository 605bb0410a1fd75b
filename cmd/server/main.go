package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/dev-network/adapters/event"
	githubAdapter "github.com/khoahotran/dev-network/adapters/github"
	httpAdapter "github.com/khoahotran/dev-network/adapters/http"
	"github.com/khoahotran/dev-network/adapters/persistence"
	accountUC "github.com/khoahotran/dev-network/internal/application/usecase/account"
	authUC "github.com/khoahotran/dev-network/internal/application/usecase/auth"
	postUC "github.com/khoahotran/dev-network/internal/application/usecase/post"
	profileUC "github.com/khoahotran/dev-network/internal/application/usecase/profile"
	"github.com/khoahotran/dev-network/internal/config"
	"github.com/khoahotran/dev-network/pkg/auth"
	"github.com/khoahotran/dev-network/pkg/logger"
	"github.com/khoahotran/dev-network/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	if cfg.Otel.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "dev-network-api")
		if err != nil {
			appLogger.Fatal("cannot initialize tracer", err)
		}
		defer tp.Shutdown(context.Background())
	}

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	postRepo := persistence.NewPostgresPostRepo(dbPool)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	githubClient := githubAdapter.NewClient(cfg, redisClient, appLogger)

	// Use cases
	registerUseCase := authUC.NewRegisterUseCase(userRepo, jwtSvc, appLogger)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	currentUserUseCase := authUC.NewCurrentUserUseCase(userRepo)

	upsertProfileUseCase := profileUC.NewUpsertProfileUseCase(profileRepo, kafkaClient, appLogger)
	getProfileUseCase := profileUC.NewGetProfileUseCase(profileRepo)
	listProfilesUseCase := profileUC.NewListProfilesUseCase(profileRepo)
	addExperienceUseCase := profileUC.NewAddExperienceUseCase(profileRepo, kafkaClient, appLogger)
	removeExperienceUseCase := profileUC.NewRemoveExperienceUseCase(profileRepo, kafkaClient, appLogger)
	addEducationUseCase := profileUC.NewAddEducationUseCase(profileRepo, kafkaClient, appLogger)
	removeEducationUseCase := profileUC.NewRemoveEducationUseCase(profileRepo, kafkaClient, appLogger)
	githubReposUseCase := profileUC.NewGithubReposUseCase(githubClient)
	deleteAccountUseCase := accountUC.NewDeleteAccountUseCase(postRepo, profileRepo, userRepo, kafkaClient, appLogger)

	createPostUseCase := postUC.NewCreatePostUseCase(postRepo, userRepo)
	listPostsUseCase := postUC.NewListPostsUseCase(postRepo)
	getPostUseCase := postUC.NewGetPostUseCase(postRepo)
	deletePostUseCase := postUC.NewDeletePostUseCase(postRepo)

	// HTTP handlers
	authHandler := httpAdapter.NewAuthHandler(registerUseCase, loginUseCase, currentUserUseCase)
	profileHandler := httpAdapter.NewProfileHandler(
		upsertProfileUseCase,
		getProfileUseCase,
		listProfilesUseCase,
		addExperienceUseCase,
		removeExperienceUseCase,
		addEducationUseCase,
		removeEducationUseCase,
		githubReposUseCase,
		deleteAccountUseCase,
	)
	postHandler := httpAdapter.NewPostHandler(createPostUseCase, listPostsUseCase, getPostUseCase, deletePostUseCase)

	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)

	router := gin.Default()
	router.Use(httpAdapter.ErrorHandler(appLogger))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		api.POST("/users", authHandler.Register)
		api.POST("/auth", authHandler.Login)
		api.GET("/auth", authMiddleware, authHandler.CurrentUser)

		profileRoutes := api.Group("/profile")
		{
			profileRoutes.GET("", profileHandler.ListProfiles)
			profileRoutes.GET("/user/:user_id", profileHandler.GetProfileByUser)
			profileRoutes.GET("/github/:username", profileHandler.GithubRepos)

			profileRoutes.GET("/me", authMiddleware, profileHandler.GetMyProfile)
			profileRoutes.POST("", authMiddleware, profileHandler.UpsertProfile)
			profileRoutes.DELETE("", authMiddleware, profileHandler.DeleteAccount)
			profileRoutes.PUT("/experience", authMiddleware, profileHandler.AddExperience)
			profileRoutes.DELETE("/experience/:exp_id", authMiddleware, profileHandler.RemoveExperience)
			profileRoutes.PUT("/education", authMiddleware, profileHandler.AddEducation)
			profileRoutes.DELETE("/education/:edu_id", authMiddleware, profileHandler.RemoveEducation)
		}

		postRoutes := api.Group("/posts")
		postRoutes.Use(authMiddleware)
		{
			postRoutes.POST("", postHandler.CreatePost)
			postRoutes.GET("", postHandler.ListPosts)
			postRoutes.GET("/:id", postHandler.GetPost)
			postRoutes.DELETE("/:id", postHandler.DeletePost)
		}
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}
