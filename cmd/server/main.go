package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"devfolio/adapters/event"
	httpAdapter "devfolio/adapters/http"
	"devfolio/adapters/media_storage"
	"devfolio/adapters/persistence"
	"devfolio/internal/application/service"
	authUC "devfolio/internal/application/usecase/auth"
	certificationUC "devfolio/internal/application/usecase/certification"
	educationUC "devfolio/internal/application/usecase/education"
	experienceUC "devfolio/internal/application/usecase/experience"
	interestUC "devfolio/internal/application/usecase/interest"
	portfolioUC "devfolio/internal/application/usecase/portfolio"
	profileUC "devfolio/internal/application/usecase/profile"
	projectUC "devfolio/internal/application/usecase/project"
	skillUC "devfolio/internal/application/usecase/skill"
	uploadUC "devfolio/internal/application/usecase/upload"
	"devfolio/internal/config"
	"devfolio/pkg/auth"
	"devfolio/pkg/logger"
	"devfolio/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting devfolio API server...")

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "devfolio-api")
	if err != nil {
		appLogger.Fatal("Cannot initialize tracing", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			appLogger.Error("Tracer shutdown failed", err)
		}
	}()

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	educationRepo := persistence.NewPostgresEducationRepo(dbPool, appLogger)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, appLogger)
	certificationRepo := persistence.NewPostgresCertificationRepo(dbPool, appLogger)
	interestRepo := persistence.NewPostgresInterestRepo(dbPool, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	viewCache := persistence.NewRedisViewCache(redisClient, appLogger)
	denylist := persistence.NewRedisTokenDenylist(redisClient)
	refresher := service.NewViewRefresher(viewCache, kafkaClient, appLogger)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot initialize uploader", err)
	}

	// Use cases
	registerUseCase := authUC.NewRegisterUseCase(userRepo, profileRepo, appLogger)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	logoutUseCase := authUC.NewLogoutUseCase(denylist)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, refresher)
	educationUseCase := educationUC.NewEducationUseCase(educationRepo, refresher, appLogger)
	experienceUseCase := experienceUC.NewExperienceUseCase(experienceRepo, refresher, appLogger)
	projectUseCase := projectUC.NewProjectUseCase(projectRepo, refresher, appLogger)
	skillUseCase := skillUC.NewSkillUseCase(skillRepo, refresher, appLogger)
	certificationUseCase := certificationUC.NewCertificationUseCase(certificationRepo, refresher, appLogger)
	interestUseCase := interestUC.NewInterestUseCase(interestRepo, refresher, appLogger)
	uploadImageUseCase := uploadUC.NewUploadImageUseCase(uploader, appLogger)
	aggregateUseCase := portfolioUC.NewAggregateUseCase(
		profileRepo,
		educationRepo,
		experienceRepo,
		projectRepo,
		skillRepo,
		certificationRepo,
		interestRepo,
		viewCache,
		appLogger,
	)

	// HTTP handlers
	authHandler := httpAdapter.NewAuthHandler(registerUseCase, loginUseCase, logoutUseCase)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase, appLogger)
	portfolioHandler := httpAdapter.NewPortfolioHandler(aggregateUseCase, appLogger)
	educationHandler := httpAdapter.NewEducationHandler(educationUseCase, appLogger)
	experienceHandler := httpAdapter.NewExperienceHandler(experienceUseCase, appLogger)
	projectHandler := httpAdapter.NewProjectHandler(projectUseCase, appLogger)
	skillHandler := httpAdapter.NewSkillHandler(skillUseCase, appLogger)
	certificationHandler := httpAdapter.NewCertificationHandler(certificationUseCase, appLogger)
	interestHandler := httpAdapter.NewInterestHandler(interestUseCase, appLogger)
	mediaHandler := httpAdapter.NewMediaHandler(uploadImageUseCase, appLogger)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc, denylist, appLogger)
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(errorMiddleware)
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		// The public page: one payload, no auth.
		api.GET("/portfolio", portfolioHandler.GetPublicPortfolio)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.Register)
			authGroup.POST("/signin", authHandler.Login)
			authGroup.POST("/signout", authMiddleware, authHandler.Logout)
		}

		dashboard := api.Group("/dashboard")
		dashboard.Use(authMiddleware)
		{
			dashboard.GET("/portfolio", portfolioHandler.GetDashboardOverview)

			dashboard.GET("/profile", profileHandler.GetProfile)
			dashboard.PUT("/profile", profileHandler.UpdateProfile)

			education := dashboard.Group("/education")
			{
				education.POST("", educationHandler.Create)
				education.GET("", educationHandler.List)
				education.GET("/:id", educationHandler.Get)
				education.PUT("/:id", educationHandler.Update)
				education.DELETE("/:id", educationHandler.Delete)
			}

			experiences := dashboard.Group("/experiences")
			{
				experiences.POST("", experienceHandler.Create)
				experiences.GET("", experienceHandler.List)
				experiences.GET("/:id", experienceHandler.Get)
				experiences.PUT("/:id", experienceHandler.Update)
				experiences.DELETE("/:id", experienceHandler.Delete)
			}

			projects := dashboard.Group("/projects")
			{
				projects.POST("", projectHandler.Create)
				projects.GET("", projectHandler.List)
				projects.GET("/:id", projectHandler.Get)
				projects.PUT("/:id", projectHandler.Update)
				projects.DELETE("/:id", projectHandler.Delete)
			}

			skills := dashboard.Group("/skills")
			{
				skills.POST("", skillHandler.Create)
				skills.GET("", skillHandler.List)
				skills.GET("/:id", skillHandler.Get)
				skills.PUT("/:id", skillHandler.Update)
				skills.DELETE("/:id", skillHandler.Delete)
			}

			certifications := dashboard.Group("/certifications")
			{
				certifications.POST("", certificationHandler.Create)
				certifications.GET("", certificationHandler.List)
				certifications.GET("/:id", certificationHandler.Get)
				certifications.PUT("/:id", certificationHandler.Update)
				certifications.DELETE("/:id", certificationHandler.Delete)
			}

			interests := dashboard.Group("/interests")
			{
				interests.POST("", interestHandler.Create)
				interests.GET("", interestHandler.List)
				interests.GET("/:id", interestHandler.Get)
				interests.PUT("/:id", interestHandler.Update)
				interests.DELETE("/:id", interestHandler.Delete)
			}

			dashboard.POST("/uploads", mediaHandler.UploadImage)
		}
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
