package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"wooders/internal/config"
	"wooders/internal/database"
	"wooders/internal/domain"
	"wooders/internal/mailer"
	"wooders/internal/middleware"
	"wooders/internal/modules/auth"
	"wooders/internal/modules/catalog"
	"wooders/internal/modules/order"
	"wooders/internal/modules/testimonial"
	jwtsvc "wooders/internal/pkg/jwt"
	"wooders/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	if cfg.IsProduction() {
		log.SetFormatter(&log.JSONFormatter{})
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	if err := db.AutoMigrate(&domain.Admin{}, &domain.Order{}, &domain.Testimonial{}); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}

	adminRepo := repository.NewAdminRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.SessionTTL)

	if err := auth.EnsureAdmin(context.Background(), adminRepo, cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName); err != nil {
		log.WithError(err).Fatal("Failed to bootstrap administrator account")
	}

	notifier := mailer.NewBrevo(mailer.Config{
		APIKey:     cfg.BrevoAPIKey,
		AdminEmail: cfg.BrevoAdminEmail,
		FromEmail:  cfg.BrevoFromEmail,
		FromName:   cfg.BrevoFromName,
	})

	authService := auth.NewService(adminRepo, j)
	authHandler := auth.NewHandler(authService, int(cfg.SessionTTL.Seconds()), cfg.IsProduction())

	orderService := order.NewService(orderRepo, notifier)
	orderHandler := order.NewHandler(orderService)

	testimonialService := testimonial.NewService(testimonialRepo)
	testimonialHandler := testimonial.NewHandler(testimonialService)

	catalogService := catalog.NewService(catalog.NewContentfulClient(catalog.ContentfulConfig{
		SpaceID:     cfg.ContentfulSpaceID,
		AccessToken: cfg.ContentfulAccessToken,
	}))
	catalogHandler := catalog.NewHandler(catalogService)

	r := gin.New()
	r.Use(
		gin.Logger(),
		middleware.RequestID(),
		middleware.ErrorLogger(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	root := r.Group("/")
	{
		// public
		authHandler.RegisterPublicRoutes(root)
		orderHandler.RegisterPublicRoutes(root)
		testimonialHandler.RegisterPublicRoutes(root)
		catalogHandler.RegisterPublicRoutes(root)

		// protected (admin session cookie)
		protected := root.Group("/")
		protected.Use(middleware.AdminAuth(j, adminRepo))
		{
			authHandler.RegisterProtectedRoutes(protected)
			orderHandler.RegisterProtectedRoutes(protected)
			testimonialHandler.RegisterProtectedRoutes(protected)
		}
	}

	log.WithField("port", cfg.Port).Info("Starting Wooders API")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}
