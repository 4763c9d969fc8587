package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Toura-Alpha/dev-event-plateform/config"
	"github.com/Toura-Alpha/dev-event-plateform/internal/adapters/auth"
	"github.com/Toura-Alpha/dev-event-plateform/internal/adapters/email"
	delivery "github.com/Toura-Alpha/dev-event-plateform/internal/delivery/http"
	"github.com/Toura-Alpha/dev-event-plateform/internal/delivery/http/controllers"
	"github.com/Toura-Alpha/dev-event-plateform/internal/delivery/http/middleware"
	"github.com/Toura-Alpha/dev-event-plateform/internal/repository/postgres"
	"github.com/Toura-Alpha/dev-event-plateform/internal/services"
)

const serviceTimeout = 10 * time.Second

// @title dev-event-plateform API
// @version 1.0
// @description Event listing and booking API.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := config.NewLogger(cfg.Environment)

	// The connection is resolved once here and the handle passed down
	// by reference; the Connector dedupes concurrent first-time dials.
	connector := postgres.NewConnector(cfg.DBUrl, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := connector.DB(ctx)
	cancel()
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	store := postgres.NewStore(db)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretKey,
		},
	})
	if err != nil {
		log.Fatalf("mailer: %v", err)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	issuer, verifier := auth.NewJWT(cfg.JWTSecret)
	hasher := auth.NewBcryptHasher(10)

	eventService := services.NewEventService(store.Events, serviceTimeout)
	bookingService := services.NewBookingService(store.Bookings, store.Events, emailService, logger, serviceTimeout)
	authService := services.NewAuthService(store.Users, hasher, issuer, cfg.JWTExpiry)

	mux := delivery.NewRouter(
		controllers.NewEventController(logger, eventService, bookingService),
		controllers.NewBookingController(logger, bookingService),
		controllers.NewAuthController(logger, authService),
		verifier,
	)

	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
