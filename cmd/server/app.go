package main

import (
	"context"
	"fmt"
	"log/slog"

	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/portfolioz/server/internal/api"
	"github.com/portfolioz/server/internal/config"
	"github.com/portfolioz/server/internal/platform/mongo"
	"github.com/portfolioz/server/internal/service/auth"
	"github.com/portfolioz/server/internal/service/icon"
	"github.com/portfolioz/server/internal/service/publish"
)

// application holds the process-wide dependencies: the single long-lived
// store client, the services built on it, and the HTTP handlers.
type application struct {
	config *config.Config
	logger *slog.Logger

	client *mongodriver.Client

	jwtService auth.JWTService
	authorizer *auth.Authorizer

	userHandler        *api.UserHandler
	projectHandler     *api.ProjectHandler
	skillHandler       *api.SkillHandler
	testimonialHandler *api.TestimonialHandler
	blogHandler        *api.BlogHandler
	portfolioHandler   *api.PortfolioHandler
}

// newApplication connects to the document store and wires all stores,
// services and handlers. A connection failure here is fatal; it is the only
// error class that terminates the process.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	client, err := mongo.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	db := client.Database(cfg.Database.Name)

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		return nil, err
	}

	userStore := mongo.NewUserStore(db, logger)
	projectStore := mongo.NewProjectStore(db, logger)
	skillStore := mongo.NewSkillStore(db, logger)
	testimonialStore := mongo.NewTestimonialStore(db, logger)
	blogStore := mongo.NewBlogStore(db, logger)
	portfolioStore := mongo.NewPortfolioStore(db, logger)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	publishService := publish.NewService(portfolioStore, cfg.Publish)
	iconService := icon.NewService(cfg.Icon)

	return &application{
		config:             cfg,
		logger:             logger,
		client:             client,
		jwtService:         jwtService,
		authorizer:         auth.NewAuthorizer(userStore),
		userHandler:        api.NewUserHandler(userStore, jwtService),
		projectHandler:     api.NewProjectHandler(projectStore),
		skillHandler:       api.NewSkillHandler(skillStore, iconService),
		testimonialHandler: api.NewTestimonialHandler(testimonialStore),
		blogHandler:        api.NewBlogHandler(blogStore),
		portfolioHandler:   api.NewPortfolioHandler(publishService),
	}, nil
}

// cleanup disconnects the store client during shutdown.
func (app *application) cleanup(ctx context.Context) {
	if err := app.client.Disconnect(ctx); err != nil {
		app.logger.Error("failed to disconnect from document store", "error", err)
	}
}
