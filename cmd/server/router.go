package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	apiMiddleware "github.com/portfolioz/server/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware. Only user deletion and the user listing are token-gated;
// resource mutations rely on the owner-email check in their handlers.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	r.Use(cors.New(cors.Options{
		AllowedOrigins:   app.config.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}).Handler)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.authorizer)

	// Auth
	r.Post("/jwt", app.userHandler.IssueToken)

	// Users
	r.Post("/users", app.userHandler.Register)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Get("/users", app.userHandler.List)

		// Admin only; RequireAdmin needs the identity Authenticate decodes.
		r.With(authMiddleware.RequireAdmin).Delete("/users/{id}", app.userHandler.Delete)
	})

	// Projects
	r.Get("/projects", app.projectHandler.List)
	r.Get("/projects/{id}", app.projectHandler.Get)
	r.Post("/projects", app.projectHandler.Create)
	r.Patch("/projects/{id}", app.projectHandler.Update)
	r.Delete("/projects/{id}", app.projectHandler.Delete)

	// Skills
	r.Get("/skillsicon", app.skillHandler.Icon)
	r.Get("/skills", app.skillHandler.List)
	r.Get("/skills/{id}", app.skillHandler.Get)
	r.Post("/skills", app.skillHandler.Create)
	r.Patch("/skills/{id}", app.skillHandler.Update)
	r.Delete("/skills/{id}", app.skillHandler.Delete)

	// Testimonials
	r.Get("/testimonials", app.testimonialHandler.List)
	r.Get("/testimonials/{id}", app.testimonialHandler.Get)
	r.Post("/testimonials", app.testimonialHandler.Create)
	r.Patch("/testimonials/{id}", app.testimonialHandler.Update)
	r.Delete("/testimonials/{id}", app.testimonialHandler.Delete)

	// Blogs
	r.Get("/blogs", app.blogHandler.List)
	r.Get("/blogs/{id}", app.blogHandler.Get)
	r.Post("/blogs", app.blogHandler.Create)
	r.Patch("/blogs/{id}", app.blogHandler.Update)
	r.Delete("/blogs/{id}", app.blogHandler.Delete)

	// Portfolio publishing
	r.Post("/publishPortfolio", app.portfolioHandler.Publish)
	r.Get("/publishPortfolio/{email}", app.portfolioHandler.Fetch)

	// Liveness
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("Portfolio Z is Running !")); err != nil {
			app.logger.Error("failed to write liveness response", "error", err)
		}
	})

	return r
}
