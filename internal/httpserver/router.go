package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/davidbz/nepersonaj/internal/httpserver/middleware"
)

// NewRouter registers every route of the site API.
func NewRouter(
	handler *Handler,
	auth *middleware.Auth,
	chain middleware.Middleware,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chain)

	r.Get("/health", handler.HandleHealth)
	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/settings", handler.HandlePublicSettings)
		r.Get("/posts", handler.HandleListPosts)
		r.Get("/posts/{id}", handler.HandleGetPost)
		r.Get("/projects", handler.HandleListPublishedProjects)
		r.Get("/projects/{slug}", handler.HandleGetProjectBySlug)
		r.Post("/contact", handler.HandleContact)

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.Authenticate)

			r.Get("/settings", handler.HandleGetSettings)
			r.Put("/settings", handler.HandleUpdateSettings)

			r.Get("/posts", handler.HandleListPosts)
			r.Post("/posts", handler.HandleCreatePost)
			r.Get("/posts/{id}", handler.HandleGetPost)
			r.Put("/posts/{id}", handler.HandleUpdatePost)
			r.Delete("/posts/{id}", handler.HandleDeletePost)

			r.Get("/projects", handler.HandleListProjects)
			r.Post("/projects", handler.HandleCreateProject)
			r.Get("/projects/{id}", handler.HandleGetProject)
			r.Put("/projects/{id}", handler.HandleUpdateProject)
			r.Delete("/projects/{id}", handler.HandleDeleteProject)

			r.Post("/uploads", handler.HandleUpload)

			r.Post("/generate/text", handler.HandleGenerateText)
			r.Post("/generate/all", handler.HandleGenerateAll)
			r.Post("/generate/image", handler.HandleGenerateImage)
		})
	})

	return r
}
