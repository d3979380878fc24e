package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(h.withTimeout)
	router.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)

	router.Route("/api", func(r chi.Router) {
		// singleton sections
		r.Get("/overview", h.getOverview)
		r.Put("/overview", h.updateOverview)
		r.Get("/about", h.getAbout)
		r.Put("/about", h.updateAbout)

		r.Route("/skills", func(r chi.Router) {
			r.Get("/", h.listSkills)
			r.Post("/", h.createSkill)
			r.Patch("/reorder", h.reorderSkills)
			r.Put("/{id}", h.updateSkill)
			r.Delete("/{id}", h.deleteSkill)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.listProjects)
			r.Get("/featured", h.listFeaturedProjects)
			r.Post("/", h.createProject)
			r.Patch("/reorder", h.reorderProjects)
			r.Put("/{id}", h.updateProject)
			r.Delete("/{id}", h.deleteProject)
		})

		r.Route("/contacts", func(r chi.Router) {
			r.Get("/", h.listContacts)
			r.Post("/", h.createContact)
			r.Patch("/{id}/read", h.markContactRead)
		})

		r.Post("/auth/login", h.login)
	})

	return router
}
