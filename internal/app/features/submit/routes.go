// internal/app/features/submit/routes.go
package submit

import "github.com/go-chi/chi/v5"

// Routes returns the router for the intake endpoint.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeStatus)
	r.Post("/", h.ServeSubmit)
	return r
}
