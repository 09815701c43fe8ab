// internal/app/features/railwaydata/routes.go
package railwaydata

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted at /api/data.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeAll)
	r.Post("/", h.HandleImport)
	return r
}
