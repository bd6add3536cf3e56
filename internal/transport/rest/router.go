package rest

import (
	"net/http"

	"github.com/y0ngdev/the-bridge/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health      *HealthHandler
	Auth        *AuthHandler
	Alumni      *AlumniHandler
	Duplicates  *DuplicatesHandler
	Departments *DepartmentsHandler
	Tenures     *TenuresHandler
}

// RouterConfig holds the middleware the router applies per route group.
type RouterConfig struct {
	// Authenticate must reject requests without a valid token.
	Authenticate middleware.Middleware
	// LoginLimit throttles the login endpoint.
	LoginLimit middleware.Middleware
}

// NewRouter mounts every endpoint. Probes and login are public, everything
// else under /api/v1 needs a token, and duplicate review, reference-data
// writes and deletes need the admin role.
func NewRouter(h Handlers, cfg RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()

	staff := func(fn http.HandlerFunc) http.Handler {
		return cfg.Authenticate(fn)
	}
	admin := func(fn http.HandlerFunc) http.Handler {
		return cfg.Authenticate(middleware.AdminOnly(fn))
	}

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /api/v1/auth/login", cfg.LoginLimit(http.HandlerFunc(h.Auth.Login)))
	mux.Handle("GET /api/v1/auth/me", staff(h.Auth.Me))

	mux.Handle("GET /api/v1/alumni", staff(h.Alumni.List))
	mux.Handle("POST /api/v1/alumni", staff(h.Alumni.Create))
	mux.Handle("GET /api/v1/alumni/{id}", staff(h.Alumni.Get))
	mux.Handle("PATCH /api/v1/alumni/{id}", staff(h.Alumni.Update))
	mux.Handle("DELETE /api/v1/alumni/{id}", admin(h.Alumni.Delete))
	mux.Handle("GET /api/v1/alumni/{id}/history", staff(h.Alumni.History))
	mux.Handle("GET /api/v1/alumni/{id}/communications", staff(h.Alumni.ListCommunications))
	mux.Handle("POST /api/v1/alumni/{id}/communications", staff(h.Alumni.CreateCommunication))
	mux.Handle("DELETE /api/v1/communications/{id}", admin(h.Alumni.DeleteCommunication))

	mux.Handle("GET /api/v1/duplicates", admin(h.Duplicates.List))
	mux.Handle("POST /api/v1/duplicates/dismiss", admin(h.Duplicates.Dismiss))
	mux.Handle("POST /api/v1/duplicates/merge", admin(h.Duplicates.Merge))

	mux.Handle("GET /api/v1/departments", staff(h.Departments.List))
	mux.Handle("GET /api/v1/departments/{id}", staff(h.Departments.Get))
	mux.Handle("POST /api/v1/departments", admin(h.Departments.Create))
	mux.Handle("PUT /api/v1/departments/{id}", admin(h.Departments.Update))
	mux.Handle("DELETE /api/v1/departments/{id}", admin(h.Departments.Delete))

	mux.Handle("GET /api/v1/tenures", staff(h.Tenures.List))
	mux.Handle("GET /api/v1/tenures/active", staff(h.Tenures.Active))
	mux.Handle("GET /api/v1/tenures/{id}", staff(h.Tenures.Get))
	mux.Handle("POST /api/v1/tenures", admin(h.Tenures.Create))
	mux.Handle("PUT /api/v1/tenures/{id}", admin(h.Tenures.Update))
	mux.Handle("DELETE /api/v1/tenures/{id}", admin(h.Tenures.Delete))

	return mux
}
