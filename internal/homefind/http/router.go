package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/lagoshomes/homefind/internal/homefind/domain"
	"github.com/lagoshomes/homefind/internal/homefind/service"
	"github.com/lagoshomes/homefind/internal/homefind/store"
	"github.com/lagoshomes/homefind/pkg/httpx"
	"github.com/lagoshomes/homefind/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store                store.Store
	AccountService       *service.AccountService
	BootstrapService     *service.BootstrapService
	PasswordResetService *service.PasswordResetService
	SessionService       *service.SessionService
	ProfileService       *service.ProfileService
	PropertyService      *service.PropertyService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerBootstrap()
	r.registerAccounts()
	r.registerSessions()
	r.registerPasswords()
	r.registerProfile()
	r.registerProperties()
	r.registerAdmin()
	r.registerSystem()
}

// ServeHTTP implements http.Handler and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerBootstrap() {
	// POST /bootstrap - first-run setup, strict rate limit by IP. The
	// handler 404s unless a bootstrap token is configured.
	bootstrapHandler := &BootstrapHandler{BootstrapService: r.BootstrapService}
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(bootstrapHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerAccounts() {
	// POST /register - strict rate limit by IP (account creation)
	registerHandler := &RegisterHandler{AccountService: r.AccountService}
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /activate/{uid}/{token}/ - the emailed link. Moderate limit; a
	// legitimate user clicks this once.
	activateHandler := &ActivateHandler{AccountService: r.AccountService}
	r.Mux.Handle("GET /activate/{uid}/{token}/{$}",
		httpx.Chain(activateHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSessions() {
	// POST /login - strict rate limit by IP (authentication attempts)
	loginHandler := &LoginHandler{SessionService: r.SessionService}
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /logout - authenticated, lenient
	logoutHandler := &LogoutHandler{SessionService: r.SessionService}
	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(logoutHandler,
			AuthnMiddleware(r.SessionService),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerPasswords() {
	// POST /password/reset - strict rate limit by IP (sends email)
	resetRequestHandler := &ResetRequestHandler{ResetService: r.PasswordResetService}
	r.Mux.Handle("POST /v1/password/reset",
		httpx.Chain(resetRequestHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /password/reset/confirm/{uid}/{token}/ - strict rate limit by
	// IP (guessing surface)
	resetConfirmHandler := &ResetConfirmHandler{ResetService: r.PasswordResetService}
	r.Mux.Handle("POST /password/reset/confirm/{uid}/{token}/{$}",
		httpx.Chain(resetConfirmHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /password/change - authenticated, strict (credential mutation)
	passwordChangeHandler := &PasswordChangeHandler{SessionService: r.SessionService}
	r.Mux.Handle("POST /v1/password/change",
		httpx.Chain(passwordChangeHandler,
			AuthnMiddleware(r.SessionService),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerProfile() {
	h := &ProfileHandler{ProfileService: r.ProfileService}

	securedGet := httpx.Chain(http.HandlerFunc(h.HandleGet),
		AuthnMiddleware(r.SessionService),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
	securedPut := httpx.Chain(http.HandlerFunc(h.HandlePut),
		AuthnMiddleware(r.SessionService),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("GET /v1/profile", securedGet)
	r.Mux.Handle("PUT /v1/profile", securedPut)
}

func (r *Router) registerProperties() {
	public := &PropertiesHandler{PropertyService: r.PropertyService}

	// Public browse endpoints - high limits, monitoring-friendly
	r.Mux.Handle("GET /v1/properties",
		httpx.Chain(http.HandlerFunc(public.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /v1/properties/{id}",
		httpx.Chain(http.HandlerFunc(public.HandleGet),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	vendor := &VendorPropertiesHandler{PropertyService: r.PropertyService}
	secured := func(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
		return httpx.Chain(h,
			AuthnMiddleware(r.SessionService),
			RequireRole(domain.RoleVendor, domain.RoleSuperAdmin),
			httpx.RateLimitByUser(limit),
		)
	}

	r.Mux.Handle("GET /v1/vendor/properties", secured(vendor.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/vendor/properties", secured(vendor.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/vendor/properties/{id}", secured(vendor.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/vendor/properties/{id}", secured(vendor.HandleDelete, httpx.ModerateLimit))

	r.Mux.Handle("POST /v1/vendor/properties/{id}/images", secured(vendor.HandleAddImage, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/vendor/properties/{id}/images/{imageID}", secured(vendor.HandleRemoveImage, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/vendor/properties/{id}/features", secured(vendor.HandleAddFeature, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/vendor/properties/{id}/features/{featureID}", secured(vendor.HandleRemoveFeature, httpx.ModerateLimit))
}

func (r *Router) registerAdmin() {
	h := &AdminHandler{AccountService: r.AccountService}

	r.Mux.Handle("POST /v1/admin/users/{id}/resend-activation",
		httpx.Chain(http.HandlerFunc(h.HandleResendActivation),
			AuthnMiddleware(r.SessionService),
			RequireRole(domain.RoleSuperAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
