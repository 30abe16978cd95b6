package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dashdocs/dashdocs/api"
	"github.com/dashdocs/dashdocs/internal/accounts/service"
	"github.com/dashdocs/dashdocs/internal/accounts/store"
	"github.com/dashdocs/dashdocs/pkg/httpx"
	"github.com/dashdocs/dashdocs/pkg/sessionx"
	"github.com/dashdocs/dashdocs/pkg/slogx"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	sessions     *sessionx.Manager
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AuthService      *service.AuthService
	InviteService    *service.InviteService
	MemberService    *service.MemberService
	OrgService       *service.OrgService
	BootstrapService *service.BootstrapService
}

func NewRouter(
	sessions *sessionx.Manager,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		sessions:     sessions,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerOrg()
	r.registerMembers()
	r.registerInvitations()
	r.registerConnection()
	r.registerSystem()
	r.registerBootstrap()

	r.Mux.Handle("GET /swagger/doc.json", api.SpecHandler())
	r.Mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			DashDocs Accounts Service API
//	@version		0.1.0
//	@description	Multi-tenant accounts service handling organizations, membership,
//	@description	role management and the email invitation workflow.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	loginHandler := &LoginHandler{AuthService: r.AuthService}
	registerHandler := &RegisterHandler{InviteService: r.InviteService}

	// POST /auth/login - strict rate limit by IP (credential guessing)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/register - strict rate limit by IP (public signup endpoint)
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerOrg() {
	h := &OrgHandler{OrgService: r.OrgService}

	// GET /org - any authenticated member may view their own org
	r.Mux.Handle("GET /v1/org",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.AuthnMiddleware(r.sessions),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// PATCH /org - admin only
	r.Mux.Handle("PATCH /v1/org",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.AuthnMiddleware(r.sessions),
			httpx.RequireRole("admin"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerMembers() {
	h := &MembersHandler{MemberService: r.MemberService}

	secured := func(next http.Handler) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.sessions),
			httpx.RequireRole("admin"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /v1/org/members", secured(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("PATCH /v1/org/members/{id}/role", secured(http.HandlerFunc(h.HandleChangeRole)))
	r.Mux.Handle("DELETE /v1/org/members/{id}", secured(http.HandlerFunc(h.HandleRemove)))
}

func (r *Router) registerInvitations() {
	h := &InvitationsHandler{InviteService: r.InviteService}

	secured := func(next http.Handler) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.sessions),
			httpx.RequireRole("admin"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /v1/org/invitations", secured(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("POST /v1/org/invitations", secured(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("DELETE /v1/org/invitations/{id}", secured(http.HandlerFunc(h.HandleRemove)))
}

func (r *Router) registerConnection() {
	h := &ConnectionHandler{OrgService: r.OrgService}

	secured := func(next http.Handler) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.sessions),
			httpx.RequireRole("admin"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /v1/org/connection", secured(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("PUT /v1/org/connection", secured(http.HandlerFunc(h.HandleSave)))
}

func (r *Router) registerBootstrap() {
	// POST /bootstrap - very strict rate limit by IP (one-time setup endpoint)
	bootstrapHandler := &BootstrapHandler{BootstrapService: r.BootstrapService}
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(bootstrapHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
