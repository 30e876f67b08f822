package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/lodgeline/lodgeline/internal/invites/backend"
	"github.com/lodgeline/lodgeline/internal/invites/service"
	"github.com/lodgeline/lodgeline/pkg/httpx"
	"github.com/lodgeline/lodgeline/pkg/jwtx"
	"github.com/lodgeline/lodgeline/pkg/slogx"

	_ "github.com/lodgeline/lodgeline/api/invites" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Scopes granted via the bearer token's space-delimited scope claim.
const (
	ScopeInvitesMint     = "invites:mint"
	ScopeInvitesRead     = "invites:read"
	ScopeInvitesRedeem   = "invites:redeem"
	ScopeInvitesAdmin    = "invites:admin"
	ScopePropertiesWrite = "properties:write"
	ScopePropertiesRead  = "properties:read"
	ScopeTenanciesRead   = "tenancies:read"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier      *jwtx.Verifier
	buildVersion  string
	publicBaseURL string
	startTime     time.Time
	logger        *slog.Logger

	Backend         backend.CodeStore
	PropertyService *service.PropertyService
}

func NewRouter(
	verifier *jwtx.Verifier,
	buildVersion, publicBaseURL string,
	b backend.CodeStore,
	properties *service.PropertyService,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:             http.NewServeMux(),
		verifier:        verifier,
		buildVersion:    buildVersion,
		publicBaseURL:   publicBaseURL,
		startTime:       time.Now(),
		logger:          logger,
		Backend:         b,
		PropertyService: properties,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerInvites()
	r.registerProperties()
	r.registerTenancies()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Lodgeline Invite Service API
//	@version		0.1.0
//	@description	Invite code lifecycle for the Lodgeline property platform: landlords mint short
//	@description	typable codes, tenants validate and redeem them, and a successful redemption
//	@description	atomically links the tenant to the property.
//
//	@contact.name				Lodgeline Team
//	@contact.url				https://github.com/lodgeline/lodgeline
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
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerInvites() {
	authn := httpx.AuthnMiddleware(r.verifier)

	// Mint endpoints - moderate limits keyed by account.
	r.Mux.Handle("POST /v1/invites",
		httpx.Chain(&InviteMintHandler{Backend: r.Backend},
			authn,
			httpx.RequireAnyScope(ScopeInvitesMint),
			httpx.RateLimitByAccount(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/invites/bulk",
		httpx.Chain(&InviteBulkMintHandler{Backend: r.Backend},
			authn,
			httpx.RequireAnyScope(ScopeInvitesMint),
			httpx.RateLimitByAccount(httpx.ModerateLimit),
		),
	)

	// Validate and redeem are the code-guessing surface - strict limits
	// keyed by IP so rotating accounts doesn't reset the budget.
	r.Mux.Handle("POST /v1/invites/validate",
		httpx.Chain(&InviteValidateHandler{Backend: r.Backend},
			authn,
			httpx.RequireAnyScope(ScopeInvitesRedeem),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/invites/redeem",
		httpx.Chain(&InviteRedeemHandler{Backend: r.Backend},
			authn,
			httpx.RequireAnyScope(ScopeInvitesRedeem),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /v1/invites",
		httpx.Chain(&InviteListHandler{Backend: r.Backend},
			authn,
			httpx.RequireAnyScope(ScopeInvitesRead),
			httpx.RateLimitByAccount(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/invites/{id}/revoke",
		httpx.Chain(&InviteRevokeHandler{Backend: r.Backend},
			authn,
			httpx.RequireAnyScope(ScopeInvitesMint),
			httpx.RateLimitByAccount(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/invites/{id}/extend",
		httpx.Chain(&InviteExtendHandler{Backend: r.Backend},
			authn,
			httpx.RequireAnyScope(ScopeInvitesMint),
			httpx.RateLimitByAccount(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/invites/{id}/qr",
		httpx.Chain(&InviteQRHandler{Backend: r.Backend, PublicBaseURL: r.publicBaseURL},
			authn,
			httpx.RequireAnyScope(ScopeInvitesRead),
			httpx.RateLimitByAccount(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/invites/purge",
		httpx.Chain(&InvitePurgeHandler{Backend: r.Backend},
			authn,
			httpx.RequireAnyScope(ScopeInvitesAdmin),
			httpx.RateLimitByAccount(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerProperties() {
	// Remote-only deployments proxy code operations but hold no property
	// registry of their own.
	if r.PropertyService == nil {
		return
	}

	authn := httpx.AuthnMiddleware(r.verifier)

	r.Mux.Handle("POST /v1/properties",
		httpx.Chain(&PropertyCreateHandler{PropertyService: r.PropertyService},
			authn,
			httpx.RequireAnyScope(ScopePropertiesWrite),
			httpx.RateLimitByAccount(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/properties",
		httpx.Chain(&PropertyListHandler{PropertyService: r.PropertyService},
			authn,
			httpx.RequireAnyScope(ScopePropertiesRead),
			httpx.RateLimitByAccount(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/properties/{id}",
		httpx.Chain(&PropertyGetHandler{PropertyService: r.PropertyService},
			authn,
			httpx.RequireAnyScope(ScopePropertiesRead),
			httpx.RateLimitByAccount(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/properties/{id}/invites",
		httpx.Chain(&PropertyInviteListHandler{Backend: r.Backend},
			authn,
			httpx.RequireAnyScope(ScopeInvitesRead),
			httpx.RateLimitByAccount(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/properties/{id}/tenancies",
		httpx.Chain(&PropertyTenancyListHandler{PropertyService: r.PropertyService},
			authn,
			httpx.RequireAnyScope(ScopeTenanciesRead),
			httpx.RateLimitByAccount(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerTenancies() {
	if r.PropertyService == nil {
		return
	}

	authn := httpx.AuthnMiddleware(r.verifier)

	r.Mux.Handle("GET /v1/tenancies",
		httpx.Chain(&TenancyListHandler{PropertyService: r.PropertyService},
			authn,
			httpx.RequireAnyScope(ScopeTenanciesRead),
			httpx.RateLimitByAccount(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.Backend),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
