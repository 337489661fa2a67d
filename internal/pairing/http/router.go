package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/pairing/internal/pairing/service"
	"github.com/aussiebroadwan/pairing/internal/pairing/store"
	"github.com/aussiebroadwan/pairing/pkg/httpx"
	"github.com/aussiebroadwan/pairing/pkg/jwtx"
	"github.com/aussiebroadwan/pairing/pkg/slogx"

	_ "github.com/aussiebroadwan/pairing/api/pairing" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// IntrospectScope is required on tokens calling the introspection endpoint.
const IntrospectScope = "pairing:introspect"

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         jwtx.KeySource
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	PairingService *service.PairingService

	// CORS applies to the public issue and poll routes.
	CORS httpx.CORSConfig
}

func NewRouter(
	keys jwtx.KeySource,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		CORS: httpx.CORSConfig{
			AllowedOrigin:  "*",
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         10 * time.Minute,
		},
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerPairing()
	r.registerSessions()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			AussieBroadWAN Pairing Service API
//	@version		0.1.0
//	@description	One-time pairing codes for QR sign-in. A web client issues a code and polls it while an
//	@description	already authenticated device scans the code and redeems it.
//	@description
//	@description				Redemption and introspection take a bearer JWT issued by the upstream auth service.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/pairing
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

func (r *Router) registerPairing() {
	cors := httpx.CORS(r.CORS)

	// POST /codes - moderate rate limit by IP (anonymous writes)
	issueHandler := &IssueCodeHandler{PairingService: r.PairingService}
	r.Mux.Handle("POST /v1/pairing/codes",
		httpx.Chain(issueHandler,
			cors,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// GET /codes/{code} - public limit, web clients poll this every couple of seconds
	pollHandler := &ClaimStatusHandler{PairingService: r.PairingService}
	r.Mux.Handle("GET /v1/pairing/codes/{code}",
		httpx.Chain(pollHandler,
			cors,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// Browser preflight for the two routes above. CORS answers it without
	// reaching the handler.
	r.Mux.Handle("OPTIONS /v1/pairing/codes/", httpx.Chain(http.NotFoundHandler(), cors))
	r.Mux.Handle("OPTIONS /v1/pairing/codes", httpx.Chain(http.NotFoundHandler(), cors))

	// POST /redeem - strict rate limit by user (each attempt spends a guess)
	redeemHandler := &RedeemHandler{PairingService: r.PairingService}
	r.Mux.Handle("POST /v1/pairing/redeem",
		httpx.Chain(redeemHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSessions() {
	h := &IntrospectHandler{PairingService: r.PairingService}

	r.Mux.Handle("POST /v1/pairing/sessions/introspect",
		httpx.Chain(h,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope(IntrospectScope),
			httpx.RateLimitByUser(httpx.LenientLimit),
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
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
