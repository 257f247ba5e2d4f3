package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/quillworks/quill/internal/blog/service"
	"github.com/quillworks/quill/internal/blog/store"
	"github.com/quillworks/quill/pkg/httpx"
	"github.com/quillworks/quill/pkg/jwtx"
	"github.com/quillworks/quill/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       *jwtx.Signer
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	RegisterService *service.RegisterService
	TokenService    *service.TokenService
	ArticleService  *service.ArticleService
	UserService     *service.UserService
}

func NewRouter(
	signer *jwtx.Signer,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
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
	r.registerAccounts()
	r.registerArticles()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAccounts() {
	// POST /register - strict rate limit by IP (public signup endpoint)
	registerHandler := &RegisterHandler{RegisterService: r.RegisterService}
	r.Mux.Handle("POST /register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /login - strict rate limit by IP (authentication attempts)
	loginHandler := &LoginHandler{TokenService: r.TokenService}
	r.Mux.Handle("POST /login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerArticles() {
	h := &ArticlesHandler{ArticleService: r.ArticleService}

	// Authentication is optional on every article route: anonymous callers
	// still get the public listing, while a presented token must verify.
	authn := optionalAuthn(r.signer, r.UserService)

	// Reads get the public limit, writes the moderate one.
	r.Mux.Handle("GET /article",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			authn,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /article/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleRetrieve),
			authn,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("POST /article",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			authn,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PUT /article/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			authn,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - public limits (monitoring systems poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
