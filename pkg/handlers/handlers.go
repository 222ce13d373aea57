package handlers

import (
	"log/slog"
	"net/http"

	"github.com/chris/intent-reconciliation/pkg/api"
	"github.com/chris/intent-reconciliation/pkg/gateway"
	"github.com/chris/intent-reconciliation/pkg/handlers/accounts"
	"github.com/chris/intent-reconciliation/pkg/handlers/checkout"
	"github.com/chris/intent-reconciliation/pkg/handlers/intents"
	"github.com/chris/intent-reconciliation/pkg/handlers/ledger"
	appmiddleware "github.com/chris/intent-reconciliation/pkg/middleware"
	"github.com/chris/intent-reconciliation/pkg/money"
	"github.com/chris/intent-reconciliation/pkg/reconcile"
	"github.com/chris/intent-reconciliation/pkg/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// ApiHandler implements the generated server interface by composing the
// per-resource handlers.
type ApiHandler struct {
	*accounts.AccountsHandler
	*intents.IntentsHandler
	*checkout.CheckoutHandler
	*ledger.LedgerHandler
}

// Make sure we conform to the interface
var _ api.ServerInterface = (*ApiHandler)(nil)

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	Store           storage.ApiStore
	Engine          *reconcile.Engine
	Webhooks        gateway.WebhookParser
	SignatureHeader string
	PublicBaseURL   string
	Converter       *money.Converter
}

// NewApiHandler creates an ApiHandler from deps.
func NewApiHandler(deps Deps) *ApiHandler {
	return &ApiHandler{
		AccountsHandler: accounts.NewAccountsHandler(deps.Store, deps.Converter),
		IntentsHandler:  intents.NewIntentsHandler(deps.Engine, deps.Store, deps.Converter),
		CheckoutHandler: checkout.NewCheckoutHandler(deps.Engine, deps.Webhooks, deps.SignatureHeader, deps.PublicBaseURL, deps.Converter),
		LedgerHandler:   ledger.NewLedgerHandler(deps.Store, deps.Converter),
	}
}

// RouterOptions configures NewRouter.
type RouterOptions struct {
	Logger         *slog.Logger
	JWTSecret      string
	AllowedOrigins []string
	// Dashboard serves the live websocket feed at /ws when set. It requires an
	// ADMIN token like the admin operations.
	Dashboard http.HandlerFunc
}

// NewRouter mounts the API on a chi router. Operations marked with bearer auth
// require an ADMIN token; the gateway-facing ones are public.
func NewRouter(si api.ServerInterface, opts RouterOptions) chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(appmiddleware.NewStructuredLogger(opts.Logger))
	router.Use(middleware.Recoverer)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	if opts.Dashboard != nil {
		router.With(appmiddleware.RequireAdminStream(opts.JWTSecret)).Get("/ws", opts.Dashboard)
	}

	api.HandlerWithOptions(si, api.ChiServerOptions{
		BaseRouter:  router,
		Middlewares: []api.MiddlewareFunc{appmiddleware.RequireAdmin(opts.JWTSecret)},
	})
	return router
}
