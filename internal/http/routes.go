package httpx

import (
	"log/slog"
	"net/http"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth      AuthServiceInterface
	Tickets   TicketServiceInterface
	Nutrition NutritionServiceInterface // optional; /analyze-image is not mounted when nil
	// Configuration
	CookieDomain   string
	AllowedOrigins []string
	WebFolder      string       // root of the files served under /pub/
	HealthChecks   []HealthCheck
	Logger         *slog.Logger // optional
}

// NewRouter creates the HTTP handler. The pipeline, outermost first, is
// ResponseMapper, Recover, CORS, CtxResolver, then the mux. Ticket routes
// additionally pass through RequireAuth.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}
	mux := http.NewServeMux()

	registerHelloRoutes(mux)
	registerVehicleRoutes(mux, &VehicleHandlers{Logger: logger})
	registerAuthRoutes(mux, &AuthHandlers{Svc: services.Auth, CookieDomain: services.CookieDomain, Logger: logger})
	registerTicketRoutes(mux, &TicketHandlers{Svc: services.Tickets}, RequireAuth(logger))
	if services.Nutrition != nil {
		mux.HandleFunc("POST /analyze-image", (&NutritionHandlers{Svc: services.Nutrition}).AnalyzeImage)
	}
	if services.WebFolder != "" {
		mux.Handle("GET /pub/", staticHandler(services.WebFolder))
	}
	health := healthHandler(logger, services.HealthChecks...)
	mux.Handle("GET /healthz", health)
	mux.Handle("HEAD /healthz", health)

	return Chain(mux,
		ResponseMapper(logger),
		Recover(logger),
		CORS(services.AllowedOrigins),
		CtxResolver(CtxResolverOptions{CookieDomain: services.CookieDomain, Logger: logger}),
	)
}

func registerHelloRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", rootHandler)
	mux.HandleFunc("GET /hello", helloHandler)
	mux.HandleFunc("GET /hello2/{name}", hello2Handler)
}

func registerVehicleRoutes(mux *http.ServeMux, h *VehicleHandlers) {
	mux.HandleFunc("GET /vehicle", h.Get)
	mux.HandleFunc("POST /vehicle", h.Post)
	mux.HandleFunc("PUT /vehicle", h.Put)
	mux.HandleFunc("POST /vehicle2", h.PostQuery)
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("POST /api/login", h.Login)
	mux.HandleFunc("POST /api/logoff", h.Logoff)
}

func registerTicketRoutes(mux *http.ServeMux, h *TicketHandlers, gate func(http.Handler) http.Handler) {
	mux.Handle("POST /api/tickets", gate(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/tickets", gate(http.HandlerFunc(h.List)))
	mux.Handle("DELETE /api/tickets/{id}", gate(http.HandlerFunc(h.Delete)))
}
