// Package api implements app.Runner for the raffle API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/joshuatochinwachi/ronhub-raffle/internal/metrics"
	apphttp "github.com/joshuatochinwachi/ronhub-raffle/pkg/app/http"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/auth"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/config"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/draw"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/ethereum"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/ledger"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/pgutil"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/purchase"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/ticket"
)

// Version is reported by the status endpoint.
const Version = "1.0.0"

// Server holds cfg to init the raffle api server.
type Server struct {
	cfg *config.RaffleServerConfig
}

// NewServer initializes new raffle api server.
func NewServer(cfg *config.RaffleServerConfig) *Server {
	return &Server{cfg: cfg}
}

// Run wires the ledger, chain client and services, then serves HTTP until SIGINT/SIGTERM.
func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("raffle server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting raffle server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.Time("end_date", cfg.Raffle.EndDate),
		zap.Int64("max_tickets", cfg.Raffle.MaxTickets),
	)

	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer func() { _ = db.Close() }()
	logger.Info("Connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Database),
	)

	ethClient, err := ethereum.NewClient(ctx, &cfg.Ethereum, logger)
	if err != nil {
		return fmt.Errorf("connect ethereum: %w", err)
	}
	defer ethClient.Close()

	store := ledger.NewStore(db)
	if total, err := store.CountTickets(ctx); err != nil {
		logger.Warn("Failed to read initial ticket count", zap.Error(err))
	} else {
		metrics.TicketsSold.Set(float64(total))
	}

	verifier := ethereum.NewPaymentVerifier(ethClient, cfg.Ethereum.RequestTimeout, logger)
	allocator := ticket.NewAllocator(store, ticket.WithAttempts(cfg.Raffle.AllocationAttempts))

	purchaseService := purchase.NewLog(
		purchase.NewService(cfg.Raffle, store, verifier, allocator, logger),
		logger,
	)
	drawService := draw.NewLog(draw.NewService(cfg.Raffle, store, logger), logger)

	purchaseLimiter := apphttp.NewRateLimiter("purchase",
		cfg.RateLimit.PurchaseRequests, cfg.RateLimit.PurchaseWindow,
		"Too many requests from this IP, please try again later.", logger)
	defer purchaseLimiter.Stop()

	drawLimiter := apphttp.NewRateLimiter("draw",
		cfg.RateLimit.DrawRequests, cfg.RateLimit.DrawWindow,
		"Draw attempts capped. Please wait.", logger)
	defer drawLimiter.Stop()

	operator := auth.NewOperatorAuthenticator(cfg.Operator.Secret, cfg.Operator.Issuer, logger)

	router := s.setupRouter(routes{
		purchase:        purchaseService,
		draw:            drawService,
		purchaseLimiter: purchaseLimiter,
		drawLimiter:     drawLimiter,
		operator:        operator,
	}, logger)

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

type routes struct {
	purchase        purchase.Service
	draw            draw.Service
	purchaseLimiter *apphttp.RateLimiter
	drawLimiter     *apphttp.RateLimiter
	operator        *auth.OperatorAuthenticator
}

type endpoint struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Description string `json:"description"`
}

type statusResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Version   string `json:"version"`
	Endpoints struct {
		Public []endpoint `json:"public"`
		Admin  []endpoint `json:"admin"`
	} `json:"endpoints"`
}

func newStatusResponse() statusResponse {
	resp := statusResponse{
		Status:  "online",
		Message: "RonHub Raffle Backend is running",
		Version: Version,
	}
	resp.Endpoints.Public = []endpoint{
		{Path: "/api/raffle-info", Method: http.MethodGet, Description: "Fetch current raffle statistics and winner state"},
		{Path: "/api/tickets", Method: http.MethodGet, Description: "List all tickets (optional: ?wallet=0x...)"},
		{Path: "/api/buy-ticket", Method: http.MethodPost, Description: "Register a ticket after on-chain USDC transfer"},
	}
	resp.Endpoints.Admin = []endpoint{
		{Path: "/api/draw-winner", Method: http.MethodPost, Description: "Draw the raffle winner (operator bearer token)"},
	}
	return resp
}

func (s *Server) setupRouter(rt routes, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		apphttp.WriteJSON(w, http.StatusOK, newStatusResponse())
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if s.cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	purchase.RegisterRoutes(r, rt.purchase, logger, rt.purchaseLimiter.Middleware)
	draw.RegisterRoutes(r, rt.draw, logger, rt.operator.Middleware, rt.drawLimiter.Middleware)

	return r
}
