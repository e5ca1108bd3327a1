package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apphttp "github.com/joshuatochinwachi/ronhub-raffle/pkg/app/http"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/auth"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/config"
	drawmocks "github.com/joshuatochinwachi/ronhub-raffle/pkg/draw/mocks"
	purchasemocks "github.com/joshuatochinwachi/ronhub-raffle/pkg/purchase/mocks"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/raffle"
)

const testOperatorSecret = "0123456789abcdef0123456789abcdef"

type testRouter struct {
	handler  chi.Router
	purchase *purchasemocks.Service
	draw     *drawmocks.Service
}

func newTestRouter(t *testing.T, monitoring bool, purchaseBudget, drawBudget int) testRouter {
	t.Helper()
	cfg := &config.RaffleServerConfig{
		Server:     config.ServerConfig{RequestTimeout: 5 * time.Second},
		Monitoring: config.MonitoringConfig{Enabled: monitoring},
	}
	srv := NewServer(cfg)

	purchaseLimiter := apphttp.NewRateLimiter("purchase", purchaseBudget, time.Minute, "Too many requests from this IP, please try again later.", zap.NewNop())
	drawLimiter := apphttp.NewRateLimiter("draw", drawBudget, time.Minute, "Draw attempts capped. Please wait.", zap.NewNop())
	t.Cleanup(purchaseLimiter.Stop)
	t.Cleanup(drawLimiter.Stop)

	tr := testRouter{
		purchase: purchasemocks.NewService(t),
		draw:     drawmocks.NewService(t),
	}
	tr.handler = srv.setupRouter(routes{
		purchase:        tr.purchase,
		draw:            tr.draw,
		purchaseLimiter: purchaseLimiter,
		drawLimiter:     drawLimiter,
		operator:        auth.NewOperatorAuthenticator(testOperatorSecret, "ronhub-raffle", zap.NewNop()),
	}, zap.NewNop())
	return tr
}

func TestRouter_Status(t *testing.T) {
	tr := newTestRouter(t, false, 10, 10)

	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var got statusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Status != "online" || got.Version != Version {
		t.Fatalf("unexpected status response %+v", got)
	}
	if len(got.Endpoints.Public) != 3 || len(got.Endpoints.Admin) != 1 {
		t.Fatalf("unexpected endpoint listing %+v", got.Endpoints)
	}
}

func TestRouter_Health(t *testing.T) {
	tr := newTestRouter(t, false, 10, 10)

	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Fatalf("unexpected health response %d %q", rec.Code, rec.Body.String())
	}
}

func TestRouter_MetricsToggle(t *testing.T) {
	enabled := newTestRouter(t, true, 10, 10)
	rec := httptest.NewRecorder()
	enabled.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected metrics to be served, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "go_goroutines") {
		t.Fatal("expected default collectors in metrics output")
	}

	disabled := newTestRouter(t, false, 10, 10)
	rec = httptest.NewRecorder()
	disabled.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 with monitoring disabled, got %d", rec.Code)
	}
}

func TestRouter_BuyTicketRateLimited(t *testing.T) {
	tr := newTestRouter(t, false, 2, 10)
	tr.purchase.EXPECT().BuyTicket(mock.Anything, mock.Anything).
		Return(&raffle.BuyTicketResponse{Success: true, TicketNumber: 1, TotalTickets: 1}, nil).Times(2)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/buy-ticket", bytes.NewBufferString(`{}`)))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/buy-ticket", bytes.NewBufferString(`{}`)))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after budget, got %d", rec.Code)
	}

	tr.purchase.EXPECT().ListTickets(mock.Anything, "").Return(&raffle.TicketsResponse{Tickets: []raffle.TicketView{}}, nil).Once()
	rec = httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tickets", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected tickets listing to be unlimited, got %d", rec.Code)
	}
}

func TestRouter_DrawAuthBeforeRateLimit(t *testing.T) {
	tr := newTestRouter(t, false, 10, 1)

	// Unauthenticated calls are rejected before they consume the draw budget.
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/draw-winner", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	}

	tr.draw.EXPECT().DrawWinner(mock.Anything).Return(&raffle.DrawResponse{
		Success: true,
		Winner:  &raffle.Winner{TicketNumber: 7},
	}, nil).Once()

	authed := func() *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/draw-winner", nil)
		req.Header.Set("Authorization", "Bearer "+testOperatorSecret)
		return req
	}

	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, authed())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, authed())
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after draw budget, got %d", rec.Code)
	}
}

func TestRouter_RaffleInfo(t *testing.T) {
	tr := newTestRouter(t, false, 10, 10)
	tr.draw.EXPECT().Info(mock.Anything).Return(&raffle.Info{Stage: raffle.StageClosed}, nil).Once()

	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/raffle-info", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
