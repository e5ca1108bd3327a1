package purchase

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/joshuatochinwachi/ronhub-raffle/pkg/app/errors"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/purchase/mocks"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/raffle"
)

type errorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func newPurchaseTestServer(svc Service, buyMiddleware ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, svc, zap.NewNop(), buyMiddleware...)
	return r
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var got errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	return got
}

func TestBuyTicketHTTP_InvalidJSON_ReturnsBadRequest(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newPurchaseTestServer(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/buy-ticket", bytes.NewBufferString("{invalid"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if got := decodeError(t, rec); got.Error != "invalid JSON" || got.Code != http.StatusBadRequest {
		t.Fatalf("unexpected error body %+v", got)
	}
}

func TestBuyTicketHTTP_Success(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		BuyTicket(mock.Anything, &raffle.BuyTicketRequest{BuyerAddress: testBuyer, TxHash: testTxHash}).
		Return(&raffle.BuyTicketResponse{
			Success:      true,
			Message:      "Ticket registered successfully!",
			TicketNumber: 4821,
			TotalTickets: 12,
			TxHash:       testTxHashL,
		}, nil).Once()
	handler := newPurchaseTestServer(svc)

	body, _ := json.Marshal(map[string]string{"buyerAddress": testBuyer, "txHash": testTxHash})
	req := httptest.NewRequest(http.MethodPost, "/api/buy-ticket", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content-type %q, got %q", "application/json", ct)
	}

	var got raffle.BuyTicketResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if !got.Success || got.TicketNumber != 4821 || got.TotalTickets != 12 || got.TxHash != testTxHashL {
		t.Fatalf("unexpected response %+v", got)
	}
}

func TestBuyTicketHTTP_ServiceErrorStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{apperrors.ConflictError(nil, "Transaction hash already used"), http.StatusConflict, "Transaction hash already used"},
		{apperrors.GoneError(nil, "Raffle is sold out"), http.StatusGone, "Raffle is sold out"},
		{apperrors.GeneralError(nil), http.StatusInternalServerError, "Internal Server Error"},
	}
	for _, tc := range cases {
		t.Run(tc.msg, func(t *testing.T) {
			svc := mocks.NewService(t)
			svc.EXPECT().BuyTicket(mock.Anything, mock.Anything).Return(nil, tc.err).Once()
			handler := newPurchaseTestServer(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/buy-ticket", bytes.NewBufferString(`{}`))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, rec.Code)
			}
			if got := decodeError(t, rec); got.Error != tc.msg || got.Code != tc.status {
				t.Fatalf("unexpected error body %+v", got)
			}
		})
	}
}

func TestBuyTicketHTTP_MiddlewareWrapsOnlyBuy(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().ListTickets(mock.Anything, "").Return(&raffle.TicketsResponse{Tickets: []raffle.TicketView{}}, nil).Once()

	blocked := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})
	}
	handler := newPurchaseTestServer(svc, blocked)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/buy-ticket", bytes.NewBufferString(`{}`)))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected buy-ticket to be wrapped, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tickets", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected tickets to bypass middleware, got %d", rec.Code)
	}
}

func TestListTicketsHTTP_PassesWalletQuery(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().ListTickets(mock.Anything, testBuyer).Return(&raffle.TicketsResponse{
		TotalTickets: 1,
		Tickets:      []raffle.TicketView{{ID: 3, BuyerAddress: testBuyerL, TxHash: testTxHashL}},
	}, nil).Once()
	handler := newPurchaseTestServer(svc)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tickets?wallet="+testBuyer, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	tickets, ok := got["tickets"].([]any)
	if !ok || len(tickets) != 1 {
		t.Fatalf("expected one ticket, got %v", got["tickets"])
	}
	first := tickets[0].(map[string]any)
	if first["buyer_address"] != testBuyerL || first["tx_hash"] != testTxHashL {
		t.Fatalf("unexpected ticket fields %v", first)
	}
}
