package purchase

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apphttp "github.com/joshuatochinwachi/ronhub-raffle/pkg/app/http"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/raffle"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the ticket endpoints on the given chi router.
// buyMiddleware wraps only the buy-ticket route (rate limiting).
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger, buyMiddleware ...func(http.Handler) http.Handler) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/api/tickets", apphttp.HandleError(h.listTickets))
	r.With(buyMiddleware...).Post("/api/buy-ticket", apphttp.HandleError(h.buyTicket))
}

func (h *HTTP) buyTicket(w http.ResponseWriter, r *http.Request) error {
	var req raffle.BuyTicketRequest
	if err := apphttp.ReadJSON(r, &req); err != nil {
		return err
	}

	resp, err := h.service.BuyTicket(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) listTickets(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.ListTickets(r.Context(), r.URL.Query().Get("wallet"))
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}
