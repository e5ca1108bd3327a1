package draw

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apphttp "github.com/joshuatochinwachi/ronhub-raffle/pkg/app/http"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers raffle-info and draw-winner on the given chi router.
// drawMiddleware wraps only draw-winner (operator auth, then rate limiting).
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger, drawMiddleware ...func(http.Handler) http.Handler) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/api/raffle-info", apphttp.HandleError(h.info))
	r.With(drawMiddleware...).Post("/api/draw-winner", apphttp.HandleError(h.drawWinner))
}

func (h *HTTP) info(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.Info(r.Context())
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) drawWinner(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.DrawWinner(r.Context())
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}
