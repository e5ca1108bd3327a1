// Package draw picks the raffle winner once the sale has closed and reports raffle state.
package draw

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/joshuatochinwachi/ronhub-raffle/internal/metrics"
	apperrors "github.com/joshuatochinwachi/ronhub-raffle/pkg/app/errors"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/config"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/ledger"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/raffle"
)

var (
	ErrTooEarly     = errors.New("raffle has not ended")
	ErrNoTickets    = errors.New("no tickets sold")
	ErrAlreadyDrawn = ledger.ErrAlreadyDrawn
)

// Store is the narrow ledger interface the draw service needs.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	GetWinnerState(ctx context.Context) (*raffle.RaffleState, error)
	ListTickets(ctx context.Context, opts ...ledger.QueryOption) ([]*raffle.Ticket, error)
	CountTickets(ctx context.Context) (int, error)
	RecordWinner(ctx context.Context, state *raffle.RaffleState) error
}

// Service defines the draw and raffle-info operations
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	DrawWinner(ctx context.Context) (*raffle.DrawResponse, error)
	Info(ctx context.Context) (*raffle.Info, error)
}

// IndexSource returns a uniform index in [0, n).
type IndexSource func(n int) (int, error)

type drawService struct {
	cfg    config.RaffleConfig
	store  Store
	logger *zap.Logger
	now    func() time.Time
	index  IndexSource
}

// Option configures the draw service.
type Option func(*drawService)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *drawService) {
		s.now = now
	}
}

// WithIndexSource overrides the crypto/rand winner index.
func WithIndexSource(src IndexSource) Option {
	return func(s *drawService) {
		s.index = src
	}
}

// NewService creates a new draw service
func NewService(cfg config.RaffleConfig, store Store, logger *zap.Logger, opts ...Option) Service {
	s := &drawService{
		cfg:    cfg,
		store:  store,
		logger: logger,
		now:    time.Now,
		index:  cryptoIndex,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func cryptoIndex(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// DrawWinner picks one ticket uniformly at random and records it as the winner.
// Only one draw can ever be recorded; later calls fail with a conflict and change nothing.
func (s *drawService) DrawWinner(ctx context.Context) (*raffle.DrawResponse, error) {
	resp, err := s.drawWinner(ctx)
	metrics.DrawsTotal.WithLabelValues(drawStatus(err)).Inc()
	return resp, err
}

func (s *drawService) drawWinner(ctx context.Context) (*raffle.DrawResponse, error) {
	now := s.now()
	if now.Before(s.cfg.EndDate) {
		return nil, apperrors.BadRequestError(ErrTooEarly, "Raffle has not ended yet")
	}

	_, err := s.store.GetWinnerState(ctx)
	switch {
	case err == nil:
		return nil, apperrors.ConflictError(ErrAlreadyDrawn, "Winner has already been drawn")
	case !errors.Is(err, ledger.ErrNoWinner):
		return nil, apperrors.GeneralError(fmt.Errorf("failed to load winner state: %w", err))
	}

	tickets, err := s.store.ListTickets(ctx, ledger.OrderByID())
	if err != nil {
		return nil, apperrors.GeneralError(fmt.Errorf("failed to list tickets: %w", err))
	}
	if len(tickets) == 0 {
		return nil, apperrors.BadRequestError(ErrNoTickets, "No tickets sold")
	}

	idx, err := s.index(len(tickets))
	if err != nil {
		return nil, apperrors.GeneralError(fmt.Errorf("failed to draw random index: %w", err))
	}
	if idx < 0 || idx >= len(tickets) {
		return nil, apperrors.GeneralError(fmt.Errorf("winner index %d out of range [0, %d)", idx, len(tickets)))
	}
	winner := tickets[idx]

	state := &raffle.RaffleState{
		DrawID:         uuid.NewString(),
		WinnerTicketID: winner.ID,
		WinnerAddress:  winner.BuyerAddress,
		WinnerTxHash:   winner.TxHash,
		DrawnAt:        now.UTC(),
		IsComplete:     true,
	}
	if err = s.store.RecordWinner(ctx, state); err != nil {
		if errors.Is(err, ledger.ErrAlreadyDrawn) {
			return nil, apperrors.ConflictError(ErrAlreadyDrawn, "Winner has already been drawn")
		}
		return nil, apperrors.GeneralError(fmt.Errorf("failed to record winner: %w", err))
	}

	s.logger.Info("Winner drawn",
		zap.String("draw_id", state.DrawID),
		zap.Int64("ticket_id", state.WinnerTicketID),
		zap.String("wallet", state.WinnerAddress),
		zap.Int("total_tickets", len(tickets)),
	)

	return &raffle.DrawResponse{
		Success:      true,
		Winner:       raffle.NewWinner(state),
		TotalTickets: len(tickets),
	}, nil
}

// Info reports the raffle configuration together with live sales and draw state.
func (s *drawService) Info(ctx context.Context) (*raffle.Info, error) {
	total, err := s.store.CountTickets(ctx)
	if err != nil {
		return nil, apperrors.GeneralError(fmt.Errorf("failed to count tickets: %w", err))
	}

	state, err := s.store.GetWinnerState(ctx)
	if err != nil && !errors.Is(err, ledger.ErrNoWinner) {
		return nil, apperrors.GeneralError(fmt.Errorf("failed to load winner state: %w", err))
	}

	now := s.now()
	stage := raffle.StageAt(now, s.cfg.EndDate, state != nil)
	return &raffle.Info{
		Prize:        s.cfg.Prize,
		PriceDisplay: s.cfg.PrizeValueDisplay,
		TicketPrice:  s.cfg.TicketPrice,
		Currency:     s.cfg.Currency,
		TotalTickets: total,
		MaxTickets:   s.cfg.MaxTickets,
		EndDate:      s.cfg.EndDate,
		IsActive:     stage == raffle.StageOpen,
		Stage:        stage,
		Winner:       raffle.NewWinner(state),
	}, nil
}

func drawStatus(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrTooEarly):
		return "too_early"
	case errors.Is(err, ErrAlreadyDrawn):
		return "already_drawn"
	case errors.Is(err, ErrNoTickets):
		return "no_tickets"
	default:
		return "error"
	}
}
