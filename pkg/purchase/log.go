package purchase

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/joshuatochinwachi/ronhub-raffle/pkg/app/errors"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/raffle"
)

const serviceName = "PurchaseService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the purchase Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) BuyTicket(ctx context.Context, req *raffle.BuyTicketRequest) (resp *raffle.BuyTicketResponse, err error) {
	start := time.Now()

	var buyer, txHash string
	if req != nil {
		buyer, txHash = req.BuyerAddress, req.TxHash
	}
	ls.logger.Info("BuyTicket started",
		zap.String("service", serviceName),
		zap.String("method", "BuyTicket"),
		zap.String("buyer_address", buyer),
		zap.String("tx_hash", txHash),
	)

	defer func() {
		duration := time.Since(start)
		if err != nil {
			ls.failureLogger(err)("BuyTicket failed",
				zap.String("service", serviceName),
				zap.String("method", "BuyTicket"),
				zap.String("tx_hash", txHash),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Info("BuyTicket completed",
			zap.String("service", serviceName),
			zap.String("method", "BuyTicket"),
			zap.Int64("ticket_number", resp.TicketNumber),
			zap.Int("total_tickets", resp.TotalTickets),
			zap.String("tx_hash", resp.TxHash),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.BuyTicket(ctx, req)
}

func (ls *logService) ListTickets(ctx context.Context, wallet string) (resp *raffle.TicketsResponse, err error) {
	start := time.Now()

	defer func() {
		duration := time.Since(start)
		if err != nil {
			ls.failureLogger(err)("ListTickets failed",
				zap.String("service", serviceName),
				zap.String("method", "ListTickets"),
				zap.String("wallet", wallet),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Debug("ListTickets completed",
			zap.String("service", serviceName),
			zap.String("method", "ListTickets"),
			zap.String("wallet", wallet),
			zap.Int("count", resp.TotalTickets),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.ListTickets(ctx, wallet)
}

// failureLogger logs client errors at warn level and everything else at error level.
func (ls *logService) failureLogger(err error) func(string, ...zap.Field) {
	if apperrors.IsInternalError(err) {
		return ls.logger.Error
	}
	return ls.logger.Warn
}
