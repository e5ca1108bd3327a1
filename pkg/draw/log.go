package draw

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/joshuatochinwachi/ronhub-raffle/pkg/app/errors"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/auth"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/raffle"
)

const serviceName = "DrawService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the draw Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) DrawWinner(ctx context.Context) (resp *raffle.DrawResponse, err error) {
	start := time.Now()
	operator, _ := auth.OperatorFromContext(ctx)

	ls.logger.Info("DrawWinner started",
		zap.String("service", serviceName),
		zap.String("method", "DrawWinner"),
		zap.String("operator", operator),
	)

	defer func() {
		duration := time.Since(start)
		if err != nil {
			ls.failureLogger(err)("DrawWinner failed",
				zap.String("service", serviceName),
				zap.String("method", "DrawWinner"),
				zap.String("operator", operator),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Info("DrawWinner completed",
			zap.String("service", serviceName),
			zap.String("method", "DrawWinner"),
			zap.Int64("ticket_number", resp.Winner.TicketNumber),
			zap.String("wallet", resp.Winner.Wallet),
			zap.Int("total_tickets", resp.TotalTickets),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.DrawWinner(ctx)
}

func (ls *logService) Info(ctx context.Context) (resp *raffle.Info, err error) {
	start := time.Now()

	defer func() {
		if err != nil {
			ls.failureLogger(err)("Info failed",
				zap.String("service", serviceName),
				zap.String("method", "Info"),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
		}
	}()

	return ls.svc.Info(ctx)
}

// failureLogger logs client errors at warn level and everything else at error level.
func (ls *logService) failureLogger(err error) func(string, ...zap.Field) {
	if apperrors.IsInternalError(err) {
		return ls.logger.Error
	}
	return ls.logger.Warn
}
