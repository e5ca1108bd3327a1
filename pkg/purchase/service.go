// Package purchase turns a verified on-chain payment into exactly one raffle ticket.
package purchase

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/joshuatochinwachi/ronhub-raffle/internal/metrics"
	apperrors "github.com/joshuatochinwachi/ronhub-raffle/pkg/app/errors"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/auth"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/config"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/ethereum"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/ledger"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/raffle"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/ticket"
)

// ticketsPerPayment is fixed: the ledger allows one ticket per tx hash.
const ticketsPerPayment = 1

const successMessage = "Ticket registered successfully!"

var (
	ErrInvalidRequest = errors.New("invalid buyer address or transaction hash")
	ErrInvalidWallet  = errors.New("invalid wallet address")
	ErrTxHashUsed     = errors.New("transaction hash already used")
)

// Store is the narrow ledger interface the purchase service needs.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	HasTxHash(ctx context.Context, txHash string) (bool, error)
	InsertTicket(ctx context.Context, ticket *raffle.Ticket) error
	CountTickets(ctx context.Context) (int, error)
	ListTickets(ctx context.Context, opts ...ledger.QueryOption) ([]*raffle.Ticket, error)
}

// PaymentVerifier confirms the ERC-20 payment backing a purchase.
//
//go:generate mockery --name PaymentVerifier --output mocks --outpkg mocks --filename mock_payment_verifier.go --with-expecter
type PaymentVerifier interface {
	VerifyPayment(ctx context.Context, txHash string, recipient, tokenContract common.Address, expectedAmount *big.Int) error
}

// TicketAllocator picks a free ticket id.
//
//go:generate mockery --name TicketAllocator --output mocks --outpkg mocks --filename mock_ticket_allocator.go --with-expecter
type TicketAllocator interface {
	Allocate(ctx context.Context, maxTickets int64) (int64, error)
}

// Service defines the ticket purchase operations
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	BuyTicket(ctx context.Context, req *raffle.BuyTicketRequest) (*raffle.BuyTicketResponse, error)
	ListTickets(ctx context.Context, wallet string) (*raffle.TicketsResponse, error)
}

type purchaseService struct {
	store     Store
	verifier  PaymentVerifier
	allocator TicketAllocator
	logger    *zap.Logger

	vault          common.Address
	tokenContract  common.Address
	expectedAmount *big.Int
	maxTickets     int64
	insertRetries  int
	priceText      string
}

// NewService creates a new purchase service
func NewService(
	cfg config.RaffleConfig,
	store Store,
	verifier PaymentVerifier,
	allocator TicketAllocator,
	logger *zap.Logger,
) Service {
	amount := ethereum.ExpectedAmount(cfg.TicketPrice, ticketsPerPayment, cfg.TokenDecimals)
	return &purchaseService{
		store:          store,
		verifier:       verifier,
		allocator:      allocator,
		logger:         logger,
		vault:          common.HexToAddress(cfg.VaultAddress),
		tokenContract:  common.HexToAddress(cfg.TokenContract),
		expectedAmount: amount,
		maxTickets:     cfg.MaxTickets,
		insertRetries:  cfg.InsertRetries,
		priceText:      fmt.Sprintf("%s %s", ethereum.FormatAmount(amount, cfg.TokenDecimals), cfg.Currency),
	}
}

// BuyTicket issues one ticket for a verified payment.
//
// The flow:
//  1. Validates buyer address and tx hash format
//  2. Rejects tx hashes that already funded a ticket
//  3. Verifies the ERC-20 transfer to the vault on chain
//  4. Allocates a free ticket id and inserts the ticket
//
// Step 4 and the total count run detached from the caller's cancellation so a
// dropped client cannot leave a verified payment without its ticket.
// TotalTickets is zero when the count fails after the ticket was inserted.
func (s *purchaseService) BuyTicket(ctx context.Context, req *raffle.BuyTicketRequest) (*raffle.BuyTicketResponse, error) {
	resp, err := s.buyTicket(ctx, req)
	metrics.PurchasesTotal.WithLabelValues(purchaseStatus(err)).Inc()
	return resp, err
}

func (s *purchaseService) buyTicket(ctx context.Context, req *raffle.BuyTicketRequest) (*raffle.BuyTicketResponse, error) {
	if req == nil || !auth.ValidateEVMAddress(req.BuyerAddress) || !auth.ValidateTxHash(req.TxHash) {
		return nil, apperrors.BadRequestError(ErrInvalidRequest, "Invalid address or transaction hash format")
	}
	buyer := auth.NormalizeAddress(req.BuyerAddress)
	txHash := auth.NormalizeTxHash(req.TxHash)

	used, err := s.store.HasTxHash(ctx, txHash)
	if err != nil {
		return nil, apperrors.GeneralError(fmt.Errorf("failed to check tx hash: %w", err))
	}
	if used {
		return nil, apperrors.ConflictError(ErrTxHashUsed, "Transaction hash already used")
	}

	if err = s.verifier.VerifyPayment(ctx, txHash, s.vault, s.tokenContract, s.expectedAmount); err != nil {
		return nil, s.verificationError(err)
	}

	issueCtx := context.WithoutCancel(ctx)
	issued, err := s.issueTicket(issueCtx, buyer, txHash)
	if err != nil {
		return nil, err
	}

	// The ticket is committed at this point; a failed count must not fail the purchase.
	total, err := s.store.CountTickets(issueCtx)
	if err != nil {
		s.logger.Warn("Ticket issued but total count unavailable",
			zap.Int64("ticket_id", issued.ID),
			zap.String("tx_hash", issued.TxHash),
			zap.Error(err),
		)
	} else {
		metrics.TicketsSold.Set(float64(total))
	}

	return &raffle.BuyTicketResponse{
		Success:      true,
		Message:      successMessage,
		TicketNumber: issued.ID,
		TotalTickets: total,
		TxHash:       issued.TxHash,
	}, nil
}

// issueTicket allocates and inserts, re-allocating when another purchase took the id first.
func (s *purchaseService) issueTicket(ctx context.Context, buyer, txHash string) (*raffle.Ticket, error) {
	var lastErr error
	for attempt := 0; attempt <= s.insertRetries; attempt++ {
		id, err := s.allocator.Allocate(ctx, s.maxTickets)
		if err != nil {
			if errors.Is(err, ticket.ErrExhausted) {
				return nil, apperrors.GoneError(err, "Raffle is sold out")
			}
			return nil, apperrors.GeneralError(fmt.Errorf("failed to allocate ticket: %w", err))
		}

		t := &raffle.Ticket{ID: id, BuyerAddress: buyer, TxHash: txHash}
		err = s.store.InsertTicket(ctx, t)
		switch {
		case err == nil:
			return t, nil
		case errors.Is(err, ledger.ErrDuplicateTxHash):
			return nil, apperrors.ConflictError(err, "Transaction hash already used")
		case errors.Is(err, ledger.ErrDuplicateTicketID):
			s.logger.Warn("Ticket id taken concurrently, re-allocating",
				zap.Int64("ticket_id", id),
				zap.Int("attempt", attempt+1),
			)
			lastErr = err
		default:
			return nil, apperrors.GeneralError(fmt.Errorf("failed to insert ticket: %w", err))
		}
	}
	return nil, apperrors.GeneralError(fmt.Errorf("ticket id race not resolved: %w", lastErr))
}

// verificationError maps oracle outcomes to client errors; node failures stay opaque.
func (s *purchaseService) verificationError(err error) error {
	var vErr *ethereum.VerificationError
	if !errors.As(err, &vErr) {
		return apperrors.GeneralError(fmt.Errorf("failed to verify payment: %w", err))
	}

	switch vErr.Reason {
	case ethereum.ReasonNotFound:
		return apperrors.BadRequestError(err, "Transaction not found")
	case ethereum.ReasonExecutionFailed:
		return apperrors.BadRequestError(err, "Transaction failed")
	case ethereum.ReasonAmountMismatch:
		return apperrors.BadRequestError(err, fmt.Sprintf("Transfer amount does not match ticket price of %s", s.priceText))
	default:
		return apperrors.BadRequestError(err, fmt.Sprintf("Valid %s transfer not found in transaction", s.priceText))
	}
}

// ListTickets returns all tickets, or only the wallet's when one is given.
func (s *purchaseService) ListTickets(ctx context.Context, wallet string) (*raffle.TicketsResponse, error) {
	var opts []ledger.QueryOption
	if wallet != "" {
		if !auth.ValidateEVMAddress(wallet) {
			return nil, apperrors.BadRequestError(ErrInvalidWallet, "Invalid wallet address format")
		}
		opts = append(opts, ledger.WithBuyerAddress(auth.NormalizeAddress(wallet)))
	}

	tickets, err := s.store.ListTickets(ctx, opts...)
	if err != nil {
		return nil, apperrors.GeneralError(fmt.Errorf("failed to list tickets: %w", err))
	}

	views := make([]raffle.TicketView, len(tickets))
	for i, t := range tickets {
		views[i] = raffle.NewTicketView(t)
	}
	return &raffle.TicketsResponse{
		TotalTickets: len(views),
		Tickets:      views,
	}, nil
}

func purchaseStatus(err error) string {
	switch {
	case err == nil:
		return "success"
	case apperrors.Is(err, apperrors.CategoryDataError):
		return "rejected"
	case apperrors.Is(err, apperrors.CategoryDataConflict):
		return "duplicate"
	case apperrors.Is(err, apperrors.CategoryGone):
		return "sold_out"
	default:
		return "error"
	}
}
