// Package ledger persists tickets and the single winner record.
package ledger

import (
	"context"
	"errors"

	"github.com/joshuatochinwachi/ronhub-raffle/pkg/raffle"
)

var (
	// ErrDuplicateTicketID is returned when the ticket id is already taken.
	ErrDuplicateTicketID = errors.New("ticket id already exists")
	// ErrDuplicateTxHash is returned when the payment tx hash already funded a ticket.
	ErrDuplicateTxHash = errors.New("transaction hash already used")
	// ErrNoWinner is returned by GetWinnerState before the draw.
	ErrNoWinner = errors.New("winner not drawn")
	// ErrAlreadyDrawn is returned when a winner record already exists.
	ErrAlreadyDrawn = errors.New("winner already drawn")
)

// Store defines the raffle persistence operations.
// Uniqueness of ticket ids and tx hashes is enforced atomically by the store itself.
type Store interface {
	InsertTicket(ctx context.Context, ticket *raffle.Ticket) error
	CountTickets(ctx context.Context) (int, error)
	ListTickets(ctx context.Context, opts ...QueryOption) ([]*raffle.Ticket, error)
	HasTxHash(ctx context.Context, txHash string) (bool, error)
	TicketIDExists(ctx context.Context, id int64) (bool, error)
	GetWinnerState(ctx context.Context) (*raffle.RaffleState, error)
	RecordWinner(ctx context.Context, state *raffle.RaffleState) error
}

// QueryOptions defines options for listing tickets
type QueryOptions struct {
	BuyerAddress *string
	OrderByID    bool
}

// QueryOption is a functional option for listing tickets
type QueryOption func(*QueryOptions)

// WithBuyerAddress filters tickets by buyer. The address is matched case-insensitively.
func WithBuyerAddress(address string) QueryOption {
	return func(opts *QueryOptions) {
		opts.BuyerAddress = &address
	}
}

// OrderByID returns tickets in ascending id order instead of newest first.
func OrderByID() QueryOption {
	return func(opts *QueryOptions) {
		opts.OrderByID = true
	}
}

// ApplyOptions folds opts into a QueryOptions value.
func ApplyOptions(opts ...QueryOption) *QueryOptions {
	options := &QueryOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}
