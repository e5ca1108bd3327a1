package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/joshuatochinwachi/ronhub-raffle/pkg/raffle"
)

const sqlStateUniqueViolation = "23505"

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the raffle ledger
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

// InsertTicket inserts the ticket and fills CreatedAt from the database clock.
// Address and tx hash are stored lowercase.
func (s *pgStore) InsertTicket(ctx context.Context, ticket *raffle.Ticket) error {
	dao := toTicketDao(ticket)
	dao.BuyerAddress = strings.ToLower(dao.BuyerAddress)
	dao.TxHash = strings.ToLower(dao.TxHash)

	_, err := s.db.NewInsert().
		Model(dao).
		Returning("created_at").
		Exec(ctx)
	if err != nil {
		return classifyInsertError(ticket.ID, err)
	}

	ticket.BuyerAddress = dao.BuyerAddress
	ticket.TxHash = dao.TxHash
	ticket.CreatedAt = dao.CreatedAt
	return nil
}

// classifyInsertError maps unique violations on tickets to the ledger sentinels by constraint name.
func classifyInsertError(id int64, err error) error {
	var pgErr pgdriver.Error
	if !errors.As(err, &pgErr) || pgErr.Field('C') != sqlStateUniqueViolation {
		return fmt.Errorf("failed to insert ticket %d: %w", id, err)
	}

	switch constraint := pgErr.Field('n'); {
	case constraint == ticketsTxHashConstraint, strings.Contains(constraint, "tx_hash"):
		return fmt.Errorf("insert ticket %d: %w", id, ErrDuplicateTxHash)
	case constraint == ticketsPKConstraint:
		return fmt.Errorf("insert ticket %d: %w", id, ErrDuplicateTicketID)
	default:
		return fmt.Errorf("insert ticket %d: unexpected unique violation on %q: %w", id, constraint, err)
	}
}

func (s *pgStore) CountTickets(ctx context.Context) (int, error) {
	count, err := s.db.NewSelect().
		Model((*TicketDao)(nil)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	return count, nil
}

func (s *pgStore) ListTickets(ctx context.Context, opts ...QueryOption) ([]*raffle.Ticket, error) {
	options := ApplyOptions(opts...)

	var daos []TicketDao
	query := s.db.NewSelect().Model(&daos)

	if options.BuyerAddress != nil {
		query = query.Where("buyer_address = ?", strings.ToLower(*options.BuyerAddress))
	}
	if options.OrderByID {
		query = query.Order("id ASC")
	} else {
		query = query.Order("created_at DESC", "id DESC")
	}

	if err := query.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*raffle.Ticket, len(daos))
	for i := range daos {
		tickets[i] = toTicket(&daos[i])
	}
	return tickets, nil
}

func (s *pgStore) HasTxHash(ctx context.Context, txHash string) (bool, error) {
	exists, err := s.db.NewSelect().
		Model((*TicketDao)(nil)).
		Where("tx_hash = ?", strings.ToLower(txHash)).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check tx hash: %w", err)
	}
	return exists, nil
}

func (s *pgStore) TicketIDExists(ctx context.Context, id int64) (bool, error) {
	exists, err := s.db.NewSelect().
		Model((*TicketDao)(nil)).
		Where("id = ?", id).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check ticket id: %w", err)
	}
	return exists, nil
}

func (s *pgStore) GetWinnerState(ctx context.Context) (*raffle.RaffleState, error) {
	dao := new(RaffleStateDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("id = ?", winnerRowID).
		Where("is_complete = TRUE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoWinner
		}
		return nil, fmt.Errorf("failed to get winner state: %w", err)
	}
	return toRaffleState(dao), nil
}

// RecordWinner writes the winner row at most once.
// The insert is a no-op when the row exists, so concurrent draws cannot both succeed.
func (s *pgStore) RecordWinner(ctx context.Context, state *raffle.RaffleState) error {
	dao := toRaffleStateDao(state)
	dao.WinnerAddress = strings.ToLower(dao.WinnerAddress)
	dao.WinnerTxHash = strings.ToLower(dao.WinnerTxHash)

	res, err := s.db.NewInsert().
		Model(dao).
		On("CONFLICT (id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record winner: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return ErrAlreadyDrawn
	}
	return nil
}
