package ledger

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/joshuatochinwachi/ronhub-raffle/pkg/raffle"
)

// Constraint names assigned by Postgres for TicketDao's primary key and unique column.
const (
	ticketsPKConstraint     = "tickets_pkey"
	ticketsTxHashConstraint = "tickets_tx_hash_key"
)

// winnerRowID is the only id the raffle_state table accepts.
const winnerRowID = 1

// TicketDao is a data access object that maps directly to the 'tickets' table.
type TicketDao struct {
	bun.BaseModel `bun:"table:tickets,alias:t"`
	ID            int64     `bun:"id,pk"`
	BuyerAddress  string    `bun:"buyer_address,notnull,type:varchar(42)"`
	TxHash        string    `bun:"tx_hash,unique,notnull,type:varchar(66)"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// RaffleStateDao maps to the single-row 'raffle_state' table holding the winner.
type RaffleStateDao struct {
	bun.BaseModel  `bun:"table:raffle_state,alias:rs"`
	ID             int       `bun:"id,pk"`
	DrawID         string    `bun:"draw_id,notnull,type:uuid"`
	WinnerTicketID int64     `bun:"winner_ticket_id,notnull"`
	WinnerAddress  string    `bun:"winner_address,notnull,type:varchar(42)"`
	WinnerTxHash   string    `bun:"winner_tx_hash,notnull,type:varchar(66)"`
	DrawnAt        time.Time `bun:"drawn_at,notnull"`
	IsComplete     bool      `bun:"is_complete,notnull"`
}

func toTicketDao(t *raffle.Ticket) *TicketDao {
	return &TicketDao{
		ID:           t.ID,
		BuyerAddress: t.BuyerAddress,
		TxHash:       t.TxHash,
		CreatedAt:    t.CreatedAt,
	}
}

func toTicket(dao *TicketDao) *raffle.Ticket {
	return &raffle.Ticket{
		ID:           dao.ID,
		BuyerAddress: dao.BuyerAddress,
		TxHash:       dao.TxHash,
		CreatedAt:    dao.CreatedAt,
	}
}

func toRaffleStateDao(s *raffle.RaffleState) *RaffleStateDao {
	return &RaffleStateDao{
		ID:             winnerRowID,
		DrawID:         s.DrawID,
		WinnerTicketID: s.WinnerTicketID,
		WinnerAddress:  s.WinnerAddress,
		WinnerTxHash:   s.WinnerTxHash,
		DrawnAt:        s.DrawnAt,
		IsComplete:     s.IsComplete,
	}
}

func toRaffleState(dao *RaffleStateDao) *raffle.RaffleState {
	return &raffle.RaffleState{
		DrawID:         dao.DrawID,
		WinnerTicketID: dao.WinnerTicketID,
		WinnerAddress:  dao.WinnerAddress,
		WinnerTxHash:   dao.WinnerTxHash,
		DrawnAt:        dao.DrawnAt,
		IsComplete:     dao.IsComplete,
	}
}
