// Package raffle holds the domain types shared by the purchase and draw services.
package raffle

import "time"

// Stage is the raffle lifecycle position: open, then closed, then drawn.
type Stage string

const (
	StageOpen   Stage = "open"
	StageClosed Stage = "closed"
	StageDrawn  Stage = "drawn"
)

// StageAt derives the lifecycle stage from the clock, the end date and whether a winner exists.
// A recorded winner always wins over the clock.
func StageAt(now, endDate time.Time, drawn bool) Stage {
	switch {
	case drawn:
		return StageDrawn
	case now.Before(endDate):
		return StageOpen
	default:
		return StageClosed
	}
}

// Ticket is one paid entry. It is written once and never mutated.
type Ticket struct {
	ID           int64
	BuyerAddress string
	TxHash       string
	CreatedAt    time.Time
}

// RaffleState is the single winner record. Its presence means the raffle is drawn.
type RaffleState struct {
	DrawID         string
	WinnerTicketID int64
	WinnerAddress  string
	WinnerTxHash   string
	DrawnAt        time.Time
	IsComplete     bool
}

// BuyTicketRequest is the buy-ticket payload.
type BuyTicketRequest struct {
	BuyerAddress string `json:"buyerAddress"`
	TxHash       string `json:"txHash"`
}

// BuyTicketResponse is returned after a ticket is issued.
type BuyTicketResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	TicketNumber int64  `json:"ticketNumber"`
	TotalTickets int    `json:"totalTickets"`
	TxHash       string `json:"txHash"`
}

// TicketView is the public representation of a ticket.
type TicketView struct {
	ID           int64     `json:"id"`
	BuyerAddress string    `json:"buyer_address"`
	TxHash       string    `json:"tx_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewTicketView converts a Ticket for the API.
func NewTicketView(t *Ticket) TicketView {
	return TicketView{
		ID:           t.ID,
		BuyerAddress: t.BuyerAddress,
		TxHash:       t.TxHash,
		CreatedAt:    t.CreatedAt,
	}
}

// TicketsResponse lists tickets, newest first.
type TicketsResponse struct {
	TotalTickets int          `json:"totalTickets"`
	Tickets      []TicketView `json:"tickets"`
}

// Winner is the public view of the recorded winner.
type Winner struct {
	TicketNumber int64     `json:"ticketNumber"`
	Wallet       string    `json:"wallet"`
	TxHash       string    `json:"txHash"`
	DrawnAt      time.Time `json:"drawnAt"`
}

// NewWinner converts the winner record for the API; nil in, nil out.
func NewWinner(s *RaffleState) *Winner {
	if s == nil {
		return nil
	}
	return &Winner{
		TicketNumber: s.WinnerTicketID,
		Wallet:       s.WinnerAddress,
		TxHash:       s.WinnerTxHash,
		DrawnAt:      s.DrawnAt,
	}
}

// DrawResponse is returned by a successful draw.
type DrawResponse struct {
	Success      bool    `json:"success"`
	Winner       *Winner `json:"winner"`
	TotalTickets int     `json:"totalTickets"`
}

// Info is the raffle-info payload.
type Info struct {
	Prize        string    `json:"prize"`
	PriceDisplay string    `json:"priceDisplay"`
	TicketPrice  int64     `json:"ticketPrice"`
	Currency     string    `json:"currency"`
	TotalTickets int       `json:"totalTickets"`
	MaxTickets   int64     `json:"maxTickets"`
	EndDate      time.Time `json:"endDate"`
	IsActive     bool      `json:"isActive"`
	Stage        Stage     `json:"stage"`
	Winner       *Winner   `json:"winner"`
}
