package purchase

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/joshuatochinwachi/ronhub-raffle/pkg/app/errors"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/ledger"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/raffle"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/ticket"
)

// memLedger enforces id and tx hash uniqueness under one lock, like the table constraints do.
type memLedger struct {
	mu      sync.Mutex
	byID    map[int64]*raffle.Ticket
	byHash  map[string]int64
	created time.Time
}

func newMemLedger() *memLedger {
	return &memLedger{
		byID:    make(map[int64]*raffle.Ticket),
		byHash:  make(map[string]int64),
		created: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (l *memLedger) HasTxHash(_ context.Context, txHash string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.byHash[txHash]
	return ok, nil
}

func (l *memLedger) TicketIDExists(_ context.Context, id int64) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.byID[id]
	return ok, nil
}

func (l *memLedger) InsertTicket(_ context.Context, t *raffle.Ticket) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.byID[t.ID]; ok {
		return ledger.ErrDuplicateTicketID
	}
	if _, ok := l.byHash[t.TxHash]; ok {
		return ledger.ErrDuplicateTxHash
	}
	l.created = l.created.Add(time.Second)
	t.CreatedAt = l.created
	stored := *t
	l.byID[t.ID] = &stored
	l.byHash[t.TxHash] = t.ID
	return nil
}

func (l *memLedger) CountTickets(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.byID), nil
}

func (l *memLedger) ListTickets(_ context.Context, opts ...ledger.QueryOption) ([]*raffle.Ticket, error) {
	o := ledger.ApplyOptions(opts...)
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []*raffle.Ticket
	for _, t := range l.byID {
		if o.BuyerAddress != nil && t.BuyerAddress != *o.BuyerAddress {
			continue
		}
		c := *t
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type acceptAll struct{}

func (acceptAll) VerifyPayment(context.Context, string, common.Address, common.Address, *big.Int) error {
	return nil
}

// cancelOnVerify accepts the payment and cancels the caller's context, as a client
// disconnect or a request timeout would while the chain lookup is in flight.
type cancelOnVerify struct {
	cancel context.CancelFunc
}

func (c cancelOnVerify) VerifyPayment(context.Context, string, common.Address, common.Address, *big.Int) error {
	c.cancel()
	return nil
}

func newScenarioService(maxTickets int64) (Service, *memLedger) {
	l := newMemLedger()
	cfg := testRaffleConfig()
	cfg.MaxTickets = maxTickets
	return NewService(cfg, l, acceptAll{}, ticket.NewAllocator(l), zap.NewNop()), l
}

func txHashN(n int) string {
	return fmt.Sprintf("0x%064x", n)
}

func TestScenario_SoldOutAfterAllSlotsFilled(t *testing.T) {
	svc, l := newScenarioService(3)
	ctx := context.Background()

	seen := make(map[int64]bool)
	for i := 1; i <= 3; i++ {
		resp, err := svc.BuyTicket(ctx, &raffle.BuyTicketRequest{BuyerAddress: testBuyer, TxHash: txHashN(i)})
		if err != nil {
			t.Fatalf("purchase %d failed: %v", i, err)
		}
		if resp.TicketNumber < 1 || resp.TicketNumber > 3 {
			t.Fatalf("ticket %d out of range", resp.TicketNumber)
		}
		if seen[resp.TicketNumber] {
			t.Fatalf("ticket %d issued twice", resp.TicketNumber)
		}
		seen[resp.TicketNumber] = true
		if resp.TotalTickets != i {
			t.Fatalf("expected total %d, got %d", i, resp.TotalTickets)
		}
	}

	_, err := svc.BuyTicket(ctx, &raffle.BuyTicketRequest{BuyerAddress: testBuyer, TxHash: txHashN(4)})
	if !apperrors.Is(err, apperrors.CategoryGone) {
		t.Fatalf("expected sold out error, got %v", err)
	}
	if !errors.Is(err, ticket.ErrExhausted) {
		t.Fatalf("expected ErrExhausted cause, got %v", err)
	}
	if n, _ := l.CountTickets(ctx); n != 3 {
		t.Fatalf("expected 3 tickets, got %d", n)
	}
}

func TestScenario_ConcurrentDistinctPurchases(t *testing.T) {
	svc, l := newScenarioService(10000)
	ctx := context.Background()

	const buyers = 20
	ids := make([]int64, buyers)
	var g errgroup.Group
	for i := 0; i < buyers; i++ {
		g.Go(func() error {
			resp, err := svc.BuyTicket(ctx, &raffle.BuyTicketRequest{BuyerAddress: testBuyer, TxHash: txHashN(100 + i)})
			if err != nil {
				return err
			}
			ids[i] = resp.TicketNumber
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent purchase failed: %v", err)
	}

	seen := make(map[int64]bool, buyers)
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("ticket %d issued twice", id)
		}
		seen[id] = true
	}
	if n, _ := l.CountTickets(ctx); n != buyers {
		t.Fatalf("expected %d tickets, got %d", buyers, n)
	}
}

func TestScenario_ConcurrentSameTxHash(t *testing.T) {
	svc, l := newScenarioService(10000)
	ctx := context.Background()
	req := raffle.BuyTicketRequest{BuyerAddress: testBuyer, TxHash: txHashN(7)}

	const attempts = 8
	errs := make([]error, attempts)
	var g errgroup.Group
	for i := 0; i < attempts; i++ {
		g.Go(func() error {
			r := req
			_, errs[i] = svc.BuyTicket(ctx, &r)
			return nil
		})
	}
	_ = g.Wait()

	succeeded := 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case !apperrors.Is(err, apperrors.CategoryDataConflict):
			t.Fatalf("expected conflict for duplicate tx hash, got %v", err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("expected exactly one success, got %d", succeeded)
	}
	if n, _ := l.CountTickets(ctx); n != 1 {
		t.Fatalf("expected 1 ticket, got %d", n)
	}
}

func TestScenario_CaseVariantsOfOneHashFundOneTicket(t *testing.T) {
	svc, _ := newScenarioService(10000)
	ctx := context.Background()

	if _, err := svc.BuyTicket(ctx, &raffle.BuyTicketRequest{BuyerAddress: testBuyer, TxHash: testTxHash}); err != nil {
		t.Fatalf("first purchase failed: %v", err)
	}
	_, err := svc.BuyTicket(ctx, &raffle.BuyTicketRequest{BuyerAddress: testBuyer, TxHash: testTxHashL})
	if !apperrors.Is(err, apperrors.CategoryDataConflict) {
		t.Fatalf("expected conflict for case variant, got %v", err)
	}

	resp, err := svc.ListTickets(ctx, testBuyer)
	if err != nil {
		t.Fatalf("ListTickets failed: %v", err)
	}
	if resp.TotalTickets != 1 || resp.Tickets[0].TxHash != testTxHashL {
		t.Fatalf("unexpected tickets: %+v", resp)
	}
}

func TestScenario_ClientGoneAfterVerificationKeepsPurchase(t *testing.T) {
	l := newMemLedger()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc := NewService(testRaffleConfig(), l, cancelOnVerify{cancel: cancel}, ticket.NewAllocator(l), zap.NewNop())

	resp, err := svc.BuyTicket(ctx, &raffle.BuyTicketRequest{BuyerAddress: testBuyer, TxHash: testTxHash})
	if err != nil {
		t.Fatalf("expected purchase to succeed once the ticket is stored, got %v", err)
	}
	if !resp.Success || resp.TotalTickets != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}

	stored, err := l.ListTickets(context.Background())
	if err != nil {
		t.Fatalf("ListTickets failed: %v", err)
	}
	if len(stored) != 1 || stored[0].ID != resp.TicketNumber {
		t.Fatalf("expected stored ticket %d, got %+v", resp.TicketNumber, stored)
	}
}
