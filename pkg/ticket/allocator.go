// Package ticket picks collision-free ticket numbers.
package ticket

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/joshuatochinwachi/ronhub-raffle/internal/metrics"
)

// DefaultAttempts is the number of random probes before giving up.
const DefaultAttempts = 50

// ErrExhausted is returned when no free id was found within the attempt bound.
var ErrExhausted = errors.New("no free ticket id found")

// IDChecker reports whether a ticket id is already taken.
type IDChecker interface {
	TicketIDExists(ctx context.Context, id int64) (bool, error)
}

// Allocator draws ticket ids uniformly from [1, maxTickets] and probes the ledger until it finds a free one.
// The probe is advisory: the ledger's primary key still decides a race between two purchases.
type Allocator struct {
	ids       IDChecker
	attempts  int
	candidate func(maxTickets int64) int64
}

// Option configures an Allocator.
type Option func(*Allocator)

// WithAttempts sets the probe bound.
func WithAttempts(n int) Option {
	return func(a *Allocator) {
		if n > 0 {
			a.attempts = n
		}
	}
}

// WithCandidateSource replaces the random generator; fn must return values in [1, maxTickets].
func WithCandidateSource(fn func(maxTickets int64) int64) Option {
	return func(a *Allocator) {
		a.candidate = fn
	}
}

// NewAllocator creates an allocator backed by the given id checker.
func NewAllocator(ids IDChecker, opts ...Option) *Allocator {
	a := &Allocator{
		ids:       ids,
		attempts:  DefaultAttempts,
		candidate: randomCandidate,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// randomCandidate is uniform over [1, maxTickets].
func randomCandidate(maxTickets int64) int64 {
	return rand.Int64N(maxTickets) + 1
}

// Allocate returns an id in [1, maxTickets] that was free when probed.
func (a *Allocator) Allocate(ctx context.Context, maxTickets int64) (int64, error) {
	if maxTickets < 1 {
		return 0, fmt.Errorf("invalid ticket bound %d", maxTickets)
	}

	id, used, err := Retry(ctx, a.attempts,
		func() int64 { return a.candidate(maxTickets) },
		func(ctx context.Context, id int64) (bool, error) {
			taken, err := a.ids.TicketIDExists(ctx, id)
			return !taken, err
		},
	)
	metrics.TicketAllocationAttempts.Observe(float64(used))

	switch {
	case errors.Is(err, ErrAttemptsExhausted):
		return 0, fmt.Errorf("%w after %d attempts", ErrExhausted, used)
	case err != nil:
		return 0, fmt.Errorf("failed to probe ticket id: %w", err)
	}
	return id, nil
}
