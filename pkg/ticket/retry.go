package ticket

import (
	"context"
	"errors"
)

// ErrAttemptsExhausted is returned by Retry when no candidate was accepted.
var ErrAttemptsExhausted = errors.New("attempts exhausted")

// Retry draws candidates from next and returns the first one accept approves,
// together with the number of attempts used. An accept error stops the loop.
func Retry[T any](
	ctx context.Context,
	attempts int,
	next func() T,
	accept func(context.Context, T) (bool, error),
) (T, int, error) {
	var zero T
	for i := 1; i <= attempts; i++ {
		if err := ctx.Err(); err != nil {
			return zero, i - 1, err
		}

		candidate := next()
		ok, err := accept(ctx, candidate)
		if err != nil {
			return zero, i, err
		}
		if ok {
			return candidate, i, nil
		}
	}
	return zero, attempts, ErrAttemptsExhausted
}
