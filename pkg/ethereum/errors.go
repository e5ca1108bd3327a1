package ethereum

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks a receipt lookup that could not complete (timeout or transport failure).
// It says nothing about the payment and the call is safe to retry.
var ErrUnavailable = errors.New("chain node unavailable")

// FailureReason explains why a payment did not verify.
type FailureReason string

const (
	ReasonNotFound         FailureReason = "not_found"
	ReasonExecutionFailed  FailureReason = "execution_failed"
	ReasonTransferNotFound FailureReason = "transfer_not_found"
	ReasonAmountMismatch   FailureReason = "amount_mismatch"
)

// VerificationError is a definitive negative answer about a payment.
type VerificationError struct {
	Reason FailureReason
	TxHash string
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("payment %s not verified: %s", e.TxHash, e.Reason)
}
