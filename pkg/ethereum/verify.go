package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/joshuatochinwachi/ronhub-raffle/internal/metrics"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/ethereum/contracts"
)

// ReceiptFetcher is the part of the chain client the verifier needs.
type ReceiptFetcher interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// PaymentVerifier answers whether a transaction paid an exact token amount to a recipient.
// It never writes anything, so every call is safe to repeat.
type PaymentVerifier struct {
	receipts ReceiptFetcher
	timeout  time.Duration
	logger   *zap.Logger
}

// NewPaymentVerifier creates a verifier whose receipt lookups are bounded by timeout.
func NewPaymentVerifier(receipts ReceiptFetcher, timeout time.Duration, logger *zap.Logger) *PaymentVerifier {
	return &PaymentVerifier{
		receipts: receipts,
		timeout:  timeout,
		logger:   logger,
	}
}

// VerifyPayment succeeds iff the receipt of txHash succeeded and holds an ERC-20 Transfer,
// emitted by tokenContract, to recipient for exactly expectedAmount base units.
//
// A definitive negative answer is a *VerificationError. A lookup that could not complete
// wraps ErrUnavailable.
func (v *PaymentVerifier) VerifyPayment(
	ctx context.Context,
	txHash string,
	recipient common.Address,
	tokenContract common.Address,
	expectedAmount *big.Int,
) error {
	receipt, err := v.fetchReceipt(ctx, common.HexToHash(txHash))
	if err != nil {
		if errors.Is(err, geth.NotFound) {
			return v.reject(txHash, ReasonNotFound)
		}
		metrics.PaymentVerifications.WithLabelValues("unavailable").Inc()
		return fmt.Errorf("%w: receipt %s: %w", ErrUnavailable, txHash, err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return v.reject(txHash, ReasonExecutionFailed)
	}

	if reason, ok := matchTransfer(receipt.Logs, recipient, tokenContract, expectedAmount); !ok {
		return v.reject(txHash, reason)
	}

	metrics.PaymentVerifications.WithLabelValues("verified").Inc()
	return nil
}

func (v *PaymentVerifier) fetchReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	callCtx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	start := time.Now()
	receipt, err := v.receipts.TransactionReceipt(callCtx, hash)
	metrics.OracleRequestDuration.Observe(time.Since(start).Seconds())
	if err == nil && receipt == nil {
		err = geth.NotFound
	}
	return receipt, err
}

func (v *PaymentVerifier) reject(txHash string, reason FailureReason) error {
	metrics.PaymentVerifications.WithLabelValues(string(reason)).Inc()
	v.logger.Debug("Payment not verified", zap.String("tx_hash", txHash), zap.String("reason", string(reason)))
	return &VerificationError{Reason: reason, TxHash: txHash}
}

// matchTransfer scans every log in order. Logs from other contracts and logs that
// do not decode as an ERC-20 Transfer are skipped, so log position never matters.
func matchTransfer(logs []*types.Log, recipient, tokenContract common.Address, expected *big.Int) (FailureReason, bool) {
	paidRecipient := false
	for _, lg := range logs {
		if lg == nil || lg.Address != tokenContract {
			continue
		}
		transfer, err := contracts.ParseERC20Transfer(*lg)
		if err != nil {
			continue
		}
		if transfer.To != recipient {
			continue
		}
		if transfer.Value.Cmp(expected) == 0 {
			return "", true
		}
		paidRecipient = true
	}

	if paidRecipient {
		return ReasonAmountMismatch, false
	}
	return ReasonTransferNotFound, false
}
