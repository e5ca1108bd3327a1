package ethereum

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// ExpectedAmount converts a whole-token price into base units: price × quantity × 10^decimals.
func ExpectedAmount(ticketPrice, quantity int64, decimals int32) *big.Int {
	return decimal.NewFromInt(ticketPrice).
		Mul(decimal.NewFromInt(quantity)).
		Shift(decimals).
		BigInt()
}

// FormatAmount renders base units as a human-readable token amount.
func FormatAmount(amount *big.Int, decimals int32) string {
	return decimal.NewFromBigInt(amount, -decimals).String()
}
