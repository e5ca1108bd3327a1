package auth

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const (
	evmAddressLength = 2 + 2*common.AddressLength
	txHashLength     = 2 + 2*common.HashLength
)

// ValidateEVMAddress checks that address is "0x" followed by 40 hex digits.
func ValidateEVMAddress(address string) bool {
	return isPrefixedHex(address, evmAddressLength)
}

// ValidateTxHash checks that hash is "0x" followed by 64 hex digits.
func ValidateTxHash(hash string) bool {
	return isPrefixedHex(hash, txHashLength)
}

func isPrefixedHex(s string, length int) bool {
	if len(s) != length || !strings.HasPrefix(s, "0x") {
		return false
	}
	_, err := hex.DecodeString(s[2:])
	return err == nil
}

// NormalizeAddress returns the lowercase form used for storage and comparison.
func NormalizeAddress(address string) string {
	return strings.ToLower(address)
}

// NormalizeTxHash returns the lowercase form used for storage and comparison.
func NormalizeTxHash(hash string) string {
	return strings.ToLower(hash)
}
