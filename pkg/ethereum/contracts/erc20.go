package contracts

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ERC20TransferABI is the ABI fragment for the ERC-20 Transfer event.
const ERC20TransferABI = `[{"type":"event","name":"Transfer","inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"value","type":"uint256","indexed":false}],"anonymous":false}]`

// ErrNotTransfer is returned for logs that are not an ERC-20 Transfer event.
var ErrNotTransfer = errors.New("log is not an ERC-20 Transfer event")

var (
	erc20ABI      = mustParseABI(ERC20TransferABI)
	transferEvent = erc20ABI.Events["Transfer"]
)

// TransferEventID is the topic 0 of Transfer(address,address,uint256).
var TransferEventID = transferEvent.ID

// ERC20Transfer represents a decoded Transfer event.
type ERC20Transfer struct {
	From  common.Address
	To    common.Address
	Value *big.Int
	Raw   types.Log
}

// ParseERC20Transfer decodes a Transfer log.
//
// Solidity: event Transfer(address indexed from, address indexed to, uint256 value)
//
// ERC-721 shares the event signature but indexes the third argument; such logs
// fail the topic count check and are rejected.
func ParseERC20Transfer(log types.Log) (*ERC20Transfer, error) {
	if len(log.Topics) == 0 || log.Topics[0] != TransferEventID {
		return nil, ErrNotTransfer
	}

	event := new(ERC20Transfer)
	if err := erc20ABI.UnpackIntoInterface(event, "Transfer", log.Data); err != nil {
		return nil, fmt.Errorf("unpack transfer data: %w", err)
	}

	var indexed abi.Arguments
	for _, arg := range transferEvent.Inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}
	if err := abi.ParseTopics(event, indexed, log.Topics[1:]); err != nil {
		return nil, fmt.Errorf("parse transfer topics: %w", err)
	}

	event.Raw = log
	return event, nil
}

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("invalid ABI: %v", err))
	}
	return parsed
}
