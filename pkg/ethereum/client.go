package ethereum

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/joshuatochinwachi/ronhub-raffle/pkg/config"
)

// Client is a read-only connection to the EVM node that settles ticket payments.
type Client struct {
	config *config.EthereumConfig
	client *ethclient.Client
	logger *zap.Logger
}

// NewClient dials the node and, when chain_id is configured, checks the node serves that chain.
func NewClient(ctx context.Context, cfg *config.EthereumConfig, logger *zap.Logger) (*Client, error) {
	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Ethereum RPC: %w", err)
	}

	if cfg.ChainID > 0 {
		checkCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
		defer cancel()

		chainID, err := client.ChainID(checkCtx)
		if err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to read chain id: %w", err)
		}
		if chainID.Int64() != cfg.ChainID {
			client.Close()
			return nil, fmt.Errorf("chain id mismatch: node reports %s, configured %d", chainID, cfg.ChainID)
		}
	}

	logger.Info("Connected to Ethereum",
		zap.Int64("chain_id", cfg.ChainID),
		zap.String("rpc_url", cfg.RPCURL))

	return &Client{
		config: cfg,
		client: client,
		logger: logger,
	}, nil
}

// TransactionReceipt returns the receipt of a mined transaction, or go-ethereum's NotFound.
func (c *Client) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	return c.client.TransactionReceipt(ctx, txHash)
}

// Close closes the RPC connection
func (c *Client) Close() {
	c.client.Close()
}
