package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// RaffleServerConfig represents the raffle server configuration.
// It is built once at startup and passed down by value or pointer; nothing mutates it afterwards.
type RaffleServerConfig struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Ethereum   EthereumConfig   `yaml:"ethereum"`
	Raffle     RaffleConfig     `yaml:"raffle"`
	Operator   OperatorConfig   `yaml:"operator"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"3001" validate:"gt=0,lte=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" default:"60s"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host         string `yaml:"host" default:"localhost" validate:"required"`
	Port         int    `yaml:"port" default:"5432" validate:"gt=0"`
	User         string `yaml:"user" validate:"required"`
	Password     string `yaml:"password"`
	Database     string `yaml:"database" validate:"required"`
	SSLMode      string `yaml:"ssl_mode" default:"disable" validate:"oneof=disable require verify-ca verify-full"`
	MaxOpenConns int    `yaml:"max_open_conns" default:"10" validate:"gt=0"`
}

// EthereumConfig contains settings for the EVM node used to verify payments
type EthereumConfig struct {
	RPCURL         string        `yaml:"rpc_url" validate:"required,url"`
	ChainID        int64         `yaml:"chain_id" validate:"gte=0"`
	RequestTimeout time.Duration `yaml:"request_timeout" default:"10s" validate:"gt=0"`
}

// RaffleConfig contains the raffle parameters
type RaffleConfig struct {
	Prize             string    `yaml:"prize" default:"BGS 7.5 First Edition Charizard"`
	PrizeValueDisplay string    `yaml:"prize_value_display" default:"£19,299.00"`
	TicketPrice       int64     `yaml:"ticket_price" default:"2" validate:"gt=0"`
	Currency          string    `yaml:"currency" default:"USDC" validate:"required"`
	TokenDecimals     int32     `yaml:"token_decimals" default:"6" validate:"gte=0,lte=36"`
	MaxTickets        int64     `yaml:"max_tickets" default:"10000" validate:"gt=0"`
	EndDate           time.Time `yaml:"end_date"`
	VaultAddress      string    `yaml:"vault_address" validate:"required,eth_addr"`
	TokenContract     string    `yaml:"token_contract" validate:"required,eth_addr"`
	// AllocationAttempts bounds the random probes made for a free ticket id.
	AllocationAttempts int `yaml:"allocation_attempts" default:"50" validate:"gt=0"`
	// InsertRetries is how many times a purchase re-allocates after losing an id race on insert.
	InsertRetries int `yaml:"insert_retries" default:"1" validate:"gte=0"`
}

// OperatorConfig contains the credentials accepted on the draw endpoint
type OperatorConfig struct {
	Secret   string        `yaml:"secret" validate:"required,min=16"`
	Issuer   string        `yaml:"issuer" default:"ronhub-raffle"`
	TokenTTL time.Duration `yaml:"token_ttl" default:"1h" validate:"gt=0"`
}

// RateLimitConfig contains per-client request budgets for the mutating endpoints
type RateLimitConfig struct {
	PurchaseRequests int           `yaml:"purchase_requests" default:"100" validate:"gt=0"`
	PurchaseWindow   time.Duration `yaml:"purchase_window" default:"15m" validate:"gt=0"`
	DrawRequests     int           `yaml:"draw_requests" default:"5" validate:"gt=0"`
	DrawWindow       time.Duration `yaml:"draw_window" default:"1m" validate:"gt=0"`
}

// MonitoringConfig contains monitoring settings
type MonitoringConfig struct {
	Enabled bool `yaml:"enabled" default:"true"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// LoadRaffleServer reads the YAML file at path, expands ${VAR} references from the
// environment, applies defaults and validates the result.
func LoadRaffleServer(path string) (*RaffleServerConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseRaffleServer(raw)
}

// ParseRaffleServer builds a RaffleServerConfig from raw YAML.
func ParseRaffleServer(raw []byte) (*RaffleServerConfig, error) {
	cfg := &RaffleServerConfig{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}

	expanded := os.ExpandEnv(string(raw))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks struct tags and the cross-field rules the tags cannot express.
func (c *RaffleServerConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Raffle.EndDate.IsZero() {
		return errors.New("invalid config: raffle.end_date is required")
	}
	return nil
}
