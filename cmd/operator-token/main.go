// Command operator-token prints a signed bearer token for the draw-winner endpoint.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joshuatochinwachi/ronhub-raffle/pkg/auth"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	ttl := flag.Duration("ttl", 0, "Token lifetime (defaults to operator.token_ttl)")
	flag.Parse()

	cfg, err := config.LoadRaffleServer(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	lifetime := cfg.Operator.TokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	token, err := auth.IssueOperatorToken([]byte(cfg.Operator.Secret), cfg.Operator.Issuer, lifetime, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to issue token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
