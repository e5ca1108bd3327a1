package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joshuatochinwachi/ronhub-raffle/pkg/app"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/app/api"
	"github.com/joshuatochinwachi/ronhub-raffle/pkg/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadRaffleServer(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	var runner app.Runner = api.NewServer(cfg)
	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Raffle server exited: %v\n", err)
		os.Exit(1)
	}
}
