package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"kasir-terminal/config"
	"kasir-terminal/logging"
	"kasir-terminal/services"
	"kasir-terminal/terminal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	items, err := loadMenu(cfg.Menu.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, "menu:", err)
		os.Exit(1)
	}
	catalog, err := services.NewCatalog(items)
	if err != nil {
		fmt.Fprintln(os.Stderr, "menu:", err)
		os.Exit(1)
	}
	format := services.NewFormatter(cfg.Currency.Prefix)

	// Check for menu subcommand
	if len(os.Args) > 1 && os.Args[1] == "menu" {
		terminal.WriteMenu(os.Stdout, format, catalog)
		return
	}

	log := logging.New("kasir", cfg.Log.Debug)
	defer func() { _ = log.Sync() }()

	session := terminal.New(catalog, format, os.Stdin, os.Stdout, log)
	if err := session.Run(); err != nil {
		log.Fatal("session aborted", zap.Error(err))
	}
}
