package main

import (
	"os"

	"github.com/jacksmith/contacts/internal/cli"
	"github.com/jacksmith/contacts/internal/config"
	"github.com/jacksmith/contacts/internal/logger"
	"github.com/jacksmith/contacts/internal/ops"
	"github.com/jacksmith/contacts/internal/storage"
)

// openManager loads configuration, sets up output and logging, and opens the
// contact manager over the configured backing file.
// The returned cleanup function flushes the logger.
func openManager() (*ops.Manager, func(), error) {
	cfg, err := config.Load(flagConfig, rootCmd.PersistentFlags())
	if err != nil {
		return nil, nil, err
	}

	if flagNoColor || !cfg.Color {
		cli.SetColorEnabled(false)
	}

	log, err := logger.New(cfg.LoggerOptions())
	if err != nil {
		return nil, nil, err
	}
	if cfg.Source != "" {
		log.Debug("using config file", "path", cfg.Source)
	}

	g, err := storage.Open(cfg.File)
	if err != nil {
		log.Sync()
		return nil, nil, err
	}
	log.Debug("storage initialized", "file", g.Path())

	m, err := ops.NewManager(g, log)
	if err != nil {
		log.Sync()
		return nil, nil, err
	}

	return m, log.Sync, nil
}

// reportOutcome prints informational errors to stdout and treats them as
// success. Any other error is returned.
func reportOutcome(err error) error {
	if err != nil && cli.Classify(err) == cli.SeverityInfo {
		cli.Report(os.Stdout, err)
		return nil
	}
	return err
}
