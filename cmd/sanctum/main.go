package main

import (
	"context"
	"net/http"
	"os"

	"sanctum/internal/logging"
	"sanctum/internal/store"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		logging.New(logging.Config{}).Fatal(err, "load config")
	}

	logger := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: os.Stdout,
	})
	logging.SetGlobalLogger(logger)

	db, err := openDatabase(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal(err, "connect to database")
	}
	defer db.Close()

	dataStore := store.New(db)
	if err := dataStore.EnsureSchema(context.Background()); err != nil {
		logger.Fatal(err, "ensure schema")
	}
	if err := bootstrapDemoData(context.Background(), dataStore); err != nil {
		logger.Fatal(err, "bootstrap demo data")
	}

	handler, svcs := newHTTPHandler(cfg, dataStore, logger)
	warmCaches(logger, svcs)

	logger.Info("API listening on " + cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Fatal(err, "server error")
	}
}
