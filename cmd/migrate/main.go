package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"go-produtos-api/internal/config"
	"go-produtos-api/internal/database"
	"go-produtos-api/internal/logger"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: migrate [flags] up|down|status\n")
		flag.PrintDefaults()
	}
	timeout := flag.Duration("timeout", 2*time.Minute, "overall deadline")
	flag.Parse()

	slog.SetDefault(logger.New(os.Stderr, os.Getenv("LOG_FORMAT"), os.Getenv("LOG_LEVEL")))

	if err := run(flag.Arg(0), *timeout); err != nil {
		slog.Error("migrate failed", "error", err)
		os.Exit(1)
	}
}

func run(command string, timeout time.Duration) error {
	_ = godotenv.Load()

	databaseURL, err := config.DatabaseURLFromEnv()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	db, err := database.New(ctx, databaseURL, database.Options{
		MaxConns:      1,
		TLSSkipVerify: os.Getenv("DB_TLS_SKIP_VERIFY") != "false",
	})
	if err != nil {
		return err
	}
	defer db.Close()

	switch command {
	case "up", "":
		return db.Migrate(ctx)
	case "down":
		return db.Rollback(ctx)
	case "status":
		return db.Status(ctx)
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
}
