package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/cardman/internal/cli"
	"github.com/iudanet/cardman/internal/iocli"
	"github.com/iudanet/cardman/internal/session"
	sessionboltdb "github.com/iudanet/cardman/internal/session/boltdb"
	"github.com/iudanet/cardman/internal/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	dbPath := flag.String("db", "cardman.db", "Path to record database")
	sessionPath := flag.String("session-db", "cardman-session.db", "Path to session database")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	// Создаем контекст
	ctx := context.Background()

	// Открываем хранилище записей (SQLite)
	store, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open record database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("failed to close record database", "error", err)
		}
	}()

	// Открываем хранилище сессии (BoltDB)
	sessStore, err := sessionboltdb.New(ctx, *sessionPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open session database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := sessStore.Close(); err != nil {
			slog.Error("failed to close session database", "error", err)
		}
	}()

	sessions := session.NewService(sessStore)

	// Первый запуск: устанавливаем PIN по умолчанию
	if err := sessions.EnsureDefaultPin(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize PIN: %v\n", err)
		os.Exit(1)
	}

	// Выполняем команду
	c := cli.New(iocli.NewStdio(), store, sessions)
	c.Run(ctx, command, args[1:])
}

func printVersion() {
	fmt.Printf("Card Manager\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
