package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"food-admin/admin-console/internal/audit"
	"food-admin/admin-console/internal/cli"
	"food-admin/admin-console/internal/session"
	"food-admin/admin-console/internal/storage"
	"food-admin/config"
)

func main() {
	logger := log.New(os.Stderr, "[admin-console] ", log.LstdFlags)

	if err := run(logger); err != nil {
		if errors.Is(err, cli.ErrUsage) {
			logger.Printf("%v (run with -h for help)", err)
			os.Exit(2)
		}
		logger.Printf("ERROR: %v", err)
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConsole()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open client state: %w", err)
	}

	var publisher audit.Publisher = audit.NopPublisher{}
	var feed *audit.Consumer
	if cfg.KafkaBroker != "" {
		writer := config.NewKafkaWriter(cfg.KafkaBroker, cfg.AuditTopic)
		defer writer.Close()
		publisher = audit.NewKafkaPublisher(writer)

		reader := config.NewKafkaReader(cfg.KafkaBroker, cfg.AuditTopic, cfg.AuditGroup)
		defer reader.Close()
		feed = audit.NewConsumer(reader)
	}

	app := cli.New(cfg, store, publisher, nil, os.Stdin, os.Stdout, logger)
	app.AuditFeed = feed
	return app.Run(ctx, os.Args[1:])
}

func openStore(ctx context.Context, cfg config.Console) (session.Store, error) {
	switch cfg.SessionBackend {
	case "redis":
		return storage.NewRedisStore(config.MustInitRedis()), nil
	case "postgres":
		store := storage.NewPostgresStore(config.MustInitPostgres())
		if err := store.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return store, nil
	case "file", "":
		return storage.NewFileStore(cfg.SessionFile), nil
	default:
		return nil, errors.New("SESSION_BACKEND must be file, redis or postgres")
	}
}
