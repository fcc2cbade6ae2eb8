package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/food-del/cliparse"
	"github.com/danielhkuo/food-del/db"
	"github.com/danielhkuo/food-del/router"
	"github.com/danielhkuo/food-del/server"
	"github.com/danielhkuo/food-del/uploads"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], sqlConnector); err != nil {
		slog.Error("startup failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func sqlConnector(cfg cliparse.Config) db.Connector {
	return db.SQLConnector{Type: cfg.DatabaseType, URL: cfg.DatabaseURL}
}

// run starts the server and blocks until ctx is cancelled.
// Any startup failure, including the database, is returned before binding.
func run(ctx context.Context, args []string, connectorFor func(cliparse.Config) db.Connector) error {
	// Parse configuration
	if err := cliparse.LoadEnv(".env"); err != nil {
		return err
	}
	cfg, err := cliparse.ParseFlags(args)
	if err != nil {
		return err
	}
	slog.SetDefault(server.NewLogger(cfg.LogFormat, os.Stdout))

	// Connect to the database; failure is fatal
	dbConn, err := connectorFor(cfg).Connect(ctx)
	if err != nil {
		return err
	}
	defer dbConn.Close()
	slog.Info("Database ready", "type", cfg.DatabaseType)

	store, err := uploads.NewStore(cfg.UploadDir)
	if err != nil {
		return err
	}

	// Middleware, mounts and inline endpoints
	handler, err := router.NewHandler(cfg, router.NewMountTable(dbConn, cfg, store))
	if err != nil {
		return err
	}

	ln, err := server.Listen(cfg.Addr())
	if err != nil {
		return err
	}
	slog.Info("Server Running on http://localhost:"+strconv.Itoa(cfg.Port), "port", cfg.Port)

	if err := server.Serve(ctx, ln, handler); err != nil {
		return err
	}
	slog.Info("Server closed")
	return nil
}
