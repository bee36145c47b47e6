// Package gateway initializes and runs the public HTTP gateway. It dials
// the account service, mounts the JSON endpoints and serves them until a
// shutdown signal arrives.
package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/freshdeal/account-service/internal/gateway/config"
	"github.com/freshdeal/account-service/internal/gateway/httpapi"
	"github.com/freshdeal/account-service/internal/gateway/rpc"
	"github.com/freshdeal/account-service/internal/logging"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	accounts *rpc.Client
	server   *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	accounts, err := rpc.NewClient(rpc.Options{
		Target:      cfg.AccountAddress,
		ServiceName: cfg.ServiceName,
		TokenSecret: cfg.ServiceTokenSecret,
		TokenTTL:    cfg.ServiceTokenTTL,
		MaxRetries:  cfg.MaxRetries,
		BackoffBase: cfg.BackoffBase,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("account client init error: %w", err)
	}

	api := httpapi.NewAPI(accounts, cfg.CallTimeout, logger)
	server := httpapi.NewServer(cfg.HTTPAddress, api.Routes(), logger)

	return &App{config: cfg, logger: logger, accounts: accounts, server: server}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting gateway...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.accounts.Close(); err != nil {
		app.logger.Error(ctx, "account client close error", "error", err)
	}
}
