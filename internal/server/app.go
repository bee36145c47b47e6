// Package server initializes and runs the account service. It wires the
// database, the Redis-backed session and OTP stores, the lockout tracker
// and the auth orchestrator, then serves them over gRPC until a shutdown
// signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"github.com/freshdeal/account-service/internal/logging"
	"github.com/freshdeal/account-service/internal/server/config"
	gs "github.com/freshdeal/account-service/internal/server/grpc"
	"github.com/freshdeal/account-service/internal/server/lockout"
	"github.com/freshdeal/account-service/internal/server/otp"
	"github.com/freshdeal/account-service/internal/server/repositories/repomanager"
	"github.com/freshdeal/account-service/internal/server/services"
	"github.com/freshdeal/account-service/internal/server/session"
	"github.com/freshdeal/account-service/internal/verify"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	rdb    *redis.Client
	auth   *services.AuthService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	repos := repomanager.NewPostgresRepositoryManager()
	if err := repos.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})

	sessions := session.NewStore(rdb, cfg.SessionTTL)
	codes := otp.NewService(rdb, cfg.OTPSecret, cfg.OTPTTL)
	tracker := lockout.NewTracker(cfg.MaxLoginAttempts)
	mailer := services.NewLogMailer(logger)

	auth := services.NewAuthService(db, repos, sessions, codes, tracker, mailer,
		verify.NewEngine(nil), logger)

	return &App{config: cfg, logger: logger, db: db, rdb: rdb, auth: auth}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.auth, app.config.ServiceTokenSecret)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.close(ctx)
}

func (app *App) close(ctx context.Context) {
	if err := app.rdb.Close(); err != nil {
		app.logger.Error(ctx, "redis close error", "error", err)
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
}
