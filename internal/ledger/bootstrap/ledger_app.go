package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/somanmedha/banking-application/internal/ledger/application"
	httpwrap "github.com/somanmedha/banking-application/internal/ledger/infrastructure/http"
	"github.com/somanmedha/banking-application/internal/ledger/infrastructure/postgres"
	"github.com/somanmedha/banking-application/internal/pkg/database"
	"github.com/somanmedha/banking-application/internal/pkg/locking"
	"github.com/somanmedha/banking-application/internal/pkg/logging"
	"github.com/somanmedha/banking-application/migrations"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 5 * time.Second
)

type LedgerApp struct {
	cfg    LedgerConfig
	logger logging.Logger

	server *http.Server
	dbpool *pgxpool.Pool
}

func NewLedgerApp(cfg LedgerConfig, logger logging.Logger) *LedgerApp {
	return &LedgerApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *LedgerApp) Run(ctx context.Context, httpLis net.Listener) error {
	logger := a.logger
	dbURL := a.cfg.DbSettings.GetUrl()

	if a.cfg.MigrateOnStart {
		err := database.MigrateDatabase(ctx, dbURL, migrations.FS, logger)
		if err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}

		logger.Info("database migrated")
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.dbpool = dbpool

	if err := dbpool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	a.server = &http.Server{
		Handler:           NewLedgerRouter(dbpool, a.cfg, logger),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "addr", httpLis.Addr().String())

		if err := a.server.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("error while serving http: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (a *LedgerApp) Shutdown() {
	if a.server != nil {
		a.logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown failed", "error", err.Error())
		}
	}

	if a.dbpool != nil {
		a.dbpool.Close()
	}

	a.logger.Info("ledger stopped")
}

// NewLedgerRouter wires the ledger services on top of the given pool.
func NewLedgerRouter(pool database.QueryTxBeginner, cfg LedgerConfig, logger logging.Logger) *gin.Engine {
	txManager := database.NewDelegateTxManager(pool, logger, cfg.DbLockTimeout)

	accountsRepository := postgres.NewAccountsRepository(pool)
	transactionsRepository := postgres.NewTransactionsRepository(pool)

	registry := application.NewAccountRegistry(accountsRepository, logger)
	journal := application.NewTransactionJournal(accountsRepository, transactionsRepository, transactionsRepository)
	engine := application.NewTransferEngine(
		txManager,
		locking.NewKeyedLocker(),
		accountsRepository,
		accountsRepository,
		journal,
		cfg.LockTimeout,
		logger,
	)

	return httpwrap.NewRouter(
		httpwrap.NewAccountsHandler(registry, logger),
		httpwrap.NewFundsHandler(engine, journal, logger),
		logger,
	)
}
