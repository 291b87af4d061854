package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/google/subcommands"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/somanmedha/banking-application/internal/ledger/application"
	"github.com/somanmedha/banking-application/internal/ledger/bootstrap"
	"github.com/somanmedha/banking-application/internal/ledger/domain"
	ledgerhttp "github.com/somanmedha/banking-application/internal/ledger/infrastructure/http"
	"github.com/somanmedha/banking-application/internal/ledger/infrastructure/postgres"
	"github.com/somanmedha/banking-application/internal/pkg/database"
	"github.com/somanmedha/banking-application/internal/pkg/logging"
	"github.com/somanmedha/banking-application/migrations"
)

const networkProtocol = "tcp"

type serveCmd struct {
	logger  logging.Logger
	migrate bool
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the ledger HTTP service" }
func (*serveCmd) Usage() string {
	return `ledger serve [-migrate]

  Starts the HTTP API on HTTP_PORT and serves until SIGINT or SIGTERM.
  Database settings come from the DB_* environment variables.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.migrate, "migrate", false, "Apply pending migrations before serving. Same as MIGRATE_ON_START=true.")
}

func (c *serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := bootstrap.LoadLedgerConfig()
	if err != nil {
		c.logger.Error("failed to load config", "error", err.Error())
		return subcommands.ExitUsageError
	}
	cfg.MigrateOnStart = cfg.MigrateOnStart || c.migrate

	lis, err := net.Listen(networkProtocol, cfg.HttpPort)
	if err != nil {
		c.logger.Error("failed to listen", "addr", cfg.HttpPort, "error", err.Error())
		return subcommands.ExitFailure
	}

	app := bootstrap.NewLedgerApp(cfg, c.logger)
	err = app.Run(ctx, lis)
	app.Shutdown()

	if err != nil {
		c.logger.Error("ledger stopped with error", "error", err.Error())
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

type migrateCmd struct {
	logger logging.Logger
}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "apply pending schema migrations" }
func (*migrateCmd) Usage() string {
	return `ledger migrate

  Applies every embedded migration that has not run yet against the database
  described by the DB_* environment variables.
`
}

func (*migrateCmd) SetFlags(*flag.FlagSet) {}

func (c *migrateCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := bootstrap.LoadLedgerConfig()
	if err != nil {
		c.logger.Error("failed to load config", "error", err.Error())
		return subcommands.ExitUsageError
	}

	err = database.MigrateDatabase(ctx, cfg.DbSettings.GetUrl(), migrations.FS, c.logger)
	if err != nil {
		c.logger.Error("migration failed", "error", err.Error())
		return subcommands.ExitFailure
	}

	c.logger.Info("database migrated")
	return subcommands.ExitSuccess
}

type reconcileCmd struct {
	logger    logging.Logger
	accountID int64
}

func (*reconcileCmd) Name() string     { return "reconcile" }
func (*reconcileCmd) Synopsis() string { return "replay an account journal and compare it with its balance" }
func (*reconcileCmd) Usage() string {
	return `ledger reconcile -id <account_id>

  Prints the reconciliation of one account as JSON and exits with a failure
  status when the stored balance does not match the replayed journal.
`
}

func (c *reconcileCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.accountID, "id", 0, "The account to reconcile.")
}

func (c *reconcileCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.accountID <= 0 {
		fmt.Fprintln(os.Stderr, "a positive -id is required")
		return subcommands.ExitUsageError
	}

	cfg, err := bootstrap.LoadLedgerConfig()
	if err != nil {
		c.logger.Error("failed to load config", "error", err.Error())
		return subcommands.ExitUsageError
	}

	dbpool, err := pgxpool.New(ctx, cfg.DbSettings.GetUrl())
	if err != nil {
		c.logger.Error("failed to connect to database", "error", err.Error())
		return subcommands.ExitFailure
	}
	defer dbpool.Close()

	transactionsRepository := postgres.NewTransactionsRepository(dbpool)
	journal := application.NewTransactionJournal(postgres.NewAccountsRepository(dbpool), transactionsRepository, transactionsRepository)

	reconciliation, err := journal.Reconcile(ctx, c.accountID)
	if err != nil {
		c.logger.Error("reconciliation failed", "account_id", c.accountID, "error", err.Error())
		return subcommands.ExitFailure
	}

	if err := printReconciliation(os.Stdout, reconciliation); err != nil {
		c.logger.Error("failed to print reconciliation", "error", err.Error())
		return subcommands.ExitFailure
	}

	if !reconciliation.Consistent {
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

func printReconciliation(w io.Writer, reconciliation domain.Reconciliation) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ledgerhttp.ToReconciliationResponse(reconciliation))
}
