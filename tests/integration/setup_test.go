package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/somanmedha/banking-application/internal/ledger/bootstrap"
	"github.com/somanmedha/banking-application/internal/pkg/database"
	"github.com/somanmedha/banking-application/internal/pkg/logging"
	"github.com/somanmedha/banking-application/migrations"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	dbName     = "ledger_db"
	dbUser     = "admin"
	dbPassword = "password"
)

type accountBody struct {
	ID             int64           `json:"id"`
	HolderName     string          `json:"holderName"`
	Balance        decimal.Decimal `json:"balance"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
}

type transactionBody struct {
	ID             int64           `json:"id"`
	AccountID      int64           `json:"accountId"`
	Amount         decimal.Decimal `json:"amount"`
	Type           string          `json:"type"`
	Direction      string          `json:"direction"`
	CounterpartyID *int64          `json:"counterpartyId"`
	Timestamp      time.Time       `json:"timestamp"`
}

type reconciliationBody struct {
	AccountID       int64           `json:"accountId"`
	Balance         decimal.Decimal `json:"balance"`
	ExpectedBalance decimal.Decimal `json:"expectedBalance"`
	Consistent      bool            `json:"consistent"`
}

// setupDatabase starts a disposable Postgres, applies the embedded
// migrations and returns settings pointing at it.
func setupDatabase(t *testing.T) database.PostgresSettings {
	t.Helper()

	if testing.Short() {
		t.Skip("integration test needs docker")
	}

	pg, err := postgres.Run(
		t.Context(),
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(context.Background()) })

	dbHost, err := pg.Host(t.Context())
	require.NoError(t, err)
	dbPort, err := pg.MappedPort(t.Context(), "5432/tcp")
	require.NoError(t, err)

	settings := database.PostgresSettings{
		User:       dbUser,
		Password:   dbPassword,
		Host:       dbHost,
		Port:       dbPort.Port(),
		DBName:     dbName,
		SSlEnabled: false,
	}

	require.Eventually(t, func() bool {
		err := database.MigrateDatabase(t.Context(), settings.GetUrl(), migrations.FS, logging.NopLogger)
		return err == nil
	}, 30*time.Second, 500*time.Millisecond)

	return settings
}

func newPool(t *testing.T, settings database.PostgresSettings) *pgxpool.Pool {
	t.Helper()

	pool, err := pgxpool.New(t.Context(), settings.GetUrl())
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

// startLedger serves the full HTTP stack on a random local port and returns
// its base URL.
func startLedger(t *testing.T, settings database.PostgresSettings) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := bootstrap.DefaultLedgerConfig()
	cfg.DbSettings = settings

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	app := bootstrap.NewLedgerApp(cfg, logging.NopLogger)

	done := make(chan error, 1)
	go func() {
		done <- app.Run(ctx, lis)
	}()

	t.Cleanup(func() {
		cancel()
		<-done
		app.Shutdown()
	})

	baseURL := "http://" + lis.Addr().String()
	require.Eventually(t, func() bool {
		resp, err := http.Get(baseURL + "/api/accounts")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 10*time.Second, 100*time.Millisecond)

	return baseURL
}

// doJSON sends body as JSON and decodes the response into out when out is
// not nil. It returns the status code.
func doJSON(t *testing.T, method, url string, body any, out any) int {
	t.Helper()

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(t.Context(), method, url, payload)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if out != nil && resp.StatusCode < http.StatusBadRequest {
		require.NoError(t, json.Unmarshal(respBody, out), string(respBody))
	}

	return resp.StatusCode
}
