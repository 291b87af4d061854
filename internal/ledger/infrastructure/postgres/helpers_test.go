package postgres

import (
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/somanmedha/banking-application/internal/ledger/domain"
	"github.com/stretchr/testify/assert"
)

var testCreatedAt = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

var accountRowColumns = []string{"id", "holder_name", "balance", "opening_balance", "created_at"}

type decimalArg struct {
	expected decimal.Decimal
}

func (a decimalArg) Match(v any) bool {
	actual, ok := v.(decimal.Decimal)
	return ok && actual.Equal(a.expected)
}

func decimalEq(value int64) pgxmock.Argument {
	return decimalArg{expected: decimal.NewFromInt(value)}
}

func int64Ptr(v int64) *int64 {
	return &v
}

func assertAccountsEqual(t *testing.T, expected, actual []domain.Account) {
	t.Helper()

	if !assert.Len(t, actual, len(expected)) {
		return
	}

	for i := range expected {
		assert.Equal(t, expected[i].ID, actual[i].ID)
		assert.Equal(t, expected[i].HolderName, actual[i].HolderName)
		assert.True(t, expected[i].Balance.Equal(actual[i].Balance), "balance: want %s, got %s", expected[i].Balance, actual[i].Balance)
		assert.True(t, expected[i].OpeningBalance.Equal(actual[i].OpeningBalance), "opening balance: want %s, got %s", expected[i].OpeningBalance, actual[i].OpeningBalance)
		assert.True(t, expected[i].CreatedAt.Equal(actual[i].CreatedAt))
	}
}
