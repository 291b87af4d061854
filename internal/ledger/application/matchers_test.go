package application

import (
	"fmt"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/somanmedha/banking-application/internal/ledger/domain"
)

type decimalMatcher struct {
	expected decimal.Decimal
}

func (m decimalMatcher) Matches(x interface{}) bool {
	actual, ok := x.(decimal.Decimal)
	return ok && actual.Equal(m.expected)
}

func (m decimalMatcher) String() string {
	return "is decimal " + m.expected.String()
}

func decimalEq(value string) gomock.Matcher {
	return decimalMatcher{expected: decimal.RequireFromString(value)}
}

type transactionMatcher struct {
	expected domain.Transaction
}

func (m transactionMatcher) Matches(x interface{}) bool {
	actual, ok := x.(domain.Transaction)
	if !ok {
		return false
	}

	return actual.AccountID == m.expected.AccountID &&
		actual.Amount.Equal(m.expected.Amount) &&
		actual.Type == m.expected.Type &&
		actual.Direction == m.expected.Direction &&
		actual.CounterpartyID == m.expected.CounterpartyID &&
		actual.Timestamp.Equal(m.expected.Timestamp)
}

func (m transactionMatcher) String() string {
	return fmt.Sprintf("is %s/%s of %s on account %d (counterparty %d) at %s",
		m.expected.Type, m.expected.Direction, m.expected.Amount, m.expected.AccountID,
		m.expected.CounterpartyID, m.expected.Timestamp)
}

func transactionEq(expected domain.Transaction) gomock.Matcher {
	return transactionMatcher{expected: expected}
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}
