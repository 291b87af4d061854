package application

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/somanmedha/banking-application/internal/ledger/domain"
)

// amountScale matches the NUMERIC(20,2) columns of the store. Anything finer
// would be rounded by Postgres and break balance/journal equality.
const amountScale = 2

// maxAmountExclusive is the first value NUMERIC(20,2) cannot hold.
var maxAmountExclusive = decimal.New(1, 18)

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return &domain.InvalidArgumentsError{Msg: "amount must be positive"}
	}

	return validateScale(amount)
}

func validateScale(amount decimal.Decimal) error {
	if !amount.Equal(amount.Truncate(amountScale)) {
		return &domain.InvalidArgumentsError{Msg: "amount must have at most 2 decimal places"}
	}

	if !fitsStore(amount) {
		return &domain.InvalidArgumentsError{Msg: "amount is out of range"}
	}

	return nil
}

func fitsStore(amount decimal.Decimal) bool {
	return amount.Abs().LessThan(maxAmountExclusive)
}

func balanceOverflow(accountID int64) error {
	return &domain.InvalidArgumentsError{Msg: fmt.Sprintf("balance of account %d would exceed the supported maximum", accountID)}
}
