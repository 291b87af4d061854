package http

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/somanmedha/banking-application/internal/ledger/domain"
)

type createAccountRequestBody struct {
	HolderName string          `json:"holderName" binding:"required"`
	Balance    decimal.Decimal `json:"balance"`
}

type amountRequestBody struct {
	Amount decimal.Decimal `json:"amount"`
}

type transferRequestBody struct {
	FromAccountID int64           `json:"fromAccountId" binding:"required"`
	ToAccountID   int64           `json:"toAccountId" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
}

type accountResponse struct {
	ID             int64           `json:"id"`
	HolderName     string          `json:"holderName"`
	Balance        decimal.Decimal `json:"balance"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type transactionResponse struct {
	ID             int64           `json:"id"`
	AccountID      int64           `json:"accountId"`
	Amount         decimal.Decimal `json:"amount"`
	Type           string          `json:"type"`
	Direction      string          `json:"direction"`
	CounterpartyID *int64          `json:"counterpartyId,omitempty"`
	Timestamp      time.Time       `json:"timestamp"`
}

// ReconciliationResponse is the wire form of a reconciliation, shared by the
// HTTP endpoint and the reconcile command.
type ReconciliationResponse struct {
	AccountID       int64           `json:"accountId"`
	Balance         decimal.Decimal `json:"balance"`
	OpeningBalance  decimal.Decimal `json:"openingBalance"`
	JournalNet      decimal.Decimal `json:"journalNet"`
	ExpectedBalance decimal.Decimal `json:"expectedBalance"`
	Consistent      bool            `json:"consistent"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toAccountResponse(account domain.Account) accountResponse {
	return accountResponse{
		ID:             account.ID,
		HolderName:     account.HolderName,
		Balance:        account.Balance,
		OpeningBalance: account.OpeningBalance,
		CreatedAt:      account.CreatedAt,
	}
}

func toAccountResponses(accounts []domain.Account) []accountResponse {
	result := make([]accountResponse, 0, len(accounts))
	for _, account := range accounts {
		result = append(result, toAccountResponse(account))
	}
	return result
}

func toTransactionResponses(transactions []domain.Transaction) []transactionResponse {
	result := make([]transactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		response := transactionResponse{
			ID:        transaction.ID,
			AccountID: transaction.AccountID,
			Amount:    transaction.Amount,
			Type:      string(transaction.Type),
			Direction: string(transaction.Direction),
			Timestamp: transaction.Timestamp,
		}

		if transaction.CounterpartyID != 0 {
			counterparty := transaction.CounterpartyID
			response.CounterpartyID = &counterparty
		}

		result = append(result, response)
	}
	return result
}

func ToReconciliationResponse(reconciliation domain.Reconciliation) ReconciliationResponse {
	return ReconciliationResponse{
		AccountID:       reconciliation.AccountID,
		Balance:         reconciliation.Balance,
		OpeningBalance:  reconciliation.OpeningBalance,
		JournalNet:      reconciliation.JournalNet,
		ExpectedBalance: reconciliation.ExpectedBalance,
		Consistent:      reconciliation.Consistent,
	}
}
