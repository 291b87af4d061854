package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/somanmedha/banking-application/internal/ledger/domain"
	"github.com/somanmedha/banking-application/internal/pkg/logging"
)

type FundsHandler struct {
	funds  domain.FundsService
	audit  domain.AuditService
	logger logging.Logger
}

func NewFundsHandler(funds domain.FundsService, audit domain.AuditService, logger logging.Logger) *FundsHandler {
	return &FundsHandler{
		funds:  funds,
		audit:  audit,
		logger: logger,
	}
}

func (h *FundsHandler) Deposit(c *gin.Context) {
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	var body amountRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	account, err := h.funds.Deposit(c.Request.Context(), accountID, body.Amount)
	if err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toAccountResponse(account))
}

func (h *FundsHandler) Withdraw(c *gin.Context) {
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	var body amountRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	account, err := h.funds.Withdraw(c.Request.Context(), accountID, body.Amount)
	if err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toAccountResponse(account))
}

func (h *FundsHandler) Transfer(c *gin.Context) {
	var body transferRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	err := h.funds.Transfer(c.Request.Context(), body.FromAccountID, body.ToAccountID, body.Amount)
	if err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "transfer completed"})
}

func (h *FundsHandler) ListTransactions(c *gin.Context) {
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	transactions, err := h.funds.ListAccountTransactions(c.Request.Context(), accountID)
	if err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toTransactionResponses(transactions))
}

func (h *FundsHandler) Reconcile(c *gin.Context) {
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	reconciliation, err := h.audit.Reconcile(c.Request.Context(), accountID)
	if err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, ToReconciliationResponse(reconciliation))
}
