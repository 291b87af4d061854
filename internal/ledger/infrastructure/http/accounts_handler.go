package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/somanmedha/banking-application/internal/ledger/domain"
	"github.com/somanmedha/banking-application/internal/pkg/logging"
)

type AccountsHandler struct {
	service domain.AccountsService
	logger  logging.Logger
}

func NewAccountsHandler(service domain.AccountsService, logger logging.Logger) *AccountsHandler {
	return &AccountsHandler{
		service: service,
		logger:  logger,
	}
}

func (h *AccountsHandler) CreateAccount(c *gin.Context) {
	var body createAccountRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	account, err := h.service.CreateAccount(c.Request.Context(), body.HolderName, body.Balance)
	if err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, toAccountResponse(account))
}

func (h *AccountsHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.service.ListAccounts(c.Request.Context())
	if err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toAccountResponses(accounts))
}

func (h *AccountsHandler) GetAccount(c *gin.Context) {
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	account, err := h.service.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toAccountResponse(account))
}

func (h *AccountsHandler) DeleteAccount(c *gin.Context) {
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteAccount(c.Request.Context(), accountID); err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: fmt.Sprintf("account %d deleted", accountID)})
}
