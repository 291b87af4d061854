package http

import (
	"github.com/gin-gonic/gin"
	"github.com/somanmedha/banking-application/internal/pkg/logging"
)

func NewRouter(accountsHandler *AccountsHandler, fundsHandler *FundsHandler, logger logging.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), NewRequestIDMiddleware(logger))

	accounts := router.Group("/api/accounts")
	{
		accounts.POST("", accountsHandler.CreateAccount)
		accounts.GET("", accountsHandler.ListAccounts)
		accounts.POST("/transfer", fundsHandler.Transfer)
		accounts.GET("/:"+AccountIDKey, accountsHandler.GetAccount)
		accounts.DELETE("/:"+AccountIDKey, accountsHandler.DeleteAccount)
		accounts.PUT("/:"+AccountIDKey+"/deposit", fundsHandler.Deposit)
		accounts.PUT("/:"+AccountIDKey+"/withdraw", fundsHandler.Withdraw)
		accounts.GET("/:"+AccountIDKey+"/transactions", fundsHandler.ListTransactions)
		accounts.GET("/:"+AccountIDKey+"/reconciliation", fundsHandler.Reconcile)
	}

	return router
}
