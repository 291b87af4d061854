package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/somanmedha/banking-application/internal/ledger/domain"
	"github.com/somanmedha/banking-application/internal/pkg/logging"
)

const (
	AccountIDKey = "id"

	internalErrorMessage = "internal server error"
)

// handleDomainError answers with the domain message only. Wrapping added on
// the way up is dropped.
func handleDomainError(c *gin.Context, logger logging.Logger, err error) {
	var (
		invalidArgumentsErr    *domain.InvalidArgumentsError
		accountNotFoundErr     *domain.AccountNotFoundError
		insufficientBalanceErr *domain.InsufficientBalanceError
		conflictErr            *domain.ConflictError
	)

	switch {
	case errors.As(err, &invalidArgumentsErr):
		c.JSON(http.StatusBadRequest, gin.H{"errors": invalidArgumentsErr.Msg})
	case errors.As(err, &accountNotFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"errors": accountNotFoundErr.Msg})
	case errors.As(err, &insufficientBalanceErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": insufficientBalanceErr.Msg})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"errors": conflictErr.Msg})
	default:
		logger.Error("request failed",
			"request_id", c.GetString(RequestIDKey),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err.Error(),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"errors": internalErrorMessage})
	}
}

func parseAccountID(c *gin.Context) (int64, bool) {
	accountID, err := strconv.ParseInt(c.Param(AccountIDKey), 10, 64)
	if err != nil || accountID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid account id"})
		return 0, false
	}

	return accountID, true
}
