package http

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

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

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// newTestContext builds a gin context for calling a handler directly.
func newTestContext(t *testing.T, method string, body any, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var payload []byte
	switch b := body.(type) {
	case nil:
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(b)
		require.NoError(t, err)
	}

	writer := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(writer)
	c.Request = httptest.NewRequest(method, "/", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params

	return c, writer
}

func idParam(value string) gin.Params {
	return gin.Params{{Key: AccountIDKey, Value: value}}
}
