package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shadecart/shadecart/initializers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubBills struct {
	billNo string
	err    error
}

func (s stubBills) Next(context.Context, *gorm.DB) (string, error) {
	return s.billNo, s.err
}

// useMockDB points initializers.DB at a sqlmock connection for one test.
func useMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	previous := initializers.DB
	initializers.DB = db
	t.Cleanup(func() {
		initializers.DB = previous
		sqlDB.Close()
	})
	return mock
}

func useBills(t *testing.T, bills stubBills) {
	t.Helper()
	previous := initializers.Bills
	initializers.Bills = bills
	t.Cleanup(func() { initializers.Bills = previous })
}

// perform runs handler as the given user. userID 0 leaves the context
// anonymous.
func perform(handler gin.HandlerFunc, method, target string, body any, userID uint, params ...gin.Param) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(method, target, reader)
	ctx.Request.Header.Set("Content-Type", "application/json")
	ctx.Params = params
	if userID != 0 {
		ctx.Set("userId", userID)
	}

	handler(ctx)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

