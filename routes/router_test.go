package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shadecart/shadecart/initializers"
)

const testSecret = "router-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type fixedBills string

func (b fixedBills) Next(context.Context, *gorm.DB) (string, error) {
	return string(b), nil
}

func setup(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("FROM_EMAIL", "")

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	previousDB, previousBills := initializers.DB, initializers.Bills
	initializers.DB, initializers.Bills = db, fixedBills("1001")
	t.Cleanup(func() {
		initializers.DB, initializers.Bills = previousDB, previousBills
		sqlDB.Close()
	})
	return mock
}

func bearer(t *testing.T, userID uint, authority string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   userID,
		"authority": authority,
		"exp":       time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

func do(router http.Handler, method, path, authorization, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPlaceOrderThroughRouter(t *testing.T) {
	mock := setup(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `orders`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `order_items`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	w := do(NewRouter(), http.MethodPost, "/api/orders", bearer(t, 3, "user"),
		`{"items":[{"category":"Enamel","color":"Shade 4","quantity":2}]}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"billno":"1001"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrdersRequireToken(t *testing.T) {
	setup(t)

	w := do(NewRouter(), http.MethodPost, "/api/orders", "", `{"items":[]}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Authentication required"}`, w.Body.String())
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	setup(t)
	router := NewRouter()

	for _, path := range []string{"/api/admin/stats", "/api/admin/users", "/api/admin/orders/undelivered"} {
		assert.Equal(t, http.StatusForbidden, do(router, http.MethodGet, path, bearer(t, 3, "user"), "").Code, path)
	}
}

func TestHome(t *testing.T) {
	setup(t)

	w := do(NewRouter(), http.MethodGet, "/", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/orders")
}

func TestCORSConfig(t *testing.T) {
	t.Run("open by default", func(t *testing.T) {
		t.Setenv("CORS_ORIGINS", "")
		config := corsConfig()
		assert.True(t, config.AllowAllOrigins)
		assert.False(t, config.AllowCredentials)
	})

	t.Run("listed origins", func(t *testing.T) {
		t.Setenv("CORS_ORIGINS", "https://shop.example.com, http://localhost:4200")
		config := corsConfig()
		assert.Equal(t, []string{"https://shop.example.com", "http://localhost:4200"}, config.AllowOrigins)
		assert.True(t, config.AllowCredentials)
	})
}
