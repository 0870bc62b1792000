package ordering

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadecart/shadecart/cart"
	"github.com/shadecart/shadecart/session"
	"github.com/shadecart/shadecart/storage"
)

type fixture struct {
	kv        *storage.MemoryStore
	cart      *cart.Store
	session   *session.Session
	submitter *Submitter
	calls     *atomic.Int32
}

func newFixture(t *testing.T, handler http.HandlerFunc) *fixture {
	t.Helper()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	kv := storage.NewMemoryStore()
	c := cart.NewStore(kv, nil)
	require.NoError(t, c.Load(context.Background()))
	sess := session.New(kv)

	return &fixture{
		kv:        kv,
		cart:      c,
		session:   sess,
		submitter: NewSubmitter(NewClient(srv.URL, 5*time.Second), c, sess, nil),
		calls:     &calls,
	}
}

func (f *fixture) login(t *testing.T) {
	t.Helper()
	require.NoError(t, f.session.Save(context.Background(), "test-token", "user"))
}

func (f *fixture) fill(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.cart.Add(ctx, cart.LineItem{Category: "Interior", ColorID: "color_1", ColorHex: "#fff", ColorName: "Shade 1", Quantity: 2}))
	require.NoError(t, f.cart.Add(ctx, cart.LineItem{Category: "Exterior", ColorID: "color_7", ColorHex: "#777777", Quantity: 1}))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]string{"billno": "1"})
	})
	f.login(t)

	receipt, err := f.submitter.PlaceOrder(context.Background())

	assert.Nil(t, receipt)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, int32(0), f.calls.Load())
	assert.Equal(t, "Your cart is empty. Add items to place an order.", Message(err))
}

func TestPlaceOrder_NotLoggedIn(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]string{"billno": "1"})
	})
	f.fill(t)

	_, err := f.submitter.PlaceOrder(context.Background())

	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Equal(t, int32(0), f.calls.Load())
	assert.Equal(t, 2, f.cart.Len())
}

func TestPlaceOrder_Created(t *testing.T) {
	var got createOrderRequest
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, http.StatusCreated, map[string]string{"billno": "1042"})
	})
	f.login(t)
	f.fill(t)

	receipt, err := f.submitter.PlaceOrder(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1042", receipt.BillNo)
	assert.True(t, f.cart.IsEmpty())
	assert.Equal(t, []OrderItem{
		{Category: "Interior", Color: "Shade 1", Quantity: 2},
		{Category: "Exterior", Color: "#777777", Quantity: 1},
	}, got.Items)

	stored, err := f.kv.Get(context.Background(), cart.StorageKey)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(stored))
}

func TestPlaceOrder_NumericBillNo(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"billno": 1043}`))
	})
	f.login(t)
	f.fill(t)

	receipt, err := f.submitter.PlaceOrder(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1043", receipt.BillNo)
}

func TestPlaceOrder_ServerError(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to save order"})
	})
	f.login(t)
	f.fill(t)
	before := f.cart.Snapshot()

	receipt, err := f.submitter.PlaceOrder(context.Background())

	assert.Nil(t, receipt)
	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusInternalServerError, serverErr.StatusCode)
	assert.Equal(t, "Failed to save order", Message(err))
	assert.Equal(t, before, f.cart.Snapshot())
}

func TestPlaceOrder_ServerErrorWithoutBody(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})
	f.login(t)
	f.fill(t)

	_, err := f.submitter.PlaceOrder(context.Background())

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, fallbackMessage, Message(err))
	assert.Equal(t, 2, f.cart.Len())
}

func TestPlaceOrder_OKIsNotCreated(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"billno": "1"})
	})
	f.login(t)
	f.fill(t)

	_, err := f.submitter.PlaceOrder(context.Background())

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusOK, serverErr.StatusCode)
	assert.Equal(t, 2, f.cart.Len())
}

func TestPlaceOrder_Unauthorized(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Session expired"})
	})
	f.login(t)
	f.fill(t)

	_, err := f.submitter.PlaceOrder(context.Background())

	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Equal(t, "Session expired", Message(err))
	assert.Equal(t, 2, f.cart.Len())
}

func TestPlaceOrder_NetworkError(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})
	f.login(t)
	f.fill(t)
	f.submitter.api = NewClient("http://127.0.0.1:1", time.Second)

	_, err := f.submitter.PlaceOrder(context.Background())

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, fallbackMessage, Message(err))
	assert.Equal(t, 2, f.cart.Len())
}

func TestPlaceOrder_RejectsConcurrentSubmission(t *testing.T) {
	arrived := make(chan struct{})
	release := make(chan struct{})
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		close(arrived)
		<-release
		writeJSON(w, http.StatusCreated, map[string]string{"billno": "7"})
	})
	f.login(t)
	f.fill(t)

	done := make(chan error, 1)
	go func() {
		_, err := f.submitter.PlaceOrder(context.Background())
		done <- err
	}()

	<-arrived
	_, err := f.submitter.PlaceOrder(context.Background())
	assert.ErrorIs(t, err, ErrSubmissionInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), f.calls.Load())
}

type brokenClear struct {
	*cart.Store
	err error
}

func (b brokenClear) Clear(ctx context.Context) error {
	return b.err
}

func TestPlaceOrder_ClearFailureStillReturnsReceipt(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]string{"billno": "99"})
	})
	f.login(t)
	f.fill(t)

	clearErr := &cart.PersistenceError{Op: "save", Err: errors.New("disk full")}
	f.submitter.cart = brokenClear{Store: f.cart, err: clearErr}

	receipt, err := f.submitter.PlaceOrder(context.Background())

	require.NotNil(t, receipt)
	assert.Equal(t, "99", receipt.BillNo)
	var perr *cart.PersistenceError
	assert.ErrorAs(t, err, &perr)
}

func TestHistory_DefaultsToLastMonth(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders", r.URL.Path)
		assert.Equal(t, "2026-09-17", r.URL.Query().Get("startDate"))
		assert.Equal(t, "2026-10-17", r.URL.Query().Get("endDate"))
		writeJSON(w, http.StatusOK, []map[string]any{
			{
				"id":     3,
				"billno": "1003",
				"date":   "2026-10-01T10:00:00Z",
				"status": true,
				"items":  []map[string]any{{"category": "Interior", "color": "Shade 1", "quantity": 2}},
			},
		})
	})
	f.login(t)
	f.submitter.now = func() time.Time { return time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC) }

	orders, err := f.submitter.History(context.Background(), time.Time{}, time.Time{})

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, BillNo("1003"), orders[0].BillNo)
	assert.True(t, orders[0].Delivered())
	assert.Equal(t, []OrderItem{{Category: "Interior", Color: "Shade 1", Quantity: 2}}, orders[0].Items)
}

func TestHistory_NotLoggedIn(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := f.submitter.History(context.Background(), time.Time{}, time.Time{})

	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Equal(t, int32(0), f.calls.Load())
}

func TestClient_Login(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "secret" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid credentials. Wrong password."})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"token": "jwt", "authority": "admin"})
	})

	res, err := f.submitter.api.Login(context.Background(), "0712345678", "secret")
	require.NoError(t, err)
	assert.Equal(t, LoginResult{Token: "jwt", Authority: "admin"}, res)

	_, err = f.submitter.api.Login(context.Background(), "0712345678", "wrong")
	assert.Equal(t, "Invalid credentials. Wrong password.", Message(err))
	assert.NotErrorIs(t, err, ErrNotAuthenticated)
}

func TestClient_LoginFailureWithoutBody(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("bad gateway"))
	})

	_, err := f.submitter.api.Login(context.Background(), "0712345678", "secret")

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusBadGateway, serverErr.StatusCode)
	assert.Equal(t, loginFailedMessage, Message(err))
}

func TestClient_SignupFailureWithoutBody(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	err := f.submitter.api.Signup(context.Background(), SignupRequest{Email: "asha@example.com"})

	assert.Equal(t, signupFailedMessage, Message(err))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", Message(nil))
	assert.Equal(t, "You must be logged in to place an order.", Message(ErrNotAuthenticated))
	assert.Equal(t, "Your order is already being placed.", Message(ErrSubmissionInProgress))
	assert.Equal(t, fallbackMessage, Message(errors.New("boom")))
}
