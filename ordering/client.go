// Package ordering talks to the shadecart backend and turns the cart into
// orders.
package ordering

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const dateLayout = "2006-01-02"

// OrderItem is a line of an order as the backend sees it.
type OrderItem struct {
	Category string `json:"category"`
	Color    string `json:"color"`
	Quantity int    `json:"quantity"`
}

// Order is a placed order as returned by the order history endpoint.
type Order struct {
	ID     uint        `json:"id"`
	BillNo BillNo      `json:"billno"`
	Date   time.Time   `json:"date"`
	Status bool        `json:"status"`
	Items  []OrderItem `json:"items"`
}

func (o Order) Delivered() bool {
	return o.Status
}

// BillNo is a receipt number. The backend may send it as a string or a
// number.
type BillNo string

func (b *BillNo) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*b = BillNo(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*b = BillNo(n.String())
	return nil
}

type Color struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

type Category struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Colors      []Color `json:"colors"`
}

type LoginResult struct {
	Token     string `json:"token"`
	Authority string `json:"authority"`
}

type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type createOrderRequest struct {
	Items []OrderItem `json:"items"`
}

type createOrderResponse struct {
	BillNo BillNo `json:"billno"`
}

// apiError covers both error body shapes the backend uses.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e *apiError) text() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

func (e *apiError) textOr(fallback string) string {
	if text := e.text(); text != "" {
		return text
	}
	return fallback
}

// Client is the HTTP client for the backend API. It never retries.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &Client{http: c}
}

// CreateOrder submits items and returns the receipt number. Only 201 counts
// as success.
func (c *Client) CreateOrder(ctx context.Context, token string, items []OrderItem) (string, error) {
	var (
		result createOrderResponse
		failed apiError
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(createOrderRequest{Items: items}).
		SetResult(&result).
		SetError(&failed).
		Post("/api/orders")
	if err != nil {
		return "", &NetworkError{Err: err}
	}

	if resp.StatusCode() != http.StatusCreated {
		return "", responseError(resp.StatusCode(), &failed)
	}
	return string(result.BillNo), nil
}

// ListOrders returns the caller's orders placed between from and to,
// inclusive, by calendar day.
func (c *Client) ListOrders(ctx context.Context, token string, from, to time.Time) ([]Order, error) {
	var (
		orders []Order
		failed apiError
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetQueryParams(map[string]string{
			"startDate": from.Format(dateLayout),
			"endDate":   to.Format(dateLayout),
		}).
		SetResult(&orders).
		SetError(&failed).
		Get("/api/orders")
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, responseError(resp.StatusCode(), &failed)
	}
	return orders, nil
}

func (c *Client) Login(ctx context.Context, identifier, password string) (LoginResult, error) {
	var (
		result LoginResult
		failed apiError
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"identifier": identifier,
			"password":   password,
		}).
		SetResult(&result).
		SetError(&failed).
		Post("/auth/login")
	if err != nil {
		return LoginResult{}, &NetworkError{Err: err}
	}

	if resp.StatusCode() != http.StatusOK {
		// a bad password is a failed login, not an expired session
		return LoginResult{}, &ServerError{StatusCode: resp.StatusCode(), Message: failed.textOr(loginFailedMessage)}
	}
	return result, nil
}

func (c *Client) Signup(ctx context.Context, req SignupRequest) error {
	var failed apiError

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetError(&failed).
		Post("/auth/signup")
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode() != http.StatusCreated {
		return &ServerError{StatusCode: resp.StatusCode(), Message: failed.textOr(signupFailedMessage)}
	}
	return nil
}

func (c *Client) Catalog(ctx context.Context) ([]Category, error) {
	var (
		categories []Category
		failed     apiError
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&categories).
		SetError(&failed).
		Get("/api/catalog")
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, responseError(resp.StatusCode(), &failed)
	}
	return categories, nil
}

func responseError(status int, failed *apiError) error {
	if status == http.StatusUnauthorized {
		return &AuthenticationError{Message: failed.text()}
	}

	msg := failed.text()
	if msg == "" {
		msg = fallbackMessage
	}
	return &ServerError{StatusCode: status, Message: msg}
}
