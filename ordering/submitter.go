package ordering

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/shadecart/shadecart/cart"
)

// CartSource is the part of the cart store an order is placed from.
type CartSource interface {
	Snapshot() []cart.LineItem
	Clear(ctx context.Context) error
}

// TokenSource returns the session bearer token, or "" when logged out.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type Receipt struct {
	BillNo string
}

// Submitter places orders from the cart. A failed submission leaves the cart
// untouched; nothing is retried and no idempotency key is sent, so placing
// again after a lost response can create a second order.
type Submitter struct {
	api      *Client
	cart     CartSource
	tokens   TokenSource
	logger   *zap.Logger
	inFlight atomic.Bool
	now      func() time.Time
}

func NewSubmitter(api *Client, c CartSource, tokens TokenSource, logger *zap.Logger) *Submitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Submitter{
		api:    api,
		cart:   c,
		tokens: tokens,
		logger: logger.Named("ordering"),
		now:    time.Now,
	}
}

// PlaceOrder submits the current cart. On success the cart is cleared and the
// receipt returned; if only the clearing fails to persist, both the receipt
// and a *cart.PersistenceError are returned.
func (s *Submitter) PlaceOrder(ctx context.Context) (*Receipt, error) {
	items := s.cart.Snapshot()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInProgress
	}
	defer s.inFlight.Store(false)

	billNo, err := s.api.CreateOrder(ctx, token, ToOrderItems(items))
	if err != nil {
		s.logger.Warn("failed to place order", zap.Int("items", len(items)), zap.Error(err))
		return nil, err
	}

	receipt := &Receipt{BillNo: billNo}
	s.logger.Info("order placed", zap.String("billno", billNo), zap.Int("items", len(items)))

	if err := s.cart.Clear(ctx); err != nil {
		s.logger.Error("order placed but cart not cleared", zap.String("billno", billNo), zap.Error(err))
		return receipt, err
	}
	return receipt, nil
}

// History lists orders placed between from and to. Zero values default to
// the last month.
func (s *Submitter) History(ctx context.Context, from, to time.Time) ([]Order, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}

	if to.IsZero() {
		to = s.now()
	}
	if from.IsZero() {
		from = to.AddDate(0, -1, 0)
	}

	orders, err := s.api.ListOrders(ctx, token, from, to)
	if err != nil {
		s.logger.Warn("failed to fetch orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (s *Submitter) token(ctx context.Context) (string, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		s.logger.Warn("failed to read session token", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrNotAuthenticated, err)
	}
	if token == "" {
		return "", ErrNotAuthenticated
	}
	return token, nil
}

// ToOrderItems maps cart lines to order lines. The color sent is the shade
// name, or its hex code when the name is unknown.
func ToOrderItems(items []cart.LineItem) []OrderItem {
	out := make([]OrderItem, 0, len(items))
	for _, item := range items {
		color := item.ColorName
		if color == "" {
			color = item.ColorHex
		}
		out = append(out, OrderItem{
			Category: item.Category,
			Color:    color,
			Quantity: item.Quantity,
		})
	}
	return out
}
