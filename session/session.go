// Package session keeps the logged in user's bearer token on the device.
package session

import (
	"context"
	"errors"

	"github.com/shadecart/shadecart/storage"
)

const (
	TokenKey     = "token"
	AuthorityKey = "authority"
)

// CartClearer is emptied on logout.
type CartClearer interface {
	Clear(ctx context.Context) error
}

type Session struct {
	kv storage.KV
}

func New(kv storage.KV) *Session {
	return &Session{kv: kv}
}

// Token returns the stored bearer token, or "" when nobody is logged in.
func (s *Session) Token(ctx context.Context) (string, error) {
	return s.get(ctx, TokenKey)
}

// Authority returns the stored role ("user" or "admin").
func (s *Session) Authority(ctx context.Context) (string, error) {
	return s.get(ctx, AuthorityKey)
}

func (s *Session) Save(ctx context.Context, token, authority string) error {
	if err := s.kv.Set(ctx, TokenKey, []byte(token)); err != nil {
		return err
	}
	return s.kv.Set(ctx, AuthorityKey, []byte(authority))
}

// Logout forgets the credentials and empties the cart. Every step is
// attempted even if an earlier one fails.
func (s *Session) Logout(ctx context.Context, c CartClearer) error {
	var errs []error
	if err := s.kv.Delete(ctx, TokenKey); err != nil {
		errs = append(errs, err)
	}
	if err := s.kv.Delete(ctx, AuthorityKey); err != nil {
		errs = append(errs, err)
	}
	if c != nil {
		if err := c.Clear(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Session) get(ctx context.Context, key string) (string, error) {
	val, err := s.kv.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(val), nil
}
