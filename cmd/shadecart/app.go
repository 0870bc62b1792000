package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/shadecart/shadecart/cart"
	"github.com/shadecart/shadecart/ordering"
	"github.com/shadecart/shadecart/session"
	"github.com/shadecart/shadecart/storage"
)

const (
	defaultBackendURL = "http://localhost:8080"
	defaultTimeout    = 15 * time.Second
)

type options struct {
	backendURL string
	dataPath   string
	timeout    time.Duration
	verbose    bool
}

func defaultDataPath() string {
	if path := os.Getenv("SHADECART_DATA"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "shadecart.db"
	}
	return filepath.Join(home, ".shadecart", "device.db")
}

func defaultBackend() string {
	if url := os.Getenv("SHADECART_BACKEND_URL"); url != "" {
		return url
	}
	return defaultBackendURL
}

// app is everything a command needs, wired once per invocation.
type app struct {
	logger    *zap.Logger
	store     *storage.BoltStore
	cart      *cart.Store
	session   *session.Session
	client    *ordering.Client
	submitter *ordering.Submitter
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

func openApp(ctx context.Context, opts options) (*app, error) {
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	store, err := storage.OpenBolt(opts.dataPath)
	if err != nil {
		return nil, fmt.Errorf("open device storage: %w", err)
	}

	cartStore := cart.NewStore(store, logger)
	if err := cartStore.Load(ctx); err != nil {
		// the cart starts empty; the app stays usable
		logger.Warn("cart not restored", zap.Error(err))
	}

	sess := session.New(store)
	client := ordering.NewClient(opts.backendURL, opts.timeout)

	return &app{
		logger:    logger,
		store:     store,
		cart:      cartStore,
		session:   sess,
		client:    client,
		submitter: ordering.NewSubmitter(client, cartStore, sess, logger),
	}, nil
}

func (a *app) Close() error {
	_ = a.logger.Sync()
	return a.store.Close()
}

// userMessage is what the user sees when a command fails.
func userMessage(err error) string {
	var (
		serverErr  *ordering.ServerError
		networkErr *ordering.NetworkError
		persistErr *cart.PersistenceError
	)

	switch {
	case errors.Is(err, ordering.ErrEmptyCart),
		errors.Is(err, ordering.ErrNotAuthenticated),
		errors.Is(err, ordering.ErrSubmissionInProgress),
		errors.As(err, &serverErr):
		return ordering.Message(err)
	case errors.As(err, &networkErr):
		return "Could not reach the server. Check your connection and try again."
	case errors.As(err, &persistErr):
		return "Could not save your cart on this device: " + persistErr.Err.Error()
	default:
		return err.Error()
	}
}
