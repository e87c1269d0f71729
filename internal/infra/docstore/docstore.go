// Package docstore persists documents through gocloud.dev/docstore. The backend is chosen by
// URL: mem:// for local runs and tests, mongo:// for MongoDB.
package docstore

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"salesboard/config"
	"salesboard/internal/domain/repository"
	"salesboard/internal/errors"

	"go.uber.org/fx"
	gcdocstore "gocloud.dev/docstore"
	_ "gocloud.dev/docstore/memdocstore"
	_ "gocloud.dev/docstore/mongodocstore"
	"gocloud.dev/gcerrors"
)

const (
	// KeyField holds the document key in every collection.
	KeyField = "_id"

	collectionPlaceholder = "{collection}"
	probeKey              = "__probe__"
)

// Store owns the opened collections and the availability flag probed at startup.
type Store struct {
	urlTemplate  string
	probeTimeout time.Duration
	logger       *slog.Logger

	mu          sync.Mutex
	collections map[string]*gcdocstore.Collection
	available   atomic.Bool
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the store and registers the startup probe and the shutdown hook.
func New(params Params) *Store {
	store := NewStore(params.Config.Docstore, params.Logger)

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			store.Probe(ctx, params.Config.Docstore.Collection)

			return nil
		},
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store
}

// NewStore creates a store without lifecycle hooks. It stays unavailable until Probe succeeds.
func NewStore(cfg *config.DocstoreConfig, logger *slog.Logger) *Store {
	return &Store{
		urlTemplate:  cfg.URL,
		probeTimeout: cfg.ProbeTimeout,
		logger:       logger,
		collections:  make(map[string]*gcdocstore.Collection),
	}
}

// Probe opens the collection and reads a sentinel key. Any answer other than
// success or not found marks the store unavailable for the process lifetime.
func (s *Store) Probe(ctx context.Context, collection string) bool {
	probeCtx := ctx
	if s.probeTimeout > 0 {
		var cancel context.CancelFunc
		probeCtx, cancel = context.WithTimeout(ctx, s.probeTimeout)
		defer cancel()
	}

	coll, err := s.open(probeCtx, collection)
	if err == nil {
		err = coll.Get(probeCtx, map[string]any{KeyField: probeKey})
		if gcerrors.Code(err) == gcerrors.NotFound {
			err = nil
		}
	}

	if err != nil {
		s.available.Store(false)
		if s.logger != nil {
			s.logger.Warn("Document store unavailable, dashboard persistence disabled",
				slog.String("collection", collection),
				slog.Any("error", err),
			)
		}

		return false
	}

	s.available.Store(true)
	if s.logger != nil {
		s.logger.Info("Document store available", slog.String("collection", collection))
	}

	return true
}

// Available reports the outcome of the last probe.
func (s *Store) Available() bool {
	return s.available.Load()
}

// Collection returns the named collection, or ErrDocumentStoreUnavailable.
func (s *Store) Collection(ctx context.Context, name string) (*gcdocstore.Collection, error) {
	if !s.Available() {
		return nil, repository.ErrDocumentStoreUnavailable
	}

	return s.open(ctx, name)
}

func (s *Store) open(ctx context.Context, name string) (*gcdocstore.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if coll, ok := s.collections[name]; ok {
		return coll, nil
	}

	url := strings.ReplaceAll(s.urlTemplate, collectionPlaceholder, name)
	coll, err := gcdocstore.OpenCollection(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open collection %s", name)
	}
	s.collections[name] = coll

	return coll, nil
}

// Close closes every opened collection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for name, coll := range s.collections {
		if err := coll.Close(); err != nil {
			errs = append(errs, errors.Wrapf(err, "close collection %s", name))
		}
		delete(s.collections, name)
	}
	s.available.Store(false)

	return errors.Join(errs...)
}

func isNotFound(err error) bool {
	return gcerrors.Code(err) == gcerrors.NotFound
}
