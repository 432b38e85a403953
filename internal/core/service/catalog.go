package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/niksmo/sportshop/internal/core/domain"
	"github.com/niksmo/sportshop/internal/core/port"
)

var _ port.CatalogSnapshot = (*CatalogService)(nil)

// A CatalogService owns the canonical product snapshot for the session.
// The snapshot is loaded once at startup and immutable afterwards.
type CatalogService struct {
	provider port.CatalogProvider
	storage  port.ProductsStorage

	mu       sync.RWMutex
	products []domain.Product
	loaded   bool
}

// NewCatalogService wires the upstream provider and an optional
// snapshot cache. Storage may be nil.
func NewCatalogService(
	provider port.CatalogProvider, storage port.ProductsStorage,
) *CatalogService {
	return &CatalogService{provider: provider, storage: storage}
}

// Load fetches the product collection from the provider, falling back
// to the last stored snapshot when the provider is unreachable.
// Both sources failing is a [domain.ErrLoad].
func (s *CatalogService) Load(ctx context.Context) error {
	const op = "CatalogService.Load"
	log := slog.With("op", op)

	ps, err := s.provider.FetchProducts(ctx)
	if err != nil {
		log.Warn("provider is unavailable", "err", err)
		ps, err = s.loadFromStorage(ctx, err)
		if err != nil {
			return fmt.Errorf("%s: %w: %w", op, domain.ErrLoad, err)
		}
		s.setSnapshot(ps)
		log.Info("catalog restored from snapshot cache", "nProducts", len(ps))
		return nil
	}

	s.setSnapshot(ps)
	log.Info("catalog is loaded", "nProducts", len(ps))

	if s.storage != nil {
		if err := s.storage.StoreProducts(ctx, ps); err != nil {
			log.Error("failed to cache snapshot", "err", err)
		}
	}
	return nil
}

func (s *CatalogService) loadFromStorage(
	ctx context.Context, fetchErr error,
) ([]domain.Product, error) {
	if s.storage == nil {
		return nil, fetchErr
	}
	ps, err := s.storage.ReadProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fetchErr, err)
	}
	return ps, nil
}

func (s *CatalogService) setSnapshot(ps []domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = ps
	s.loaded = true
}

func (s *CatalogService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Products returns a read-only ordered view of the last successful
// load. Callers receive an independent copy.
func (s *CatalogService) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.products)
}
