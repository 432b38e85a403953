package port

import (
	"context"

	"github.com/niksmo/sportshop/internal/core/domain"
)

type CatalogProvider interface {
	FetchProducts(context.Context) ([]domain.Product, error)
}

type ProductsStorage interface {
	StoreProducts(context.Context, []domain.Product) error
	ReadProducts(context.Context) ([]domain.Product, error)
}

// A CatalogSnapshot is the immutable product collection for the
// session. Products returns an independent ordered copy.
type CatalogSnapshot interface {
	Loaded() bool
	Products() []domain.Product
}

type PageViewEmitter interface {
	EmitPageView(context.Context, domain.PageView) error
}

type SectionsViewer interface {
	CatalogAvailable() bool
	NewArrivals() domain.SectionState
	Popular() domain.SectionState
}

type CategoryOpener interface {
	CatalogAvailable() bool
	OpenCategory(ctx context.Context, selector string) (domain.SectionState, domain.SectionHeader)
}
