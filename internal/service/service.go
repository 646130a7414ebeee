package service

import (
	"context"
	"math"

	"shopsphere/storefront/internal/catalog"
	"shopsphere/storefront/internal/client"
	"shopsphere/storefront/internal/domain"
	"shopsphere/storefront/internal/resource"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Storefront drives the catalog side of the client. Each fetch site
// (product list, single product, category list) has its own resource, so
// their lifecycles are independent. Raw records are re-transformed on
// every fetch; transformed entries are never cached across fetches.
type Storefront struct {
	client      client.CatalogClient
	transformer *catalog.Transformer

	catalogRes    *resource.Resource[[]domain.Product]
	productRes    *resource.Resource[domain.Product]
	categoriesRes *resource.Resource[[]string]
}

func NewStorefront(c client.CatalogClient, t *catalog.Transformer) *Storefront {
	return &Storefront{
		client:      c,
		transformer: t,

		catalogRes:    resource.New[[]domain.Product](),
		productRes:    resource.New[domain.Product](),
		categoriesRes: resource.New[[]string](),
	}
}

// LoadCatalog fetches the product list, transforms it, and applies the
// query pipeline. The resulting snapshot holds the filtered, sorted view.
func (s *Storefront) LoadCatalog(ctx context.Context, q catalog.Query) resource.Snapshot[[]domain.Product] {
	return s.catalogRes.Load(ctx, func(ctx context.Context) ([]domain.Product, error) {
		raws, err := s.client.FetchProducts(ctx)
		if err != nil {
			return nil, err
		}

		products := s.transformer.TransformAll(raws)
		result := catalog.Apply(products, q)

		log.Debugf("Catalog query matched %d of %d products", len(result), len(products))
		return result, nil
	})
}

// LoadProduct fetches and transforms a single product. A missing ID fails
// with domain.ErrNotFound as the cause so callers can show the dedicated
// not-found message instead of the generic fetch error.
func (s *Storefront) LoadProduct(ctx context.Context, id string) resource.Snapshot[domain.Product] {
	return s.productRes.Load(ctx, func(ctx context.Context) (domain.Product, error) {
		raw, err := s.client.FetchProduct(ctx, id)
		if err != nil {
			return domain.Product{}, err
		}

		return s.transformer.Transform(*raw), nil
	})
}

// LoadCategories fetches the category list, normalized for display.
func (s *Storefront) LoadCategories(ctx context.Context) resource.Snapshot[[]string] {
	return s.categoriesRes.Load(ctx, func(ctx context.Context) ([]string, error) {
		raw, err := s.client.FetchCategories(ctx)
		if err != nil {
			return nil, err
		}

		categories := make([]string, 0, len(raw))
		for _, c := range raw {
			categories = append(categories, catalog.DisplayCategory(c))
		}
		return categories, nil
	})
}

// Warmup loads categories and the unfiltered catalog concurrently, the
// initial page load of a browsing session. The fetch sites stay
// independent: one failing does not cancel the other, so a plain group
// without a derived context.
func (s *Storefront) Warmup(ctx context.Context) error {
	var g errgroup.Group

	g.Go(func() error {
		snap := s.LoadCategories(ctx)
		return snap.Err
	})
	g.Go(func() error {
		snap := s.LoadCatalog(ctx, catalog.Query{})
		return snap.Err
	})

	return g.Wait()
}

// Catalog returns the product-list lifecycle state.
func (s *Storefront) Catalog() resource.Snapshot[[]domain.Product] {
	return s.catalogRes.Snapshot()
}

// Product returns the single-product lifecycle state.
func (s *Storefront) Product() resource.Snapshot[domain.Product] {
	return s.productRes.Snapshot()
}

// Categories returns the category-list lifecycle state.
func (s *Storefront) Categories() resource.Snapshot[[]string] {
	return s.categoriesRes.Snapshot()
}

// Related returns up to limit products from the last ready catalog that
// share the given category, excluding the product itself. An unloaded
// catalog yields an empty list.
func (s *Storefront) Related(id, category string, limit int) []domain.Product {
	snap := s.catalogRes.Snapshot()
	if snap.Status != domain.StatusReady {
		return nil
	}
	return catalog.RelatedProducts(snap.Value, id, category, limit)
}

// PriceBounds returns the floor of the lowest price and the ceiling of
// the highest, the initial range for a price filter control.
func PriceBounds(products []domain.Product) (min, max float64) {
	if len(products) == 0 {
		return 0, 0
	}

	min, max = products[0].Price, products[0].Price
	for _, p := range products[1:] {
		if p.Price < min {
			min = p.Price
		}
		if p.Price > max {
			max = p.Price
		}
	}

	return math.Floor(min), math.Ceil(max)
}
