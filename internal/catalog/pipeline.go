package catalog

import (
	"sort"
	"strings"

	"shopsphere/storefront/internal/domain"
)

// Query describes one pass over the catalog. Zero values mean "no
// constraint" for every field except the price bound, which is applied
// as given (MinPrice > MaxPrice legitimately yields an empty result).
type Query struct {
	Category string
	OnlyNew  bool
	OnlySale bool
	Search   string
	MinPrice float64
	MaxPrice float64
	Sort     domain.SortOption
}

// HasPriceBound reports whether the inclusive [MinPrice, MaxPrice] filter
// should run.
func (q Query) HasPriceBound() bool {
	return q.MinPrice != 0 || q.MaxPrice != 0
}

// Apply runs the fixed stage order: category, flags, search, price bound,
// sort. Stages are pure; the input slice is never mutated and an empty
// input passes through unchanged.
func Apply(products []domain.Product, q Query) []domain.Product {
	result := make([]domain.Product, 0, len(products))

	for _, p := range products {
		if q.Category != "" && !matchesCategory(p.Category, q.Category) {
			continue
		}
		if q.OnlyNew && !p.IsNew {
			continue
		}
		if q.OnlySale && !p.IsSale {
			continue
		}
		if q.Search != "" && !matchesSearch(p, q.Search) {
			continue
		}
		if q.HasPriceBound() && (p.Price < q.MinPrice || p.Price > q.MaxPrice) {
			continue
		}
		result = append(result, p)
	}

	sortProducts(result, q.Sort)
	return result
}

// matchesCategory compares categories case-insensitively with apostrophes
// stripped, so the normalized display name ("Mens clothing") matches the
// raw API category ("men's clothing").
func matchesCategory(have, want string) bool {
	fold := func(s string) string {
		return strings.ToLower(strings.ReplaceAll(s, "'", ""))
	}
	return fold(have) == fold(want)
}

func matchesSearch(p domain.Product, search string) bool {
	query := strings.ToLower(search)
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.Category), query)
}

func sortProducts(products []domain.Product, option domain.SortOption) {
	switch option {
	case domain.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case domain.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case domain.SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case domain.SortNewest:
		// New entries first; both blocks keep their input order.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsNew && !products[j].IsNew
		})
	default:
		// Featured: input order preserved.
	}
}

// RelatedProducts returns up to limit products sharing the given category,
// excluding the product itself, in catalog order. A non-positive limit
// yields an empty list.
func RelatedProducts(products []domain.Product, id, category string, limit int) []domain.Product {
	if limit < 1 {
		return nil
	}

	related := make([]domain.Product, 0, limit)
	for _, p := range products {
		if p.ID == id || !matchesCategory(p.Category, category) {
			continue
		}
		related = append(related, p)
		if len(related) == limit {
			break
		}
	}
	return related
}
