package catalog

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"shopsphere/storefront/internal/client"
	"shopsphere/storefront/internal/domain"
)

// categoryFeatures lists extra feature text per raw category name. Up to
// two entries are appended after the base features; unknown categories
// get the base set only.
var categoryFeatures = map[string][]string{
	"electronics": {
		"Energy efficient",
		"Smart connectivity",
		"Extended warranty available",
		"Plug and play setup",
	},
	"jewelery": {
		"Ethically sourced materials",
		"Tarnish resistant",
		"Gift box included",
		"Certified authenticity",
	},
	"men's clothing": {
		"Machine washable",
		"Breathable fabric",
		"Comfortable fit",
		"Durable construction",
	},
	"women's clothing": {
		"Versatile styling options",
		"Comfortable all-day wear",
		"Easy care instructions",
		"Seasonal must-have",
	},
}

// Transformer maps raw catalog records into display products. The random
// source is injected so the novelty/sale/stock draws can be made
// deterministic under test; production wiring seeds it from the clock.
// One transformer is shared by every fetch site and loads may run
// concurrently, so the draws are serialized (*rand.Rand is not safe for
// concurrent use).
type Transformer struct {
	mutex sync.Mutex
	rng   *rand.Rand
}

func NewTransformer(rng *rand.Rand) *Transformer {
	return &Transformer{rng: rng}
}

// Transform builds a display product from one raw record. Three draws are
// taken per record, in order: novelty, sale, stock. A sale price is always
// strictly below the base price for any positive price.
func (t *Transformer) Transform(raw client.RawProduct) domain.Product {
	t.mutex.Lock()
	isNew := t.rng.Float64() > 0.7
	isSale := t.rng.Float64() > 0.8
	stock := t.rng.Intn(50) + 5
	t.mutex.Unlock()

	var salePrice float64
	if isSale {
		salePrice = round2(raw.Price * 0.8)
	}

	return domain.Product{
		ID:          strconv.Itoa(raw.ID),
		Name:        raw.Title,
		Description: raw.Description,
		Category:    raw.Category,
		Image:       raw.Image,
		Price:       raw.Price,
		SalePrice:   salePrice,
		Rating:      raw.Rating.Rate,
		ReviewCount: raw.Rating.Count,
		Features:    buildFeatures(raw.Category),
		IsNew:       isNew,
		IsSale:      isSale,
		Stock:       stock,
	}
}

// TransformAll transforms every record, preserving input order.
func (t *Transformer) TransformAll(raws []client.RawProduct) []domain.Product {
	products := make([]domain.Product, 0, len(raws))
	for _, raw := range raws {
		products = append(products, t.Transform(raw))
	}
	return products
}

func buildFeatures(category string) []string {
	features := []string{
		"Premium " + category + " product",
		"High quality materials",
		"Exceptional craftsmanship",
	}

	extra := categoryFeatures[category]
	if len(extra) > 2 {
		extra = extra[:2]
	}

	return append(features, extra...)
}

// DisplayCategory normalizes a raw category string for display and filter
// matching: first letter capitalized, apostrophes stripped.
func DisplayCategory(raw string) string {
	if raw == "" {
		return ""
	}
	name := strings.ToUpper(raw[:1]) + raw[1:]
	return strings.ReplaceAll(name, "'", "")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
