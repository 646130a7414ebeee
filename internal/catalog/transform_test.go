package catalog

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopsphere/storefront/internal/client"
)

func rawProduct(id int, price float64, category string) client.RawProduct {
	return client.RawProduct{
		ID:          id,
		Title:       "Raw Product",
		Price:       price,
		Description: "A product description",
		Category:    category,
		Image:       "https://example.com/p.jpg",
		Rating:      client.RawRating{Rate: 4.2, Count: 117},
	}
}

func TestTransformCopiesDeterministicFields(t *testing.T) {
	tr := NewTransformer(rand.New(rand.NewSource(1)))

	p := tr.Transform(rawProduct(7, 19.99, "electronics"))

	assert.Equal(t, "7", p.ID)
	assert.Equal(t, "Raw Product", p.Name)
	assert.Equal(t, "A product description", p.Description)
	assert.Equal(t, "electronics", p.Category)
	assert.Equal(t, "https://example.com/p.jpg", p.Image)
	assert.Equal(t, 19.99, p.Price)
	assert.Equal(t, 4.2, p.Rating)
	assert.Equal(t, 117, p.ReviewCount)
}

func TestTransformIsDeterministicForASeed(t *testing.T) {
	raw := rawProduct(1, 50, "jewelery")

	a := NewTransformer(rand.New(rand.NewSource(42))).Transform(raw)
	b := NewTransformer(rand.New(rand.NewSource(42))).Transform(raw)

	assert.Equal(t, a, b)
}

func TestSaleInvariant(t *testing.T) {
	tr := NewTransformer(rand.New(rand.NewSource(3)))

	// Enough records to draw isSale both ways.
	sales := 0
	for i := 1; i <= 500; i++ {
		p := tr.Transform(rawProduct(i, float64(i)+0.99, "electronics"))

		if p.IsSale {
			sales++
			require.Less(t, p.SalePrice, p.Price, "sale price must undercut base price")
			want := math.Round(p.Price*0.8*100) / 100
			assert.InDelta(t, want, p.SalePrice, 1e-9)
		} else {
			assert.Zero(t, p.SalePrice)
		}
	}

	require.NotZero(t, sales, "seed produced no sale entries; invariant untested")
}

func TestStockRange(t *testing.T) {
	tr := NewTransformer(rand.New(rand.NewSource(9)))

	for i := 1; i <= 200; i++ {
		p := tr.Transform(rawProduct(i, 10, "electronics"))
		assert.GreaterOrEqual(t, p.Stock, 5)
		assert.LessOrEqual(t, p.Stock, 54)
	}
}

func TestFeatures(t *testing.T) {
	tr := NewTransformer(rand.New(rand.NewSource(1)))

	t.Run("known category gets base plus two specific features", func(t *testing.T) {
		p := tr.Transform(rawProduct(1, 10, "electronics"))

		require.Len(t, p.Features, 5)
		assert.Equal(t, []string{
			"Premium electronics product",
			"High quality materials",
			"Exceptional craftsmanship",
			"Energy efficient",
			"Smart connectivity",
		}, p.Features)
	})

	t.Run("unknown category gets the base set only", func(t *testing.T) {
		p := tr.Transform(rawProduct(2, 10, "gardening"))

		assert.Equal(t, []string{
			"Premium gardening product",
			"High quality materials",
			"Exceptional craftsmanship",
		}, p.Features)
	})
}

func TestTransformAllPreservesOrder(t *testing.T) {
	tr := NewTransformer(rand.New(rand.NewSource(5)))

	raws := []client.RawProduct{
		rawProduct(3, 10, "electronics"),
		rawProduct(1, 20, "jewelery"),
		rawProduct(2, 30, "electronics"),
	}

	products := tr.TransformAll(raws)

	require.Len(t, products, 3)
	assert.Equal(t, "3", products[0].ID)
	assert.Equal(t, "1", products[1].ID)
	assert.Equal(t, "2", products[2].ID)
}

func TestTransformIsSafeForConcurrentUse(t *testing.T) {
	tr := NewTransformer(rand.New(rand.NewSource(11)))

	raws := make([]client.RawProduct, 200)
	for i := range raws {
		raws[i] = rawProduct(i+1, float64(i)+0.99, "electronics")
	}

	// One transformer is shared across fetch sites; loads may overlap.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			products := tr.TransformAll(raws)
			for _, p := range products {
				if p.IsSale {
					assert.Less(t, p.SalePrice, p.Price)
				}
				assert.GreaterOrEqual(t, p.Stock, 5)
				assert.LessOrEqual(t, p.Stock, 54)
			}
		}()
	}
	wg.Wait()
}

func TestDisplayCategory(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"electronics", "Electronics"},
		{"jewelery", "Jewelery"},
		{"men's clothing", "Mens clothing"},
		{"women's clothing", "Womens clothing"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DisplayCategory(tt.raw))
	}
}
