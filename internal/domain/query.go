package domain

// Status is the lifecycle phase of one data fetch.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SortOption selects the ordering applied by the catalog query pipeline.
type SortOption string

const (
	SortFeatured  SortOption = "featured"   // input order preserved
	SortPriceAsc  SortOption = "price-asc"  // ascending price
	SortPriceDesc SortOption = "price-desc" // descending price
	SortRating    SortOption = "rating"     // descending rating
	SortNewest    SortOption = "newest"     // new entries first, both blocks in input order
)
