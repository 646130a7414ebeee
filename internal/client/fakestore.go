package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"shopsphere/storefront/internal/config"
	"shopsphere/storefront/internal/domain"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

// RawProduct mirrors one record of the remote catalog API.
type RawProduct struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Rating      RawRating `json:"rating"`
}

// RawRating is the rating sub-record of a RawProduct.
type RawRating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

type CatalogClient interface {
	FetchProducts(ctx context.Context) ([]RawProduct, error)
	FetchProduct(ctx context.Context, id string) (*RawProduct, error)
	FetchCategories(ctx context.Context) ([]string, error)
}

type catalogClient struct {
	rl         ratelimit.Limiter
	baseURL    string
	httpClient *resty.Client
}

func NewCatalogClient(cfg config.APIConfig) CatalogClient {
	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(2*time.Second).
		SetRetryMaxWaitTime(10*time.Second).
		SetHeader("Accept", "application/json")

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &catalogClient{
		rl:         rl,
		baseURL:    cfg.BaseURL,
		httpClient: client,
	}
}

func (c *catalogClient) FetchProducts(ctx context.Context) ([]RawProduct, error) {
	body, err := c.fetchJSON(ctx, c.baseURL+"/products")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	var products []RawProduct
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	log.Debugf("Fetched %d products from catalog API", len(products))
	return products, nil
}

func (c *catalogClient) FetchProduct(ctx context.Context, id string) (*RawProduct, error) {
	body, err := c.fetchJSON(ctx, fmt.Sprintf("%s/products/%s", c.baseURL, id))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product %s: %w", id, err)
	}

	// The API answers 200 with an empty body for unknown IDs.
	if len(body) == 0 || string(body) == "null" {
		return nil, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}

	var product RawProduct
	if err := json.Unmarshal(body, &product); err != nil {
		return nil, fmt.Errorf("failed to decode product %s: %w", id, err)
	}

	log.Debugf("Fetched product %s (%s)", id, product.Title)
	return &product, nil
}

func (c *catalogClient) FetchCategories(ctx context.Context) ([]string, error) {
	body, err := c.fetchJSON(ctx, c.baseURL+"/products/categories")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	var categories []string
	if err := json.Unmarshal(body, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}

	return categories, nil
}

func (c *catalogClient) fetchJSON(ctx context.Context, url string) ([]byte, error) {
	c.rl.Take()

	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(url)

	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return nil, domain.ErrNotFound
	}

	if resp.IsError() {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode(), resp.Status())
	}

	return []byte(resp.String()), nil
}
