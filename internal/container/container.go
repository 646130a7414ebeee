package container

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"shopsphere/storefront/internal/cart"
	"shopsphere/storefront/internal/catalog"
	"shopsphere/storefront/internal/client"
	"shopsphere/storefront/internal/config"
	"shopsphere/storefront/internal/domain"
	"shopsphere/storefront/internal/service"
	"shopsphere/storefront/internal/session"
	"shopsphere/storefront/internal/storage"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Container holds all initialized components
type Container struct {
	Config     *config.Config
	Client     client.CatalogClient
	Storage    storage.Storage
	Cart       *cart.Store
	Session    *session.Store
	Storefront *service.Storefront

	redis *redis.Client
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	store, err := newStorage(container, cfg)
	if err != nil {
		return nil, err
	}
	container.Storage = store

	container.Cart = cart.NewStore(context.Background(), store)
	container.Session = session.NewStore(context.Background(), store, cfg.Demo)

	catalogClient := client.NewCatalogClient(cfg.API)
	container.Client = catalogClient

	transformer := catalog.NewTransformer(rand.New(rand.NewSource(time.Now().UnixNano())))
	container.Storefront = service.NewStorefront(catalogClient, transformer)

	return container, nil
}

func newStorage(container *Container, cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage.Backend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})

		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Info("✅ Connected to Redis successfully")

		container.redis = rdb
		return storage.NewRedisStorage(rdb, cfg.Storage.Namespace), nil

	case "file":
		store, err := storage.NewFileStorage(afero.NewOsFs(), cfg.Storage.Dir, cfg.Storage.Namespace)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize file storage: %w", err)
		}
		return store, nil

	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}

// Run walks one browsing session end to end: initial load, a filtered
// catalog query, cart mutations, and the simulated sign-in.
func (c *Container) Run(ctx context.Context) error {
	if err := c.Storefront.Warmup(ctx); err != nil {
		return fmt.Errorf("initial catalog load failed: %w", err)
	}

	categories := c.Storefront.Categories()
	log.Infof("🏷️  Loaded %d categories: %v", len(categories.Value), categories.Value)

	snap := c.Storefront.Catalog()
	minPrice, maxPrice := service.PriceBounds(snap.Value)
	log.Infof("🛍️  Loaded %d products, prices %.0f-%.0f", len(snap.Value), minPrice, maxPrice)

	if len(categories.Value) > 0 {
		filtered := c.Storefront.LoadCatalog(ctx, catalog.Query{
			Category: categories.Value[0],
			Sort:     domain.SortPriceAsc,
		})
		if filtered.Err != nil {
			return fmt.Errorf("catalog query failed: %w", filtered.Err)
		}
		log.Infof("🔎 %d products in %s", len(filtered.Value), categories.Value[0])
	}

	for _, p := range snap.Value {
		c.Cart.AddItem(ctx, p)
		if c.Cart.TotalItems() >= 3 {
			break
		}
	}
	log.Infof("🛒 Cart: %d items, total $%.2f", c.Cart.TotalItems(), c.Cart.TotalPrice())

	user, err := c.Session.Authenticate(c.Config.Demo.Email, c.Config.Demo.Password)
	if err != nil {
		return fmt.Errorf("demo sign-in failed: %w", err)
	}
	c.Session.Login(ctx, user)
	c.Session.Logout(ctx)

	return nil
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	if c.redis != nil {
		return c.redis.Close()
	}
	return nil
}
