package port

import (
	"context"
	"github.com/google/uuid"
	"github.com/nikolayk812/apnadairy/internal/domain"
)

// ProductRepository is the read-only product source.
type ProductRepository interface {
	GetProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error)
}

// ProductCatalog adds the admin/seller listing operations on top of the
// shopper-facing read-only source.
type ProductCatalog interface {
	ProductRepository

	AddProduct(ctx context.Context, product domain.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) (bool, error)
}

// OrderRepository is the order sink. CreateOrder must only return nil once
// the order is durably written; the reads exist for display purposes.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) error
	GetOrder(ctx context.Context, id uuid.UUID) (domain.Order, error)
	GetOrders(ctx context.Context) ([]domain.Order, error)
}

type SellerRepository interface {
	CreateSeller(ctx context.Context, seller domain.SellerProfile) error
	GetSeller(ctx context.Context, id uuid.UUID) (domain.SellerProfile, error)
	GetSellers(ctx context.Context) ([]domain.SellerProfile, error)
}

// CartStorage is the durable local storage behind the cart: a string
// key-value store with synchronous get and set.
type CartStorage interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)
	Set(key string, value string) error
}

// Notifier delivers fire-and-forget user-visible notifications.
type Notifier interface {
	Notify(n domain.Notification)
}
