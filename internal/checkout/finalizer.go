package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/nikolayk812/apnadairy/internal/cart"
	"github.com/nikolayk812/apnadairy/internal/domain"
	"github.com/nikolayk812/apnadairy/internal/metrics"
	"github.com/nikolayk812/apnadairy/internal/port"
	"github.com/nikolayk812/apnadairy/internal/pricing"
)

// Finalizer converts a cart snapshot into a persisted order and, only once
// the order write is acknowledged, empties the cart. A failed write leaves
// the cart intact so the shopper can retry.
type Finalizer struct {
	orders   port.OrderRepository
	cart     *cart.Store
	notifier port.Notifier
	metrics  *metrics.StorefrontMetrics
	logger   *log.Entry

	now func() time.Time
}

func NewFinalizer(
	orders port.OrderRepository,
	cartStore *cart.Store,
	notifier port.Notifier,
	m *metrics.StorefrontMetrics,
	logger *log.Entry,
) (*Finalizer, error) {
	if orders == nil {
		return nil, fmt.Errorf("orders is nil")
	}
	if cartStore == nil {
		return nil, fmt.Errorf("cartStore is nil")
	}
	if notifier == nil {
		return nil, fmt.Errorf("notifier is nil")
	}
	if logger == nil {
		logger = log.WithField("component", "checkout")
	}

	return &Finalizer{
		orders:   orders,
		cart:     cartStore,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// PlaceOrder snapshots the cart, computes its total and writes an order
// with initial status Processing. No idempotency key is used: retrying a
// failed attempt may produce a duplicate order.
func (f *Finalizer) PlaceOrder(ctx context.Context, shipping domain.ShippingDetails, paymentMethod domain.PaymentMethod) (domain.Order, error) {
	lines := f.cart.Lines()
	if len(lines) == 0 {
		return domain.Order{}, domain.ErrEmptyCart
	}

	if err := shipping.Validate(); err != nil {
		return domain.Order{}, err
	}
	if _, err := domain.ParsePaymentMethod(string(paymentMethod)); err != nil {
		return domain.Order{}, err
	}

	total, err := pricing.CartTotal(lines)
	if err != nil {
		return domain.Order{}, fmt.Errorf("pricing.CartTotal: %w", err)
	}

	order := domain.Order{
		ID:              uuid.New(),
		CreatedAt:       f.now().UTC(),
		Status:          domain.OrderStatusProcessing,
		Items:           lines,
		Total:           total,
		ShippingDetails: shipping,
		PaymentMethod:   paymentMethod,
	}

	if err := f.orders.CreateOrder(ctx, order); err != nil {
		if f.metrics != nil {
			f.metrics.RecordCheckoutFailure()
		}
		f.notifier.Notify(domain.Notification{
			Title:       "Checkout failed",
			Description: "Your order could not be placed. Please try again.",
			Severity:    domain.SeverityDestructive,
		})
		return domain.Order{}, fmt.Errorf("orders.CreateOrder: %w", err)
	}

	// The order is durable from here on. A failed cart wipe is only a
	// persistence nuisance, not a checkout failure.
	if err := f.cart.Clear(); err != nil {
		f.logger.WithError(err).WithField("order_id", order.ID).
			Warn("order placed but cart could not be persisted as empty")
	}

	if f.metrics != nil {
		f.metrics.RecordOrderPlaced()
	}
	f.notifier.Notify(domain.Notification{
		Title:       "Order Confirmed!",
		Description: "Your order has been placed successfully. You can track it in the 'My Orders' section.",
		Severity:    domain.SeverityInfo,
	})

	return order, nil
}
