package checkout_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"

	"github.com/nikolayk812/apnadairy/internal/cart"
	"github.com/nikolayk812/apnadairy/internal/checkout"
	"github.com/nikolayk812/apnadairy/internal/domain"
	"github.com/nikolayk812/apnadairy/internal/notify"
	"github.com/nikolayk812/apnadairy/internal/storage"
)

var currencyComparer = cmp.Comparer(func(x, y currency.Unit) bool {
	return x.String() == y.String()
})

// orderRepoStub stores created orders in memory; flip fail to simulate a
// write that never becomes durable.
type orderRepoStub struct {
	mu     sync.Mutex
	orders []domain.Order
	fail   bool
}

func (s *orderRepoStub) CreateOrder(_ context.Context, order domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fail {
		return fmt.Errorf("connection refused")
	}
	s.orders = append(s.orders, order)
	return nil
}

func (s *orderRepoStub) GetOrder(_ context.Context, id uuid.UUID) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, order := range s.orders {
		if order.ID == id {
			return order, nil
		}
	}
	return domain.Order{}, domain.ErrNotFound
}

func (s *orderRepoStub) GetOrders(_ context.Context) ([]domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]domain.Order(nil), s.orders...), nil
}

type fixture struct {
	finalizer *checkout.Finalizer
	cartStore *cart.Store
	orders    *orderRepoStub
	recorder  *notify.Recorder
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	recorder := notify.NewRecorder()

	cartStore, err := cart.NewStore(storage.NewMemory(), recorder, nil)
	require.NoError(t, err)

	orders := &orderRepoStub{}

	finalizer, err := checkout.NewFinalizer(orders, cartStore, recorder, nil, nil)
	require.NoError(t, err)

	return fixture{
		finalizer: finalizer,
		cartStore: cartStore,
		orders:    orders,
		recorder:  recorder,
	}
}

func inr(amount string) domain.Money {
	return domain.Money{Amount: decimal.RequireFromString(amount), Currency: currency.INR}
}

func shippingDetails() domain.ShippingDetails {
	return domain.ShippingDetails{
		FullName: gofakeit.Name(),
		Phone:    gofakeit.Phone(),
		Street:   gofakeit.Street(),
		City:     gofakeit.City(),
		State:    gofakeit.State(),
		Pincode:  gofakeit.Zip(),
	}
}

func addLine(t *testing.T, store *cart.Store, unit domain.Unit, quantity int64, price string) {
	t.Helper()

	require.NoError(t, store.Add(domain.CartLine{
		ProductID: uuid.MustParse(gofakeit.UUID()),
		Name:      gofakeit.ProductName(),
		Quantity:  quantity,
		Unit:      unit,
		Price:     inr(price),
	}))
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	f := newFixture(t)

	_, err := f.finalizer.PlaceOrder(context.Background(), shippingDetails(), domain.PaymentCashOnDelivery)
	require.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Empty(t, f.orders.orders)
}

func TestPlaceOrderValidation(t *testing.T) {
	tests := []struct {
		name      string
		shipping  domain.ShippingDetails
		payment   domain.PaymentMethod
		wantError error
	}{
		{
			name:      "incomplete shipping",
			shipping:  domain.ShippingDetails{FullName: gofakeit.Name()},
			payment:   domain.PaymentCashOnDelivery,
			wantError: domain.ErrShippingIncomplete,
		},
		{
			name:      "missing payment method",
			shipping:  shippingDetails(),
			payment:   "",
			wantError: domain.ErrPaymentMethodRequired,
		},
		{
			name:      "unknown payment method",
			shipping:  shippingDetails(),
			payment:   "cheque",
			wantError: domain.ErrPaymentMethodInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			addLine(t, f.cartStore, domain.UnitLitre, 2, "50")

			_, err := f.finalizer.PlaceOrder(context.Background(), tt.shipping, tt.payment)
			require.ErrorIs(t, err, tt.wantError)

			// nothing was written, nothing was cleared
			assert.Empty(t, f.orders.orders)
			assert.Equal(t, 1, f.cartStore.Count())
		})
	}
}

func TestPlaceOrder(t *testing.T) {
	f := newFixture(t)
	addLine(t, f.cartStore, domain.UnitMl, 500, "50")
	addLine(t, f.cartStore, domain.UnitKg, 2, "600")
	shipping := shippingDetails()

	order, err := f.finalizer.PlaceOrder(context.Background(), shipping, domain.PaymentUPI)
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusProcessing, order.Status)
	assert.Equal(t, domain.PaymentUPI, order.PaymentMethod)
	assert.Equal(t, shipping, order.ShippingDetails)
	assert.Len(t, order.Items, 2)
	assert.True(t, order.Total.Amount.Equal(decimal.RequireFromString("1225")), "got %s", order.Total.Amount)

	// the order is durable and the cart is now empty
	stored, err := f.orders.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(order, stored, currencyComparer))
	assert.Equal(t, 0, f.cartStore.Count())

	notifications := f.recorder.Notifications()
	require.NotEmpty(t, notifications)
	assert.Equal(t, "Order Confirmed!", notifications[len(notifications)-1].Title)
}

func TestPlaceOrderWriteFailureKeepsCart(t *testing.T) {
	f := newFixture(t)
	addLine(t, f.cartStore, domain.UnitLitre, 2, "50")
	addLine(t, f.cartStore, domain.UnitGram, 250, "400")
	before := f.cartStore.Lines()

	f.orders.fail = true

	_, err := f.finalizer.PlaceOrder(context.Background(), shippingDetails(), domain.PaymentQR)
	require.ErrorContains(t, err, "connection refused")

	// the cart is untouched so the shopper can retry
	assert.Empty(t, cmp.Diff(before, f.cartStore.Lines(), currencyComparer))

	notifications := f.recorder.Notifications()
	require.NotEmpty(t, notifications)
	last := notifications[len(notifications)-1]
	assert.Equal(t, "Checkout failed", last.Title)
	assert.Equal(t, domain.SeverityDestructive, last.Severity)
}
