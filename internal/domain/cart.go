package domain

import (
	"github.com/google/uuid"
)

// CartLine is one (product, unit) entry in the cart. At most one line
// exists per LineKey; adding the same pair again merges quantities.
type CartLine struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Quantity  int64     `json:"quantity"`
	Unit      Unit      `json:"unit"`

	// Price is the canonical per-large-unit price copied from the product
	// when the line was first added, never the effective per-Unit price.
	// The effective price is derived at read time via EffectiveUnitPrice,
	// so changing a line's unit can never leave a stale price behind.
	Price Money `json:"price"`
}

// LineKey is the composite identity of a cart line.
type LineKey struct {
	ProductID uuid.UUID
	Unit      Unit
}

func (l CartLine) Key() LineKey {
	return LineKey{ProductID: l.ProductID, Unit: l.Unit}
}

func (l CartLine) Validate() error {
	if l.ProductID == uuid.Nil {
		return ErrProductIDRequired
	}
	if l.Quantity <= 0 {
		return ErrQuantityInvalid
	}
	if !l.Unit.Valid() {
		return ErrUnitInvalid
	}
	if l.Price.Amount.IsNegative() {
		return ErrPriceNegative
	}
	return nil
}
