package domain

import (
	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID
	Name        string
	Description string

	// PricePerUnit is always quoted per the large unit of the product's
	// family (per litre or per kg), regardless of which units it offers.
	PricePerUnit Money

	Units       []Unit
	DefaultUnit Unit
	Image       string
	Category    string

	// SellerID is set only for products listed by marketplace sellers.
	SellerID *uuid.UUID
}

// Offers reports whether the product can be bought in the given unit.
func (p Product) Offers(u Unit) bool {
	for _, unit := range p.Units {
		if unit == u {
			return true
		}
	}
	return false
}

// Line builds a cart line for the product in the given unit and quantity.
// The line carries the canonical price, not the effective one.
func (p Product) Line(u Unit, quantity int64) CartLine {
	return CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Image:     p.Image,
		Quantity:  quantity,
		Unit:      u,
		Price:     p.PricePerUnit,
	}
}
