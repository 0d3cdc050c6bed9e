package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Unit is a measurement unit a shopper can buy a product in.
type Unit string

const (
	UnitLitre Unit = "litre"
	UnitMl    Unit = "ml"
	UnitKg    Unit = "kg"
	UnitGram  Unit = "g"
)

// smallUnitRatio is the fixed ratio between a large unit (litre, kg)
// and its small counterpart (ml, g). No other ratios exist.
var smallUnitRatio = decimal.NewFromInt(1000)

func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case UnitLitre, UnitMl, UnitKg, UnitGram:
		return Unit(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnitInvalid, s)
}

func (u Unit) Valid() bool {
	_, err := ParseUnit(string(u))
	return err == nil
}

// IsSmall reports whether u is the 1/1000 counterpart of a large unit.
func (u Unit) IsSmall() bool {
	return u == UnitMl || u == UnitGram
}

// UnitFamily groups the units a single product can offer. Liquid products
// sell per litre/ml, solid ones per kg/g; families never mix.
type UnitFamily string

const (
	FamilyLiquid UnitFamily = "liquid"
	FamilySolid  UnitFamily = "solid"
)

func (u Unit) Family() UnitFamily {
	if u == UnitLitre || u == UnitMl {
		return FamilyLiquid
	}
	return FamilySolid
}

// EffectiveUnitPrice derives the price per one target unit from a product's
// canonical per-large-unit price. The large unit keeps the canonical price;
// the small unit costs 1/1000 of it.
func EffectiveUnitPrice(canonical Money, target Unit) Money {
	if !target.IsSmall() {
		return canonical
	}

	return Money{
		Amount:   canonical.Amount.Div(smallUnitRatio),
		Currency: canonical.Currency,
	}
}
