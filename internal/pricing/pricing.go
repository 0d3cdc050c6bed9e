package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/nikolayk812/apnadairy/internal/domain"
)

// LineTotal is the effective per-unit price of the line multiplied by its
// quantity. The line carries the canonical per-large-unit price, so the
// effective price is derived here, at read time.
func LineTotal(line domain.CartLine) domain.Money {
	effective := domain.EffectiveUnitPrice(line.Price, line.Unit)
	return effective.MulInt(line.Quantity)
}

// CartTotal sums LineTotal over all lines. It is computed fresh from the
// given snapshot on every call; the cart page and the checkout confirmation
// both read it from here and therefore always agree.
func CartTotal(lines []domain.CartLine) (domain.Money, error) {
	if len(lines) == 0 {
		return domain.Money{Amount: decimal.Zero, Currency: currency.INR}, nil
	}

	total := domain.Money{
		Amount:   decimal.Zero,
		Currency: LineTotal(lines[0]).Currency,
	}

	for _, line := range lines {
		sum, err := total.Add(LineTotal(line))
		if err != nil {
			return domain.Money{}, fmt.Errorf("line[%s %s]: %w", line.ProductID, line.Unit, err)
		}
		total = sum
	}

	return total, nil
}
