package httpapi

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/nikolayk812/apnadairy/internal/domain"
	"github.com/nikolayk812/apnadairy/internal/pricing"
)

type moneyJSON struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Display  string          `json:"display"`
}

func toMoneyJSON(m domain.Money) moneyJSON {
	return moneyJSON{
		Amount:   m.Amount,
		Currency: m.Currency.String(),
		Display:  m.StringFixed(),
	}
}

type productJSON struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	PricePerUnit moneyJSON  `json:"price_per_unit"`
	Units        []string   `json:"units"`
	DefaultUnit  string     `json:"default_unit"`
	Image        string     `json:"image"`
	Category     string     `json:"category"`
	SellerID     *uuid.UUID `json:"seller_id,omitempty"`
}

func toProductJSON(p domain.Product) productJSON {
	units := make([]string, 0, len(p.Units))
	for _, unit := range p.Units {
		units = append(units, string(unit))
	}

	return productJSON{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		PricePerUnit: toMoneyJSON(p.PricePerUnit),
		Units:        units,
		DefaultUnit:  string(p.DefaultUnit),
		Image:        p.Image,
		Category:     p.Category,
		SellerID:     p.SellerID,
	}
}

func (p productJSON) toDomain() (domain.Product, error) {
	parsedCurrency, err := currency.ParseISO(p.PricePerUnit.Currency)
	if err != nil {
		return domain.Product{}, err
	}

	units := make([]domain.Unit, 0, len(p.Units))
	for _, u := range p.Units {
		unit, err := domain.ParseUnit(u)
		if err != nil {
			return domain.Product{}, err
		}
		units = append(units, unit)
	}

	defaultUnit, err := domain.ParseUnit(p.DefaultUnit)
	if err != nil {
		return domain.Product{}, err
	}

	return domain.Product{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		PricePerUnit: domain.Money{Amount: p.PricePerUnit.Amount, Currency: parsedCurrency},
		Units:        units,
		DefaultUnit:  defaultUnit,
		Image:        p.Image,
		Category:     p.Category,
		SellerID:     p.SellerID,
	}, nil
}

type lineJSON struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Quantity  int64     `json:"quantity"`
	Unit      string    `json:"unit"`
	Price     moneyJSON `json:"price"`
	// LineTotal is derived at read time from the canonical price.
	LineTotal moneyJSON `json:"line_total"`
}

func toLineJSON(line domain.CartLine) lineJSON {
	return lineJSON{
		ProductID: line.ProductID,
		Name:      line.Name,
		Image:     line.Image,
		Quantity:  line.Quantity,
		Unit:      string(line.Unit),
		Price:     toMoneyJSON(line.Price),
		LineTotal: toMoneyJSON(pricing.LineTotal(line)),
	}
}

type cartJSON struct {
	Lines []lineJSON `json:"lines"`
	Count int        `json:"count"`
	Total moneyJSON  `json:"total"`
}

func toCartJSON(lines []domain.CartLine, total domain.Money) cartJSON {
	out := cartJSON{
		Lines: make([]lineJSON, 0, len(lines)),
		Count: len(lines),
		Total: toMoneyJSON(total),
	}

	for _, line := range lines {
		out.Lines = append(out.Lines, toLineJSON(line))
	}

	return out
}

type orderJSON struct {
	ID              uuid.UUID              `json:"id"`
	CreatedAt       time.Time              `json:"created_at"`
	Status          string                 `json:"status"`
	Items           []lineJSON             `json:"items"`
	Total           moneyJSON              `json:"total"`
	ShippingDetails domain.ShippingDetails `json:"shipping_details"`
	PaymentMethod   string                 `json:"payment_method"`
}

func toOrderJSON(o domain.Order) orderJSON {
	items := make([]lineJSON, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, toLineJSON(item))
	}

	return orderJSON{
		ID:              o.ID,
		CreatedAt:       o.CreatedAt,
		Status:          string(o.Status),
		Items:           items,
		Total:           toMoneyJSON(o.Total),
		ShippingDetails: o.ShippingDetails,
		PaymentMethod:   string(o.PaymentMethod),
	}
}

type sellerJSON struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func toSellerJSON(s domain.SellerProfile) sellerJSON {
	return sellerJSON{
		ID:        s.ID,
		FullName:  s.FullName,
		Email:     s.Email,
		Phone:     s.Phone,
		CreatedAt: s.CreatedAt,
	}
}
