package repository_test

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/nikolayk812/apnadairy/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var currencyComparer = cmp.Comparer(func(x, y currency.Unit) bool {
	return x.String() == y.String()
})

func randomMoney() domain.Money {
	return domain.Money{
		Amount:   decimal.NewFromFloat(gofakeit.Price(1, 1000)),
		Currency: randomCurrency(),
	}
}

func randomCurrency() currency.Unit {
	var (
		result currency.Unit
		err    error
	)

	for {
		// tag is not a recognized currency
		result, err = currency.ParseISO(gofakeit.CurrencyShort())
		if err == nil {
			break
		}
	}

	return result
}

func randomProduct() domain.Product {
	units := []domain.Unit{domain.UnitKg, domain.UnitGram}
	defaultUnit := domain.UnitGram
	if gofakeit.Bool() {
		units = []domain.Unit{domain.UnitLitre, domain.UnitMl}
		defaultUnit = domain.UnitLitre
	}

	return domain.Product{
		ID:           uuid.MustParse(gofakeit.UUID()),
		Name:         gofakeit.ProductName(),
		Description:  gofakeit.Sentence(8),
		PricePerUnit: randomMoney(),
		Units:        units,
		DefaultUnit:  defaultUnit,
		Image:        gofakeit.URL(),
		Category:     gofakeit.Word(),
	}
}

func randomLine() domain.CartLine {
	allUnits := []domain.Unit{domain.UnitLitre, domain.UnitMl, domain.UnitKg, domain.UnitGram}

	return domain.CartLine{
		ProductID: uuid.MustParse(gofakeit.UUID()),
		Name:      gofakeit.ProductName(),
		Image:     gofakeit.URL(),
		Quantity:  int64(gofakeit.Number(1, 20)),
		Unit:      allUnits[gofakeit.Number(0, len(allUnits)-1)],
		Price:     randomMoney(),
	}
}

func randomShipping() domain.ShippingDetails {
	return domain.ShippingDetails{
		FullName: gofakeit.Name(),
		Phone:    gofakeit.Phone(),
		Street:   gofakeit.Street(),
		City:     gofakeit.City(),
		State:    gofakeit.State(),
		Pincode:  gofakeit.Zip(),
	}
}

func randomOrder() domain.Order {
	return domain.Order{
		ID: uuid.MustParse(gofakeit.UUID()),
		// timestamptz keeps microsecond precision
		CreatedAt:       time.Now().UTC().Truncate(time.Microsecond),
		Status:          domain.OrderStatusProcessing,
		Items:           []domain.CartLine{randomLine(), randomLine()},
		Total:           randomMoney(),
		ShippingDetails: randomShipping(),
		PaymentMethod:   domain.PaymentCashOnDelivery,
	}
}

func randomSeller() domain.SellerProfile {
	return domain.SellerProfile{
		ID:        uuid.MustParse(gofakeit.UUID()),
		FullName:  gofakeit.Name(),
		Email:     gofakeit.Email(),
		Phone:     gofakeit.Phone(),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}
