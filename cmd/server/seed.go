package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/currency"

	"github.com/nikolayk812/apnadairy/internal/domain"
	"github.com/nikolayk812/apnadairy/internal/port"
)

// seedCatalog inserts the stock dairy catalog into an empty products table.
// A non-empty catalog is left alone.
func seedCatalog(ctx context.Context, products port.ProductCatalog, logger *log.Entry) error {
	existing, err := products.GetProducts(ctx)
	if err != nil {
		return fmt.Errorf("products.GetProducts: %w", err)
	}
	if len(existing) > 0 {
		logger.WithField("count", len(existing)).Info("catalog already seeded")
		return nil
	}

	for _, product := range stockCatalog() {
		if err := products.AddProduct(ctx, product); err != nil {
			return fmt.Errorf("products.AddProduct[%s]: %w", product.Name, err)
		}
	}

	logger.Info("stock catalog seeded")
	return nil
}

func stockCatalog() []domain.Product {
	inr := func(amount int64) domain.Money {
		return domain.Money{Amount: decimal.NewFromInt(amount), Currency: currency.INR}
	}
	liquid := []domain.Unit{domain.UnitLitre, domain.UnitMl}
	solid := []domain.Unit{domain.UnitKg, domain.UnitGram}

	return []domain.Product{
		{
			ID:           uuid.New(),
			Name:         "Fresh Cow Milk",
			Description:  "Pure and natural cow milk, sourced from local healthy cows. Perfect for drinking, cooking, and making desserts.",
			PricePerUnit: inr(50), // per litre
			Units:        liquid,
			DefaultUnit:  domain.UnitLitre,
			Category:     "milk",
		},
		{
			ID:           uuid.New(),
			Name:         "Pure Desi Ghee",
			Description:  "Aromatic and granular ghee made from traditional methods. Adds a rich flavor to your dishes.",
			PricePerUnit: inr(600), // per kg
			Units:        solid,
			DefaultUnit:  domain.UnitGram,
			Category:     "ghee",
		},
		{
			ID:           uuid.New(),
			Name:         "Fresh Paneer",
			Description:  "Soft and creamy paneer (cottage cheese), made from fresh milk. Ideal for curries and snacks.",
			PricePerUnit: inr(400),
			Units:        solid,
			DefaultUnit:  domain.UnitGram,
			Category:     "paneer",
		},
		{
			ID:           uuid.New(),
			Name:         "Rich Khoya",
			Description:  "Also known as Mawa, this is a thickened milk solid, perfect for making traditional Indian sweets.",
			PricePerUnit: inr(500),
			Units:        solid,
			DefaultUnit:  domain.UnitGram,
			Category:     "khoya",
		},
		{
			ID:           uuid.New(),
			Name:         "Soft Chhena",
			Description:  "Unripened, non-melting farmer cheese made by curdling milk. The base for many famous Bengali sweets.",
			PricePerUnit: inr(350),
			Units:        solid,
			DefaultUnit:  domain.UnitGram,
			Category:     "chhena",
		},
		{
			ID:           uuid.New(),
			Name:         "Thick Curd",
			Description:  "Creamy and delicious curd (yogurt) made from pasteurized milk. A healthy addition to any meal.",
			PricePerUnit: inr(80),
			Units:        solid,
			DefaultUnit:  domain.UnitGram,
			Category:     "curd",
		},
	}
}
