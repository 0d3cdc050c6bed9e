package repository

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/apnadairy/internal/domain"
	"github.com/nikolayk812/apnadairy/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type productRepository struct {
	pool *pgxpool.Pool
}

func NewProduct(pool *pgxpool.Pool) (port.ProductCatalog, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &productRepository{pool: pool}, nil
}

const productColumns = `id, name, description, price_amount, price_currency, units, default_unit, image, category, seller_id`

func (r *productRepository) GetProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanProduct: %w", err)
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

func (r *productRepository) GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	if id == uuid.Nil {
		return domain.Product{}, domain.ErrProductIDRequired
	}

	row := r.pool.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	product, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("scanProduct: %w", err)
	}

	return product, nil
}

// AddProduct inserts a new catalog entry; listing products is an admin and
// seller operation, not part of the shopper flow.
func (r *productRepository) AddProduct(ctx context.Context, product domain.Product) error {
	if product.ID == uuid.Nil {
		return domain.ErrProductIDRequired
	}

	units := make([]string, 0, len(product.Units))
	for _, unit := range product.Units {
		units = append(units, string(unit))
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO products (`+productColumns+`)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		product.ID, product.Name, product.Description,
		product.PricePerUnit.Amount, product.PricePerUnit.Currency.String(),
		units, string(product.DefaultUnit), product.Image, product.Category,
		product.SellerID,
	)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, domain.ErrProductIDRequired
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("pool.Exec: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var (
		product       domain.Product
		priceAmount   decimal.Decimal
		priceCurrency string
		units         []string
		defaultUnit   string
	)

	err := row.Scan(
		&product.ID, &product.Name, &product.Description,
		&priceAmount, &priceCurrency, &units, &defaultUnit,
		&product.Image, &product.Category, &product.SellerID,
	)
	if err != nil {
		return domain.Product{}, err
	}

	parsedCurrency, err := currency.ParseISO(priceCurrency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("currency[%s] is not valid: %w", priceCurrency, err)
	}
	product.PricePerUnit = domain.Money{Amount: priceAmount, Currency: parsedCurrency}

	for _, unit := range units {
		parsedUnit, err := domain.ParseUnit(unit)
		if err != nil {
			return domain.Product{}, fmt.Errorf("domain.ParseUnit: %w", err)
		}
		product.Units = append(product.Units, parsedUnit)
	}

	product.DefaultUnit, err = domain.ParseUnit(defaultUnit)
	if err != nil {
		return domain.Product{}, fmt.Errorf("domain.ParseUnit: %w", err)
	}

	return product, nil
}
