package repository

import (
	"context"
	"encoding/json"
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

type orderRepository struct {
	pool *pgxpool.Pool
}

func NewOrder(pool *pgxpool.Pool) (port.OrderRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &orderRepository{pool: pool}, nil
}

// CreateOrder writes the order header and its line snapshot in one
// transaction. It returns nil only after commit, which is the durability
// acknowledgement the checkout flow relies on before clearing the cart.
func (r *orderRepository) CreateOrder(ctx context.Context, order domain.Order) error {
	if order.ID == uuid.Nil {
		return fmt.Errorf("order id is empty")
	}
	if len(order.Items) == 0 {
		return domain.ErrEmptyCart
	}

	shipping, err := json.Marshal(order.ShippingDetails)
	if err != nil {
		return fmt.Errorf("json.Marshal shipping: %w", err)
	}

	_, err = withTx(ctx, r.pool, func(tx pgx.Tx) (struct{}, error) {
		var zero struct{}

		_, err := tx.Exec(ctx,
			`INSERT INTO orders (id, created_at, status, total_amount, total_currency, shipping, payment_method)
			 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			order.ID, order.CreatedAt, string(order.Status),
			order.Total.Amount, order.Total.Currency.String(),
			shipping, string(order.PaymentMethod),
		)
		if err != nil {
			return zero, fmt.Errorf("insert order: %w", err)
		}

		for i, item := range order.Items {
			_, err := tx.Exec(ctx,
				`INSERT INTO order_items (order_id, position, product_id, name, image, quantity, unit, price_amount, price_currency)
				 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
				order.ID, i, item.ProductID, item.Name, item.Image,
				item.Quantity, string(item.Unit),
				item.Price.Amount, item.Price.Currency.String(),
			)
			if err != nil {
				return zero, fmt.Errorf("insert order item: %w", err)
			}
		}

		return zero, nil
	})

	return err
}

func (r *orderRepository) GetOrder(ctx context.Context, id uuid.UUID) (domain.Order, error) {
	if id == uuid.Nil {
		return domain.Order{}, fmt.Errorf("order id is empty")
	}

	row := r.pool.QueryRow(ctx,
		`SELECT id, created_at, status, total_amount, total_currency, shipping, payment_method
		 FROM orders WHERE id = $1`, id)

	order, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("scanOrder: %w", err)
	}

	order.Items, err = r.loadItems(ctx, order.ID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("loadItems: %w", err)
	}

	return order, nil
}

// GetOrders returns all orders, newest first.
func (r *orderRepository) GetOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, created_at, status, total_amount, total_currency, shipping, payment_method
		 FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanOrder: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	for i := range orders {
		orders[i].Items, err = r.loadItems(ctx, orders[i].ID)
		if err != nil {
			return nil, fmt.Errorf("loadItems: %w", err)
		}
	}

	return orders, nil
}

func (r *orderRepository) loadItems(ctx context.Context, orderID uuid.UUID) ([]domain.CartLine, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT product_id, name, image, quantity, unit, price_amount, price_currency
		 FROM order_items WHERE order_id = $1 ORDER BY position`, orderID)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var items []domain.CartLine
	for rows.Next() {
		var (
			item          domain.CartLine
			unit          string
			priceAmount   decimal.Decimal
			priceCurrency string
		)

		if err := rows.Scan(
			&item.ProductID, &item.Name, &item.Image, &item.Quantity,
			&unit, &priceAmount, &priceCurrency,
		); err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}

		item.Unit, err = domain.ParseUnit(unit)
		if err != nil {
			return nil, fmt.Errorf("domain.ParseUnit: %w", err)
		}

		parsedCurrency, err := currency.ParseISO(priceCurrency)
		if err != nil {
			return nil, fmt.Errorf("currency[%s] is not valid: %w", priceCurrency, err)
		}
		item.Price = domain.Money{Amount: priceAmount, Currency: parsedCurrency}

		items = append(items, item)
	}

	return items, rows.Err()
}

func scanOrder(row pgx.Row) (domain.Order, error) {
	var (
		order         domain.Order
		status        string
		totalAmount   decimal.Decimal
		totalCurrency string
		shipping      []byte
		paymentMethod string
	)

	err := row.Scan(
		&order.ID, &order.CreatedAt, &status,
		&totalAmount, &totalCurrency, &shipping, &paymentMethod,
	)
	if err != nil {
		return domain.Order{}, err
	}

	parsedCurrency, err := currency.ParseISO(totalCurrency)
	if err != nil {
		return domain.Order{}, fmt.Errorf("currency[%s] is not valid: %w", totalCurrency, err)
	}

	if err := json.Unmarshal(shipping, &order.ShippingDetails); err != nil {
		return domain.Order{}, fmt.Errorf("json.Unmarshal shipping: %w", err)
	}

	order.Status = domain.OrderStatus(status)
	order.Total = domain.Money{Amount: totalAmount, Currency: parsedCurrency}
	order.PaymentMethod = domain.PaymentMethod(paymentMethod)

	return order, nil
}
