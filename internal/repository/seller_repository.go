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
)

type sellerRepository struct {
	pool *pgxpool.Pool
}

func NewSeller(pool *pgxpool.Pool) (port.SellerRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &sellerRepository{pool: pool}, nil
}

func (r *sellerRepository) CreateSeller(ctx context.Context, seller domain.SellerProfile) error {
	if seller.ID == uuid.Nil {
		return fmt.Errorf("seller id is empty")
	}
	if seller.FullName == "" || seller.Email == "" || seller.Phone == "" {
		return fmt.Errorf("seller profile is incomplete")
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO sellers (id, full_name, email, phone, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		seller.ID, seller.FullName, seller.Email, seller.Phone, seller.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}

func (r *sellerRepository) GetSeller(ctx context.Context, id uuid.UUID) (domain.SellerProfile, error) {
	if id == uuid.Nil {
		return domain.SellerProfile{}, fmt.Errorf("seller id is empty")
	}

	var seller domain.SellerProfile
	err := r.pool.QueryRow(ctx,
		`SELECT id, full_name, email, phone, created_at FROM sellers WHERE id = $1`, id,
	).Scan(&seller.ID, &seller.FullName, &seller.Email, &seller.Phone, &seller.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.SellerProfile{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.SellerProfile{}, fmt.Errorf("row.Scan: %w", err)
	}

	return seller, nil
}

// GetSellers returns all seller profiles, newest first.
func (r *sellerRepository) GetSellers(ctx context.Context) ([]domain.SellerProfile, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, full_name, email, phone, created_at FROM sellers ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var sellers []domain.SellerProfile
	for rows.Next() {
		var seller domain.SellerProfile
		if err := rows.Scan(&seller.ID, &seller.FullName, &seller.Email, &seller.Phone, &seller.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}
		sellers = append(sellers, seller)
	}

	return sellers, rows.Err()
}
