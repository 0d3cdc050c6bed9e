package domain

import (
	"time"

	"github.com/google/uuid"
)

type SellerProfile struct {
	ID       uuid.UUID
	FullName string
	Email    string
	Phone    string

	CreatedAt time.Time
}
