package repository

import (
	"context"

	"satei_admin_backend/internal/leads/classify"

	"github.com/google/uuid"
)

// Store is the persistence contract the leads service depends on.
type Store interface {
	List(ctx context.Context) ([]Lead, error)
	GetByID(ctx context.Context, id uuid.UUID) (Lead, error)
	Create(ctx context.Context, data classify.Record) (Lead, error)
}

// Compile-time check that Repository implements Store
var _ Store = (*Repository)(nil)
