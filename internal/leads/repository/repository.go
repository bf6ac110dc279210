package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"satei_admin_backend/internal/leads/classify"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("lead not found")

// Lead is one stored seller-lead row. The payload stays loosely typed all the
// way to the classification engine; the spreadsheet sync and two generations
// of intake forms write different key spellings into it.
type Lead struct {
	ID        uuid.UUID
	Data      classify.Record
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// List returns every lead, newest first. Classification happens in memory;
// the engine only classifies what it is handed.
func (r *Repository) List(ctx context.Context) ([]Lead, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, data, created_at, updated_at
		FROM leads
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := make([]Lead, 0)
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return leads, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Lead, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, data, created_at, updated_at
		FROM leads
		WHERE id = $1
	`, id)

	lead, err := scanLead(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrNotFound
	}
	if err != nil {
		return Lead{}, err
	}

	return lead, nil
}

func (r *Repository) Create(ctx context.Context, data classify.Record) (Lead, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return Lead{}, err
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO leads (data)
		VALUES ($1)
		RETURNING id, data, created_at, updated_at
	`, payload)

	return scanLead(row)
}

func scanLead(row pgx.Row) (Lead, error) {
	var lead Lead
	var raw []byte

	if err := row.Scan(&lead.ID, &raw, &lead.CreatedAt, &lead.UpdatedAt); err != nil {
		return Lead{}, err
	}

	if err := json.Unmarshal(raw, &lead.Data); err != nil {
		return Lead{}, err
	}

	return lead, nil
}
