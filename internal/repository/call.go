package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"volunteer-dispatch/internal/domain"
)

const callColumns = `id, type, description, address, latitude, longitude, opened_at, deadline`

// CallRepo represents call repository.
type CallRepo struct{ db *pgxpool.Pool }

// NewCallRepo creates a new CallRepo.
func NewCallRepo(db *pgxpool.Pool) *CallRepo { return &CallRepo{db: db} }

func scanCall(row pgx.Row) (domain.Call, error) {
	var c domain.Call
	err := row.Scan(&c.ID, &c.Type, &c.Description, &c.Address, &c.Latitude, &c.Longitude,
		&c.OpenedAt, &c.Deadline)
	if err != nil {
		return c, err
	}
	c.OpenedAt = c.OpenedAt.UTC()
	if c.Deadline != nil {
		d := c.Deadline.UTC()
		c.Deadline = &d
	}
	return c, nil
}

// Create - inserts a call and returns its generated ID.
func (r *CallRepo) Create(ctx context.Context, c domain.Call) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO calls(type, description, address, latitude, longitude, opened_at, deadline)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id`,
		c.Type, c.Description, c.Address, c.Latitude, c.Longitude, c.OpenedAt, c.Deadline,
	).Scan(&id)
	if err != nil {
		return 0, mapErr("create call", 0, err)
	}
	return id, nil
}

// Get - returns call by its ID.
func (r *CallRepo) Get(ctx context.Context, id int64) (domain.Call, error) {
	c, err := scanCall(r.db.QueryRow(ctx, `SELECT `+callColumns+` FROM calls WHERE id=$1`, id))
	if err != nil {
		return domain.Call{}, mapErr("get call", id, err)
	}
	return c, nil
}

// List returns calls matching pred ordered by id.
func (r *CallRepo) List(ctx context.Context, pred func(domain.Call) bool) ([]domain.Call, error) {
	rows, err := r.db.Query(ctx, `SELECT `+callColumns+` FROM calls ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list calls: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Call, 0)
	for rows.Next() {
		c, err := scanCall(rows)
		if err != nil {
			return nil, fmt.Errorf("scan call: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list calls: %w", err)
	}
	return filter(out, pred), nil
}

// Find returns the lowest-id call matching pred, or nil.
func (r *CallRepo) Find(ctx context.Context, pred func(domain.Call) bool) (*domain.Call, error) {
	list, err := r.List(ctx, pred)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return &list[0], nil
}

// Update - overwrites every column of the call.
func (r *CallRepo) Update(ctx context.Context, c domain.Call) error {
	ct, err := r.db.Exec(ctx, `
		UPDATE calls SET
			type = $2, description = $3, address = $4, latitude = $5, longitude = $6,
			opened_at = $7, deadline = $8
		WHERE id = $1`,
		c.ID, c.Type, c.Description, c.Address, c.Latitude, c.Longitude, c.OpenedAt, c.Deadline,
	)
	if err != nil {
		return mapErr("update call", c.ID, err)
	}
	return expectOne("update call", c.ID, ct)
}

// Delete - removes the call.
func (r *CallRepo) Delete(ctx context.Context, id int64) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM calls WHERE id=$1`, id)
	if err != nil {
		return mapErr("delete call", id, err)
	}
	return expectOne("delete call", id, ct)
}

// DeleteAll - removes every call together with its assignments.
func (r *CallRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `TRUNCATE calls, assignments RESTART IDENTITY`); err != nil {
		return fmt.Errorf("truncate calls: %w", err)
	}
	return nil
}
