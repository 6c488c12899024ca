package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"volunteer-dispatch/internal/domain"
)

const assignmentColumns = `id, call_id, volunteer_id, started_at, ended_at, end_type`

// AssignmentRepo represents assignment repository.
type AssignmentRepo struct{ db *pgxpool.Pool }

// NewAssignmentRepo creates a new AssignmentRepo.
func NewAssignmentRepo(db *pgxpool.Pool) *AssignmentRepo { return &AssignmentRepo{db: db} }

func scanAssignment(row pgx.Row) (domain.Assignment, error) {
	var a domain.Assignment
	err := row.Scan(&a.ID, &a.CallID, &a.VolunteerID, &a.StartedAt, &a.EndedAt, &a.EndType)
	if err != nil {
		return a, err
	}
	a.StartedAt = a.StartedAt.UTC()
	if a.EndedAt != nil {
		e := a.EndedAt.UTC()
		a.EndedAt = &e
	}
	return a, nil
}

// Create - inserts an assignment and returns its generated ID.
func (r *AssignmentRepo) Create(ctx context.Context, a domain.Assignment) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO assignments(call_id, volunteer_id, started_at, ended_at, end_type)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id`,
		a.CallID, a.VolunteerID, a.StartedAt, a.EndedAt, a.EndType,
	).Scan(&id)
	if err != nil {
		return 0, mapErr("create assignment", 0, err)
	}
	return id, nil
}

// Get - returns assignment by its ID.
func (r *AssignmentRepo) Get(ctx context.Context, id int64) (domain.Assignment, error) {
	a, err := scanAssignment(r.db.QueryRow(ctx,
		`SELECT `+assignmentColumns+` FROM assignments WHERE id=$1`, id))
	if err != nil {
		return domain.Assignment{}, mapErr("get assignment", id, err)
	}
	return a, nil
}

// List returns assignments matching pred ordered by id.
func (r *AssignmentRepo) List(ctx context.Context, pred func(domain.Assignment) bool) ([]domain.Assignment, error) {
	rows, err := r.db.Query(ctx, `SELECT `+assignmentColumns+` FROM assignments ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Assignment, 0)
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return filter(out, pred), nil
}

// Find returns the lowest-id assignment matching pred, or nil.
func (r *AssignmentRepo) Find(ctx context.Context, pred func(domain.Assignment) bool) (*domain.Assignment, error) {
	list, err := r.List(ctx, pred)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return &list[0], nil
}

// Update - overwrites every column of the assignment.
func (r *AssignmentRepo) Update(ctx context.Context, a domain.Assignment) error {
	ct, err := r.db.Exec(ctx, `
		UPDATE assignments SET
			call_id = $2, volunteer_id = $3, started_at = $4, ended_at = $5, end_type = $6
		WHERE id = $1`,
		a.ID, a.CallID, a.VolunteerID, a.StartedAt, a.EndedAt, a.EndType,
	)
	if err != nil {
		return mapErr("update assignment", a.ID, err)
	}
	return expectOne("update assignment", a.ID, ct)
}

// Delete - removes the assignment.
func (r *AssignmentRepo) Delete(ctx context.Context, id int64) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM assignments WHERE id=$1`, id)
	if err != nil {
		return mapErr("delete assignment", id, err)
	}
	return expectOne("delete assignment", id, ct)
}

// DeleteAll - removes every assignment and restarts the id sequence.
func (r *AssignmentRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `TRUNCATE assignments RESTART IDENTITY`); err != nil {
		return fmt.Errorf("truncate assignments: %w", err)
	}
	return nil
}
