package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"volunteer-dispatch/internal/domain"
)

const volunteerColumns = `id, full_name, phone, email, password, address, latitude, longitude,
	role, active, max_distance, distance_type`

// VolunteerRepo represents volunteer repository.
type VolunteerRepo struct{ db *pgxpool.Pool }

// NewVolunteerRepo creates a new VolunteerRepo.
func NewVolunteerRepo(db *pgxpool.Pool) *VolunteerRepo { return &VolunteerRepo{db: db} }

func scanVolunteer(row pgx.Row) (domain.Volunteer, error) {
	var v domain.Volunteer
	err := row.Scan(&v.ID, &v.FullName, &v.Phone, &v.Email, &v.Password, &v.Address,
		&v.Latitude, &v.Longitude, &v.Role, &v.Active, &v.MaxDistance, &v.DistanceType)
	return v, err
}

// Create - inserts a volunteer and returns its generated ID.
func (r *VolunteerRepo) Create(ctx context.Context, v domain.Volunteer) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO volunteers(full_name, phone, email, password, address, latitude, longitude,
			role, active, max_distance, distance_type)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id`,
		v.FullName, v.Phone, v.Email, v.Password, v.Address, v.Latitude, v.Longitude,
		v.Role, v.Active, v.MaxDistance, v.DistanceType,
	).Scan(&id)
	if err != nil {
		return 0, mapErr("create volunteer", 0, err)
	}
	return id, nil
}

// Get - returns volunteer by its ID.
func (r *VolunteerRepo) Get(ctx context.Context, id int64) (domain.Volunteer, error) {
	v, err := scanVolunteer(r.db.QueryRow(ctx,
		`SELECT `+volunteerColumns+` FROM volunteers WHERE id=$1`, id))
	if err != nil {
		return domain.Volunteer{}, mapErr("get volunteer", id, err)
	}
	return v, nil
}

// List returns volunteers matching pred ordered by id.
func (r *VolunteerRepo) List(ctx context.Context, pred func(domain.Volunteer) bool) ([]domain.Volunteer, error) {
	rows, err := r.db.Query(ctx, `SELECT `+volunteerColumns+` FROM volunteers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list volunteers: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Volunteer, 0)
	for rows.Next() {
		v, err := scanVolunteer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan volunteer: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list volunteers: %w", err)
	}
	return filter(out, pred), nil
}

// Find returns the lowest-id volunteer matching pred, or nil.
func (r *VolunteerRepo) Find(ctx context.Context, pred func(domain.Volunteer) bool) (*domain.Volunteer, error) {
	list, err := r.List(ctx, pred)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return &list[0], nil
}

// Update - overwrites every column of the volunteer.
func (r *VolunteerRepo) Update(ctx context.Context, v domain.Volunteer) error {
	ct, err := r.db.Exec(ctx, `
		UPDATE volunteers SET
			full_name = $2, phone = $3, email = $4, password = $5, address = $6,
			latitude = $7, longitude = $8, role = $9, active = $10,
			max_distance = $11, distance_type = $12
		WHERE id = $1`,
		v.ID, v.FullName, v.Phone, v.Email, v.Password, v.Address, v.Latitude, v.Longitude,
		v.Role, v.Active, v.MaxDistance, v.DistanceType,
	)
	if err != nil {
		return mapErr("update volunteer", v.ID, err)
	}
	return expectOne("update volunteer", v.ID, ct)
}

// Delete - removes the volunteer.
func (r *VolunteerRepo) Delete(ctx context.Context, id int64) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM volunteers WHERE id=$1`, id)
	if err != nil {
		return mapErr("delete volunteer", id, err)
	}
	return expectOne("delete volunteer", id, ct)
}

// DeleteAll - removes every volunteer and restarts the id sequence.
func (r *VolunteerRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `TRUNCATE volunteers RESTART IDENTITY`); err != nil {
		return fmt.Errorf("truncate volunteers: %w", err)
	}
	return nil
}
