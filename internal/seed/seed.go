package seed

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"volunteer-dispatch/internal/domain"
)

//go:embed dataset.yaml
var dataset []byte

// Address is a known address with its coordinates.
type Address struct {
	Address string  `yaml:"address" validate:"required"`
	Lat     float64 `yaml:"lat" validate:"latitude"`
	Lon     float64 `yaml:"lon" validate:"longitude"`
}

// Volunteer is a seed volunteer with a plain-text password.
type Volunteer struct {
	FullName     string   `yaml:"fullName" validate:"required"`
	Phone        string   `yaml:"phone" validate:"required"`
	Email        string   `yaml:"email" validate:"required,email"`
	Password     string   `yaml:"password" validate:"required"`
	Address      string   `yaml:"address,omitempty"`
	Role         string   `yaml:"role" validate:"oneof=admin volunteer"`
	Active       bool     `yaml:"active"`
	MaxDistance  *float64 `yaml:"maxDistance,omitempty" validate:"omitempty,min=0"`
	DistanceType string   `yaml:"distanceType,omitempty" validate:"omitempty,oneof=air walking driving"`
}

// Call is a seed call; times are offsets from the clock at load time.
type Call struct {
	Type        string         `yaml:"type" validate:"required"`
	Description string         `yaml:"description,omitempty"`
	Address     string         `yaml:"address" validate:"required"`
	OpenedAgo   time.Duration  `yaml:"openedAgo" validate:"min=0"`
	DeadlineIn  *time.Duration `yaml:"deadlineIn,omitempty"`
}

// Assignment links seed calls and volunteers by their 1-based position.
type Assignment struct {
	Call       int            `yaml:"call" validate:"min=1"`
	Volunteer  int            `yaml:"volunteer" validate:"min=1"`
	StartedAgo time.Duration  `yaml:"startedAgo" validate:"min=0"`
	EndedAgo   *time.Duration `yaml:"endedAgo,omitempty"`
	EndType    string         `yaml:"endType,omitempty"`
}

// Dataset is the demo data loaded on initialize.
type Dataset struct {
	Addresses   []Address    `yaml:"addresses" validate:"dive"`
	Volunteers  []Volunteer  `yaml:"volunteers" validate:"dive"`
	Calls       []Call       `yaml:"calls" validate:"dive"`
	Assignments []Assignment `yaml:"assignments" validate:"dive"`
}

// Records is a dataset resolved against a clock. Assignment CallID and
// VolunteerID hold 1-based positions in Calls and Volunteers.
type Records struct {
	Volunteers  []domain.Volunteer
	Calls       []domain.Call
	Assignments []domain.Assignment
}

var validate = validator.New()

// Default returns the embedded dataset.
func Default() (Dataset, error) {
	return Parse(dataset)
}

// Parse decodes and validates a YAML dataset.
func Parse(data []byte) (Dataset, error) {
	var d Dataset
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Dataset{}, fmt.Errorf("parse seed dataset: %w", err)
	}
	if err := validate.Struct(&d); err != nil {
		return Dataset{}, fmt.Errorf("seed validation failed: %w", err)
	}
	return d, nil
}

// Locate returns the coordinates of a known address.
func (d Dataset) Locate(address string) (lat, lon float64, ok bool) {
	for _, a := range d.Addresses {
		if strings.EqualFold(a.Address, address) {
			return a.Lat, a.Lon, true
		}
	}
	return 0, 0, false
}

// Build resolves the dataset at now. hash turns plain-text passwords into
// stored credentials.
func (d Dataset) Build(now time.Time, hash func(string) (string, error)) (Records, error) {
	var r Records
	for i, v := range d.Volunteers {
		rec, err := d.volunteer(v, hash)
		if err != nil {
			return Records{}, fmt.Errorf("seed volunteer %d: %w", i+1, err)
		}
		r.Volunteers = append(r.Volunteers, rec)
	}
	for i, c := range d.Calls {
		rec, err := d.call(c, now)
		if err != nil {
			return Records{}, fmt.Errorf("seed call %d: %w", i+1, err)
		}
		r.Calls = append(r.Calls, rec)
	}
	for i, a := range d.Assignments {
		rec, err := d.assignment(a, now)
		if err != nil {
			return Records{}, fmt.Errorf("seed assignment %d: %w", i+1, err)
		}
		r.Assignments = append(r.Assignments, rec)
	}
	return r, nil
}

func (d Dataset) volunteer(v Volunteer, hash func(string) (string, error)) (domain.Volunteer, error) {
	pw, err := hash(v.Password)
	if err != nil {
		return domain.Volunteer{}, err
	}
	rec := domain.Volunteer{
		FullName:     v.FullName,
		Phone:        v.Phone,
		Email:        v.Email,
		Password:     pw,
		Address:      v.Address,
		Role:         domain.Role(v.Role),
		Active:       v.Active,
		MaxDistance:  v.MaxDistance,
		DistanceType: domain.DistanceType(v.DistanceType),
	}
	if rec.DistanceType == "" {
		rec.DistanceType = domain.DistanceAir
	}
	if v.Address != "" {
		lat, lon, ok := d.Locate(v.Address)
		if !ok {
			return domain.Volunteer{}, fmt.Errorf("unknown address %q", v.Address)
		}
		rec.Latitude, rec.Longitude = &lat, &lon
	}
	return rec, nil
}

func (d Dataset) call(c Call, now time.Time) (domain.Call, error) {
	t := domain.CallType(c.Type)
	if !t.Valid() {
		return domain.Call{}, fmt.Errorf("unknown call type %q", c.Type)
	}
	lat, lon, ok := d.Locate(c.Address)
	if !ok {
		return domain.Call{}, fmt.Errorf("unknown address %q", c.Address)
	}
	rec := domain.Call{
		Type:        t,
		Description: c.Description,
		Address:     c.Address,
		Latitude:    lat,
		Longitude:   lon,
		OpenedAt:    now.Add(-c.OpenedAgo),
	}
	if c.DeadlineIn != nil {
		dl := now.Add(*c.DeadlineIn)
		if !dl.After(rec.OpenedAt) {
			return domain.Call{}, fmt.Errorf("deadline not after opening")
		}
		rec.Deadline = &dl
	}
	return rec, nil
}

func (d Dataset) assignment(a Assignment, now time.Time) (domain.Assignment, error) {
	if a.Call > len(d.Calls) || a.Volunteer > len(d.Volunteers) {
		return domain.Assignment{}, fmt.Errorf("reference out of range: call %d volunteer %d", a.Call, a.Volunteer)
	}
	rec := domain.Assignment{
		CallID:      int64(a.Call),
		VolunteerID: int64(a.Volunteer),
		StartedAt:   now.Add(-a.StartedAgo),
	}
	if a.EndedAgo == nil {
		return rec, nil
	}
	et := domain.EndType(a.EndType)
	if !et.Valid() {
		return domain.Assignment{}, fmt.Errorf("unknown end type %q", a.EndType)
	}
	rec.Close(now.Add(-*a.EndedAgo), et)
	if rec.EndedAt.Before(rec.StartedAt) {
		return domain.Assignment{}, fmt.Errorf("ends before it starts")
	}
	return rec, nil
}
