package volunteer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"volunteer-dispatch/internal/apperr"
	"volunteer-dispatch/internal/domain"
	"volunteer-dispatch/internal/logx"
)

// Deps groups the collaborators of Service.
type Deps struct {
	Guard       locker
	Volunteers  volunteerStore
	Assignments assignmentStore
	Calls       callStore
	Geocoder    geocoder
	Events      notifier
	Validator   validator
	Logger      logx.Logger
	// HashCost is the bcrypt cost; zero means bcrypt.DefaultCost.
	HashCost int
}

// Service manages volunteer profiles and credentials.
type Service struct {
	guard            locker
	volunteers       volunteerStore
	assignments      assignmentStore
	calls            callStore
	geo              geocoder
	events           notifier
	validate         validator
	logger           logx.Logger
	hashCost         int
	operationTimeout time.Duration

	gate chan struct{}
}

// NewService creates and configures a volunteer Service.
func NewService(d Deps, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if d.HashCost == 0 {
		d.HashCost = bcrypt.DefaultCost
	}
	return &Service{
		guard:            d.Guard,
		volunteers:       d.Volunteers,
		assignments:      d.Assignments,
		calls:            d.Calls,
		geo:              d.Geocoder,
		events:           d.Events,
		validate:         d.Validator,
		logger:           d.Logger,
		hashCost:         d.HashCost,
		operationTimeout: timeout,
		gate:             make(chan struct{}, 1),
	}
}

// HashPassword returns the bcrypt hash of a plain-text password.
func HashPassword(password string, cost int) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func (s *Service) acquire(ctx context.Context) (release func(), err error) {
	select {
	case s.gate <- struct{}{}:
		return func() { <-s.gate }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// validateCreate validates and normalizes a volunteer for creation.
func (s *Service) validateCreate(v *domain.Volunteer) error {
	v.FullName = strings.TrimSpace(v.FullName)
	v.Email = strings.TrimSpace(v.Email)
	v.Address = strings.TrimSpace(v.Address)
	if err := s.validate.Struct(v); err != nil {
		return err
	}
	if v.Password == "" {
		return fmt.Errorf("password: %w", apperr.ErrNullProperty)
	}
	if v.Role == "" {
		v.Role = domain.RoleVolunteer
	}
	if v.DistanceType == "" {
		v.DistanceType = domain.DistanceAir
	}
	return validateFields(v.Phone, v.Email, v.Role, v.DistanceType, v.MaxDistance)
}

func validateFields(phone, email string, role domain.Role, dt domain.DistanceType, maxDistance *float64) error {
	if !domain.ValidatePhone(phone) {
		return fmt.Errorf("phone %q: %w", phone, apperr.ErrInvalid)
	}
	if !domain.ValidateEmail(email) {
		return fmt.Errorf("email %q: %w", email, apperr.ErrInvalid)
	}
	if !role.Valid() {
		return fmt.Errorf("role %q: %w", role, apperr.ErrInvalid)
	}
	if !dt.Valid() {
		return fmt.Errorf("distance type %q: %w", dt, apperr.ErrInvalid)
	}
	if maxDistance != nil && *maxDistance < 0 {
		return fmt.Errorf("max distance: %w", apperr.ErrInvalid)
	}
	return nil
}

func validateUpdate(u *domain.PartialVolunteerUpdate, current domain.Volunteer) error {
	if u.FullName != nil && strings.TrimSpace(*u.FullName) == "" {
		return fmt.Errorf("full name: %w", apperr.ErrNullProperty)
	}
	if u.Password != nil && *u.Password == "" {
		return fmt.Errorf("password: %w", apperr.ErrNullProperty)
	}
	next := current
	apply(&next, *u, nil, nil)
	return validateFields(next.Phone, next.Email, next.Role, next.DistanceType, next.MaxDistance)
}

// apply copies the set fields of u onto v. lat/lon replace the coordinates
// when the address is part of the update.
func apply(v *domain.Volunteer, u domain.PartialVolunteerUpdate, lat, lon *float64) {
	if u.FullName != nil {
		v.FullName = strings.TrimSpace(*u.FullName)
	}
	if u.Phone != nil {
		v.Phone = *u.Phone
	}
	if u.Email != nil {
		v.Email = strings.TrimSpace(*u.Email)
	}
	if u.Address != nil {
		v.Address = strings.TrimSpace(*u.Address)
		v.Latitude, v.Longitude = lat, lon
	}
	if u.Role != nil {
		v.Role = *u.Role
	}
	if u.Active != nil {
		v.Active = *u.Active
	}
	if u.MaxDistance != nil {
		v.MaxDistance = u.MaxDistance
	}
	if u.DistanceType != nil {
		v.DistanceType = *u.DistanceType
	}
}

func (s *Service) locate(ctx context.Context, address string) (lat, lon *float64, err error) {
	if address == "" {
		return nil, nil, nil
	}
	la, lo, err := s.geo.Resolve(ctx, address)
	if err != nil {
		return nil, nil, fmt.Errorf("geocode volunteer address: %w", err)
	}
	return &la, &lo, nil
}

// Add registers a volunteer. Only admins may add volunteers, except for the
// very first one.
func (s *Service) Add(ctx context.Context, requesterID int64, v domain.Volunteer) (domain.Volunteer, error) {
	if err := s.validateCreate(&v); err != nil {
		return domain.Volunteer{}, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	release, err := s.acquire(ctx)
	if err != nil {
		return domain.Volunteer{}, err
	}
	defer release()

	if err := s.guard.Admit(ctx); err != nil {
		return domain.Volunteer{}, err
	}
	hash, err := HashPassword(v.Password, s.hashCost)
	if err != nil {
		return domain.Volunteer{}, err
	}
	v.Password = hash
	if v.Latitude, v.Longitude, err = s.locate(ctx, v.Address); err != nil {
		return domain.Volunteer{}, err
	}

	unlock, err := s.guard.Mutate(ctx)
	if err != nil {
		return domain.Volunteer{}, err
	}
	v.ID, err = s.addLocked(ctx, requesterID, v)
	unlock()
	if err != nil {
		return domain.Volunteer{}, err
	}

	s.logger.Info("volunteer added", logx.Int64("volunteer_id", v.ID), logx.String("role", string(v.Role)))
	s.events.NotifyListChanged()
	return v, nil
}

func (s *Service) addLocked(ctx context.Context, requesterID int64, v domain.Volunteer) (int64, error) {
	anyone, err := s.volunteers.Find(ctx, func(domain.Volunteer) bool { return true })
	if err != nil {
		return 0, err
	}
	if anyone != nil {
		if err := s.requireAdmin(ctx, requesterID); err != nil {
			return 0, err
		}
	}
	if err := s.ensureUniqueEmail(ctx, 0, v.Email); err != nil {
		return 0, err
	}
	return s.volunteers.Create(ctx, v)
}

func (s *Service) requireAdmin(ctx context.Context, requesterID int64) error {
	r, err := s.volunteers.Get(ctx, requesterID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return fmt.Errorf("requester %d: %w", requesterID, apperr.ErrInvalidRole)
		}
		return err
	}
	if !r.IsAdmin() {
		return fmt.Errorf("volunteer %d is not an admin: %w", requesterID, apperr.ErrInvalidRole)
	}
	return nil
}

func (s *Service) ensureUniqueEmail(ctx context.Context, selfID int64, email string) error {
	dup, err := s.volunteers.Find(ctx, func(o domain.Volunteer) bool {
		return o.ID != selfID && strings.EqualFold(o.Email, email)
	})
	if err != nil {
		return err
	}
	if dup != nil {
		return fmt.Errorf("email %q: %w", email, apperr.ErrAlreadyExists)
	}
	return nil
}

// Update applies a partial update. Volunteers may edit their own profile;
// role and activation changes are reserved for admins.
func (s *Service) Update(ctx context.Context, requesterID int64, u domain.PartialVolunteerUpdate) (domain.Volunteer, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	release, err := s.acquire(ctx)
	if err != nil {
		return domain.Volunteer{}, err
	}
	defer release()

	if err := s.guard.Admit(ctx); err != nil {
		return domain.Volunteer{}, err
	}

	unlockRead := s.guard.RLock()
	current, err := s.volunteers.Get(ctx, u.ID)
	if err == nil {
		err = s.authorizeUpdate(ctx, requesterID, current, u)
	}
	unlockRead()
	if err != nil {
		return domain.Volunteer{}, err
	}
	if err := validateUpdate(&u, current); err != nil {
		return domain.Volunteer{}, err
	}

	if u.Password != nil {
		hash, err := HashPassword(*u.Password, s.hashCost)
		if err != nil {
			return domain.Volunteer{}, err
		}
		u.Password = &hash
	}
	var lat, lon *float64
	if u.Address != nil {
		if lat, lon, err = s.locate(ctx, strings.TrimSpace(*u.Address)); err != nil {
			return domain.Volunteer{}, err
		}
	}

	unlock, err := s.guard.Mutate(ctx)
	if err != nil {
		return domain.Volunteer{}, err
	}
	updated, err := s.updateLocked(ctx, u, lat, lon)
	unlock()
	if err != nil {
		return domain.Volunteer{}, err
	}

	s.logger.Info("volunteer updated", logx.Int64("volunteer_id", updated.ID))
	s.events.NotifyItemChanged(updated.ID)
	s.events.NotifyListChanged()
	return updated, nil
}

func (s *Service) authorizeUpdate(ctx context.Context, requesterID int64, current domain.Volunteer, u domain.PartialVolunteerUpdate) error {
	privileged := (u.Role != nil && *u.Role != current.Role) || (u.Active != nil && *u.Active != current.Active)
	if requesterID == current.ID && !privileged {
		return nil
	}
	return s.requireAdmin(ctx, requesterID)
}

func (s *Service) updateLocked(ctx context.Context, u domain.PartialVolunteerUpdate, lat, lon *float64) (domain.Volunteer, error) {
	v, err := s.volunteers.Get(ctx, u.ID)
	if err != nil {
		return domain.Volunteer{}, err
	}
	if u.Active != nil && !*u.Active && v.Active {
		open, err := s.openAssignment(ctx, v.ID)
		if err != nil {
			return domain.Volunteer{}, err
		}
		if open != nil {
			return domain.Volunteer{}, fmt.Errorf("volunteer %d handles call %d: %w", v.ID, open.CallID, apperr.ErrInvalid)
		}
	}
	if u.Email != nil {
		if err := s.ensureUniqueEmail(ctx, v.ID, strings.TrimSpace(*u.Email)); err != nil {
			return domain.Volunteer{}, err
		}
	}
	apply(&v, u, lat, lon)
	if u.Password != nil {
		v.Password = *u.Password
	}
	if err := s.volunteers.Update(ctx, v); err != nil {
		return domain.Volunteer{}, err
	}
	return v, nil
}

func (s *Service) openAssignment(ctx context.Context, volunteerID int64) (*domain.Assignment, error) {
	open, err := s.assignments.List(ctx, func(a domain.Assignment) bool {
		return a.VolunteerID == volunteerID && a.Open()
	})
	if err != nil || len(open) == 0 {
		return nil, err
	}
	return &open[0], nil
}

// Delete removes a volunteer that was never assigned. Admins only.
func (s *Service) Delete(ctx context.Context, requesterID, id int64) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	unlock, err := s.guard.Mutate(ctx)
	if err != nil {
		return err
	}
	err = s.deleteLocked(ctx, requesterID, id)
	unlock()
	if err != nil {
		return err
	}

	s.logger.Info("volunteer deleted", logx.Int64("volunteer_id", id))
	s.events.NotifyItemChanged(id)
	s.events.NotifyListChanged()
	return nil
}

func (s *Service) deleteLocked(ctx context.Context, requesterID, id int64) error {
	if err := s.requireAdmin(ctx, requesterID); err != nil {
		return err
	}
	if _, err := s.volunteers.Get(ctx, id); err != nil {
		return err
	}
	refs, err := s.assignments.List(ctx, func(a domain.Assignment) bool { return a.VolunteerID == id })
	if err != nil {
		return err
	}
	if len(refs) > 0 {
		return fmt.Errorf("volunteer %d has assignments: %w", id, apperr.ErrDeletionImpossible)
	}
	return s.volunteers.Delete(ctx, id)
}

// Get returns a volunteer by id.
func (s *Service) Get(ctx context.Context, id int64) (domain.Volunteer, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	defer s.guard.RLock()()
	return s.volunteers.Get(ctx, id)
}

// Login checks the password of a volunteer and returns its role.
func (s *Service) Login(ctx context.Context, id int64, password string) (domain.Role, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	unlock := s.guard.RLock()
	v, err := s.volunteers.Get(ctx, id)
	unlock()
	if err != nil {
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(v.Password), []byte(password)); err != nil {
		s.logger.Warn("login failed", logx.Int64("volunteer_id", id))
		return "", fmt.Errorf("volunteer %d: %w", id, apperr.ErrUnauthorized)
	}
	return v.Role, nil
}
