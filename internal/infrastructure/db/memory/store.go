// Package memory provides an in-memory Entity Store backend implementing the
// same repository contracts as the MongoDB backend. It is used in tests and
// for local development; engine logic never branches on which backend is
// active.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/atelieranj/client-portal/internal/core/domain"
	"github.com/atelieranj/client-portal/internal/core/ports"
)

// Store holds all collections behind one lock. Repositories hand out clones
// so callers can mutate freely and write back via Update, mirroring the
// read-copy/replace-on-write semantics of the durable backend.
type Store struct {
	mu           sync.RWMutex
	users        map[string]*domain.User
	emails       map[string]string // normalized email -> user id
	projects     map[string]*domain.Project
	availability map[string]domain.AvailabilityRecord
}

func NewStore() *Store {
	return &Store{
		users:        make(map[string]*domain.User),
		emails:       make(map[string]string),
		projects:     make(map[string]*domain.Project),
		availability: make(map[string]domain.AvailabilityRecord),
	}
}

func (s *Store) Users() ports.UserRepository                { return (*userRepo)(s) }
func (s *Store) Projects() ports.ProjectRepository          { return (*projectRepo)(s) }
func (s *Store) Availability() ports.AvailabilityRepository { return (*availabilityRepo)(s) }

// --- users ---

type userRepo Store

func (r *userRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.emails[user.Email]; taken {
		return nil, domain.ErrEmailTaken
	}
	r.users[user.ID] = cloneUser(user)
	r.emails[user.Email] = user.ID
	return cloneUser(user), nil
}

func (r *userRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *userRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.emails[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(r.users[id]), nil
}

func (r *userRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *userRepo) ListStaff(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var staff []*domain.User
	for _, u := range r.users {
		if u.Role != domain.RoleClient {
			staff = append(staff, cloneUser(u))
		}
	}
	sort.Slice(staff, func(i, j int) bool { return staff[i].Name < staff[j].Name })
	return staff, nil
}

// --- projects ---

type projectRepo Store

func (r *projectRepo) Create(_ context.Context, p *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects[p.ID] = cloneProject(p)
	return nil
}

func (r *projectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return cloneProject(p), nil
}

func (r *projectRepo) List(_ context.Context, filter ports.ProjectFilter) ([]*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []*domain.Project
	for _, p := range r.projects {
		if filter.ClientID != "" && p.ClientID != filter.ClientID {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		matched = append(matched, cloneProject(p))
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return matched, nil
}

func (r *projectRepo) Update(_ context.Context, p *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[p.ID]; !ok {
		return domain.ErrProjectNotFound
	}
	r.projects[p.ID] = cloneProject(p)
	return nil
}

// --- availability ---

type availabilityRepo Store

func (r *availabilityRepo) FindByDate(_ context.Context, date string) (*domain.AvailabilityRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.availability[date]
	if !ok {
		return nil, nil
	}
	clone := rec
	clone.Slots = append([]string(nil), rec.Slots...)
	return &clone, nil
}

func (r *availabilityRepo) List(_ context.Context) ([]domain.AvailabilityRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	records := make([]domain.AvailabilityRecord, 0, len(r.availability))
	for _, rec := range r.availability {
		clone := rec
		clone.Slots = append([]string(nil), rec.Slots...)
		records = append(records, clone)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Date < records[j].Date })
	return records, nil
}

func (r *availabilityRepo) ReplaceAll(_ context.Context, records []domain.AvailabilityRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.availability = make(map[string]domain.AvailabilityRecord, len(records))
	for _, rec := range records {
		clone := rec
		clone.Slots = append([]string(nil), rec.Slots...)
		r.availability[rec.Date] = clone
	}
	return nil
}

// --- clones ---

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	clone.OwnedProjects = append([]string(nil), u.OwnedProjects...)
	return &clone
}

func cloneProject(p *domain.Project) *domain.Project {
	clone := *p
	if p.InitialForm != nil {
		form := *p.InitialForm
		form.InspirationImages = append([]string(nil), p.InitialForm.InspirationImages...)
		clone.InitialForm = &form
	}
	if p.Appointment != nil {
		apt := *p.Appointment
		clone.Appointment = &apt
	}
	if p.Proposal != nil {
		prop := *p.Proposal
		clone.Proposal = &prop
	}
	if p.CompletionDate != nil {
		done := *p.CompletionDate
		clone.CompletionDate = &done
	}
	clone.PaymentRecords = append([]domain.PaymentRecord(nil), p.PaymentRecords...)
	clone.ConceptFiles = append([]string(nil), p.ConceptFiles...)
	clone.ChangeRequestFiles = append([]string(nil), p.ChangeRequestFiles...)
	clone.ConstructionUpdates = make([]domain.Update, len(p.ConstructionUpdates))
	for i, u := range p.ConstructionUpdates {
		clone.ConstructionUpdates[i] = u
		clone.ConstructionUpdates[i].ProgressImages = append([]string(nil), u.ProgressImages...)
	}
	return &clone
}
