// Package settings holds the committed fee parameters and the admin drafts
// staged against them.
//
// Readers always see a complete committed record. A commit validates the
// draft, writes it through to the repository, and only then publishes it,
// so a reader observes either the previous record or the new one.
package settings

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"sebengine/internal/models"
	"sebengine/internal/repositories"
	"sebengine/internal/validation"

	"github.com/google/uuid"
)

// Draft is an uncommitted copy of the settings owned by one admin session.
type Draft struct {
	ID        string
	Settings  models.Settings
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Service struct {
	repo repositories.SettingsRepository

	committed atomic.Pointer[models.Settings]
	commitMu  sync.Mutex

	draftsMu sync.Mutex
	drafts   map[string]*Draft
	draftTTL time.Duration

	now func() time.Time
}

// NewService loads the committed record from repo. When nothing has been
// committed, or the stored record cannot be decoded, the defaults are used.
func NewService(ctx context.Context, repo repositories.SettingsRepository, draftTTL time.Duration) (*Service, error) {
	s, found, err := repo.Load(ctx)
	switch {
	case errors.Is(err, repositories.ErrCorruptRecord):
		log.Printf("Ignoring corrupt settings record, using defaults: %v", err)
		s = models.DefaultSettings()
	case err != nil:
		return nil, fmt.Errorf("load settings: %w", err)
	case !found:
		log.Println("No committed settings found, using defaults")
	}

	svc := &Service{
		repo:     repo,
		drafts:   make(map[string]*Draft),
		draftTTL: draftTTL,
		now:      time.Now,
	}
	svc.committed.Store(&s)
	return svc, nil
}

// Load returns the committed settings.
func (s *Service) Load() models.Settings {
	return *s.committed.Load()
}

// Ping checks the backing store.
func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// Stage opens a new draft seeded from the committed settings.
func (s *Service) Stage() Draft {
	now := s.now()
	d := &Draft{
		ID:        uuid.NewString(),
		Settings:  s.Load(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.draftsMu.Lock()
	defer s.draftsMu.Unlock()
	s.pruneLocked(now)
	s.drafts[d.ID] = d
	return *d
}

// Draft returns a copy of the draft with the given ID.
func (s *Service) Draft(id string) (Draft, error) {
	s.draftsMu.Lock()
	defer s.draftsMu.Unlock()

	d, err := s.draftLocked(id)
	if err != nil {
		return Draft{}, err
	}
	return *d, nil
}

// Edit applies field edits to a draft. The committed settings are untouched.
func (s *Service) Edit(id string, p Patch) (Draft, error) {
	s.draftsMu.Lock()
	defer s.draftsMu.Unlock()

	d, err := s.draftLocked(id)
	if err != nil {
		return Draft{}, err
	}
	p.apply(&d.Settings)
	d.UpdatedAt = s.now()
	return *d, nil
}

// ResetDraftToDefault overwrites a draft with the compiled-in defaults.
func (s *Service) ResetDraftToDefault(id string) (Draft, error) {
	s.draftsMu.Lock()
	defer s.draftsMu.Unlock()

	d, err := s.draftLocked(id)
	if err != nil {
		return Draft{}, err
	}
	d.Settings = models.DefaultSettings()
	d.UpdatedAt = s.now()
	return *d, nil
}

// Commit validates a draft, persists it and publishes it as the committed
// settings. On any failure the committed settings are unchanged and the
// draft is kept so it can be corrected. On success the draft is closed.
func (s *Service) Commit(ctx context.Context, id string) (models.Settings, error) {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	d, err := s.Draft(id)
	if err != nil {
		return models.Settings{}, err
	}

	// Publish exactly what the store will hand back after a restart.
	committed := d.Settings.Record().Settings()

	v := validation.New()
	v.Settings(committed)
	if !v.Valid() {
		return models.Settings{}, &ValidationError{Fields: v.Errors}
	}

	if err := s.repo.Save(ctx, committed); err != nil {
		log.Printf("Settings commit failed for draft %s: %v", id, err)
		return models.Settings{}, fmt.Errorf("persist settings: %w", err)
	}

	s.committed.Store(&committed)

	s.draftsMu.Lock()
	delete(s.drafts, id)
	s.draftsMu.Unlock()

	log.Printf("Settings committed from draft %s", id)
	return committed, nil
}

// Discard drops a draft without committing it.
func (s *Service) Discard(id string) {
	s.draftsMu.Lock()
	delete(s.drafts, id)
	s.draftsMu.Unlock()
}

func (s *Service) draftLocked(id string) (*Draft, error) {
	d, ok := s.drafts[id]
	if !ok || s.expired(d, s.now()) {
		delete(s.drafts, id)
		return nil, ErrDraftNotFound
	}
	return d, nil
}

func (s *Service) expired(d *Draft, now time.Time) bool {
	return s.draftTTL > 0 && now.Sub(d.CreatedAt) > s.draftTTL
}

func (s *Service) pruneLocked(now time.Time) {
	for id, d := range s.drafts {
		if s.expired(d, now) {
			delete(s.drafts, id)
		}
	}
}
