// internal/services/wizard_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/catalog-admin/internal/models"
)

// WizardService owns the open add-product sessions. Each session is guarded
// by the service lock, so a Wizard is never touched by two requests at once.
// Uploaded draft images belong to their session until the product is
// confirmed. Images of replaced or discarded drafts are freed.
type WizardService struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*wizardSession
	store    *CatalogStore
	images   *StorageService
	ttl      time.Duration
}

// wizardSession is one open wizard. imageKey is the storage key of the
// uploaded image on the draft, if any.
type wizardSession struct {
	wizard    *Wizard
	imageKey  string
	createdAt time.Time
	updatedAt time.Time
}

// WizardView is the read model of one session returned by every wizard call.
type WizardView struct {
	ID        uuid.UUID           `json:"id"`
	Step      models.WizardStep   `json:"step"`
	StepName  string              `json:"step_name"`
	Draft     models.ProductDraft `json:"draft"`
	Valid     bool                `json:"valid"`
	Missing   string              `json:"missing,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// NewWizardService creates the session registry. images may be nil when
// uploads are not served. A ttl of zero keeps idle sessions forever.
func NewWizardService(store *CatalogStore, images *StorageService, ttl time.Duration) *WizardService {
	return &WizardService{
		sessions: make(map[uuid.UUID]*wizardSession),
		store:    store,
		images:   images,
		ttl:      ttl,
	}
}

// Run expires idle sessions until ctx is done. It returns at once when no
// ttl is configured.
func (s *WizardService) Run(ctx context.Context) {
	if s.ttl <= 0 {
		return
	}
	interval := s.ttl / 2
	if interval > time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.expire(time.Now())
		}
	}
}

// expire drops every session untouched for longer than the ttl and frees
// its uploaded image. It returns the number of sessions removed.
func (s *WizardService) expire(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	expired := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.updatedAt) <= s.ttl {
			continue
		}
		s.releaseImage(sess)
		delete(s.sessions, id)
		expired++
		logrus.WithField("wizard_id", id).Debug("Wizard session expired")
	}
	return expired
}

func (s *WizardService) Start() WizardView {
	now := time.Now()
	id := uuid.New()
	sess := &wizardSession{wizard: NewWizard(), createdAt: now, updatedAt: now}

	s.mu.Lock()
	s.sessions[id] = sess
	view := sess.view(id)
	s.mu.Unlock()

	logrus.WithField("wizard_id", id).Debug("Wizard session started")
	return view
}

func (s *WizardService) Get(id uuid.UUID) (WizardView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return WizardView{}, fmt.Errorf("%w: %s", ErrWizardNotFound, id)
	}
	return sess.view(id), nil
}

// Count reports the number of open sessions.
func (s *WizardService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Update applies fn to the session's wizard and returns the resulting view.
// The view is returned alongside fn's error so callers can show current state.
func (s *WizardService) Update(id uuid.UUID, fn func(w *Wizard) error) (WizardView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return WizardView{}, fmt.Errorf("%w: %s", ErrWizardNotFound, id)
	}
	err := fn(sess.wizard)
	if err == nil {
		sess.updatedAt = time.Now()
	}
	return sess.view(id), err
}

// SetDescription applies the description step fields. A non-empty category
// must name an existing catalog category; otherwise nothing is applied.
func (s *WizardService) SetDescription(id uuid.UUID, update DescriptionUpdate) (WizardView, error) {
	if update.Category != nil && *update.Category != "" && !s.store.HasCategory(*update.Category) {
		current, err := s.Get(id)
		if err != nil {
			return WizardView{}, err
		}
		return current, fmt.Errorf("%w: %q", ErrUnknownCategory, *update.Category)
	}
	return s.Update(id, func(w *Wizard) error {
		w.SetDescription(update)
		return nil
	})
}

// AttachImage puts an uploaded image on the session's draft and frees the
// image it replaces. The upload is freed instead when the session is gone.
func (s *WizardService) AttachImage(id uuid.UUID, upload *UploadResult) (WizardView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		if s.images != nil {
			s.images.Delete(upload.Key)
		}
		return WizardView{}, fmt.Errorf("%w: %s", ErrWizardNotFound, id)
	}

	previous := sess.imageKey
	sess.wizard.AttachImage(upload.URL)
	sess.imageKey = upload.Key
	sess.updatedAt = time.Now()
	if previous != "" && previous != upload.Key && s.images != nil {
		s.images.Delete(previous)
	}
	return sess.view(id), nil
}

func (s *WizardService) Next(id uuid.UUID) (WizardView, error) {
	return s.Update(id, (*Wizard).Next)
}

func (s *WizardService) Back(id uuid.UUID) (WizardView, error) {
	return s.Update(id, (*Wizard).Back)
}

// Cancel discards the session. It is rejected past the first step.
func (s *WizardService) Cancel(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrWizardNotFound, id)
	}
	if err := sess.wizard.Cancel(); err != nil {
		return err
	}
	s.releaseImage(sess)
	delete(s.sessions, id)
	logrus.WithField("wizard_id", id).Debug("Wizard session cancelled")
	return nil
}

// Confirm commits the session's draft and closes the session. The uploaded
// image now belongs to the product and is kept. On failure the session is
// kept unchanged and its view is returned with the error.
func (s *WizardService) Confirm(id uuid.UUID) (models.Product, WizardView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return models.Product{}, WizardView{}, fmt.Errorf("%w: %s", ErrWizardNotFound, id)
	}

	product, err := sess.wizard.Confirm(s.store)
	if err != nil {
		return models.Product{}, sess.view(id), err
	}
	delete(s.sessions, id)

	logrus.WithFields(logrus.Fields{
		"wizard_id": id,
		"product":   product.Name,
		"category":  product.Category,
	}).Info("Product added from wizard")
	return product, WizardView{}, nil
}

// releaseImage frees the session's uploaded image. Callers hold s.mu.
func (s *WizardService) releaseImage(sess *wizardSession) {
	if sess.imageKey == "" || s.images == nil {
		return
	}
	s.images.Delete(sess.imageKey)
	sess.imageKey = ""
}

func (sess *wizardSession) view(id uuid.UUID) WizardView {
	draft := sess.wizard.Draft()
	v := WizardView{
		ID:        id,
		Step:      sess.wizard.Step(),
		StepName:  sess.wizard.Step().String(),
		Draft:     draft,
		Valid:     true,
		CreatedAt: sess.createdAt,
		UpdatedAt: sess.updatedAt,
	}
	if err := draft.Validate(); err != nil {
		v.Valid = false
		var invalid *models.InvalidDraftError
		if errors.As(err, &invalid) {
			v.Missing = invalid.Field
		}
	}
	return v
}
