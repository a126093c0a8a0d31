// internal/services/catalog_service.go
package services

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/javajoker/catalog-admin/internal/models"
)

// CatalogObserver is notified with a copy of the new state after every mutation.
type CatalogObserver func(state models.CatalogState)

// CatalogStore holds the committed products and categories for the lifetime of
// the process. Both collections are append-only.
type CatalogStore struct {
	mu               sync.RWMutex
	products         []models.Product
	categories       []models.Category
	placeholderImage string
	lastCategoryID   int64
	observers        []CatalogObserver
	now              func() time.Time
}

func NewCatalogStore(placeholderImage string) *CatalogStore {
	if placeholderImage == "" {
		placeholderImage = models.DefaultPlaceholderImage
	}
	return &CatalogStore{
		products:         []models.Product{},
		categories:       []models.Category{},
		placeholderImage: placeholderImage,
		now:              time.Now,
	}
}

func (s *CatalogStore) PlaceholderImage() string {
	return s.placeholderImage
}

func (s *CatalogStore) Subscribe(fn CatalogObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *CatalogStore) GetState() models.CatalogState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

func (s *CatalogStore) Products() []models.Product {
	return s.GetState().Products
}

func (s *CatalogStore) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// HasCategory reports whether a category with exactly this name exists.
func (s *CatalogStore) HasCategory(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.Name == name {
			return true
		}
	}
	return false
}

// Seed appends a snapshot to the store. It is used once at startup.
func (s *CatalogStore) Seed(state models.CatalogState) {
	s.mu.Lock()
	for _, p := range state.Products {
		s.products = append(s.products, p.Clone())
	}
	for _, c := range state.Categories {
		s.categories = append(s.categories, c)
		if id, err := strconv.ParseInt(c.ID, 10, 64); err == nil && id > s.lastCategoryID {
			s.lastCategoryID = id
		}
	}
	state, observers := s.stateLocked(), s.observersLocked()
	s.mu.Unlock()

	notify(observers, state)
}

// AddCategory appends a category named name. The id is derived from the
// commit time in milliseconds and is strictly increasing.
func (s *CatalogStore) AddCategory(name string) (models.Category, error) {
	if strings.TrimSpace(name) == "" {
		return models.Category{}, ErrBlankCategoryName
	}

	s.mu.Lock()
	id := s.now().UnixMilli()
	if id <= s.lastCategoryID {
		id = s.lastCategoryID + 1
	}
	s.lastCategoryID = id

	category := models.Category{ID: strconv.FormatInt(id, 10), Name: name}
	s.categories = append(s.categories, category)
	state, observers := s.stateLocked(), s.observersLocked()
	s.mu.Unlock()

	notify(observers, state)
	return category, nil
}

// AddProduct commits a validated draft. When no image was attached the
// placeholder image path is stored instead.
func (s *CatalogStore) AddProduct(draft models.ProductDraft) (models.Product, error) {
	if err := draft.Validate(); err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrDraftIncomplete, err)
	}

	product := draft.ToProduct(s.placeholderImage)

	s.mu.Lock()
	s.products = append(s.products, product)
	state, observers := s.stateLocked(), s.observersLocked()
	s.mu.Unlock()

	notify(observers, state)
	return product.Clone(), nil
}

func (s *CatalogStore) stateLocked() models.CatalogState {
	return models.CatalogState{
		Products:   s.products,
		Categories: s.categories,
	}.Clone()
}

func (s *CatalogStore) observersLocked() []CatalogObserver {
	out := make([]CatalogObserver, len(s.observers))
	copy(out, s.observers)
	return out
}

func notify(observers []CatalogObserver, state models.CatalogState) {
	for _, fn := range observers {
		fn(state)
	}
}
