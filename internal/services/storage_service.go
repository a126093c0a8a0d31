// internal/services/storage_service.go
package services

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// StorageService keeps uploaded product images in memory for the lifetime of
// the process. Nothing is written to disk.
type StorageService struct {
	mu        sync.RWMutex
	objects   map[string]StoredImage
	maxSize   int64
	urlPrefix string
}

type StoredImage struct {
	Name     string
	MimeType string
	Data     []byte
}

type UploadResult struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
}

func NewStorageService(maxSize int64, urlPrefix string) *StorageService {
	if urlPrefix == "" {
		urlPrefix = "/uploads"
	}
	return &StorageService{
		objects:   make(map[string]StoredImage),
		maxSize:   maxSize,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
	}
}

// UploadImage stores the content of r when it sniffs as an image. The
// original filename is ignored; the stored name is random.
func (s *StorageService) UploadImage(r io.Reader) (*UploadResult, error) {
	// Read one byte past the limit to detect oversize bodies.
	limit := s.maxSize
	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if limit > 0 && int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: limit %d bytes", ErrImageTooLarge, limit)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrInvalidImage)
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return nil, fmt.Errorf("%w: detected %s", ErrInvalidImage, mt.String())
	}

	name := uuid.New().String() + mt.Extension()
	s.mu.Lock()
	s.objects[name] = StoredImage{Name: name, MimeType: mt.String(), Data: data}
	s.mu.Unlock()

	return &UploadResult{
		URL:      s.urlPrefix + "/" + name,
		Key:      name,
		Size:     int64(len(data)),
		MimeType: mt.String(),
	}, nil
}

func (s *StorageService) Get(name string) (StoredImage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	img, ok := s.objects[name]
	if !ok {
		return StoredImage{}, fmt.Errorf("%w: %s", ErrImageNotFound, name)
	}
	return img, nil
}

func (s *StorageService) Delete(name string) {
	s.mu.Lock()
	delete(s.objects, name)
	s.mu.Unlock()
}

func (s *StorageService) MaxSize() int64 {
	return s.maxSize
}
