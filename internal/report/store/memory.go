package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkgerror"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkguid"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/report/entity"
)

// InMemoryStore keeps folders and files in process memory. It backs local runs
// and tests.
type InMemoryStore struct {
	mu    sync.RWMutex
	files map[string]*fileRecord
	order []string
	id    pkguid.StringID
	now   func() time.Time
}

type fileRecord struct {
	mu       sync.RWMutex
	meta     entity.RemoteFile
	folderID string
	mimeType string
	data     []byte
}

func NewInMemoryStore(id pkguid.StringID) *InMemoryStore {
	if id == nil {
		id = pkguid.NewUUID()
	}

	return &InMemoryStore{
		files: make(map[string]*fileRecord),
		id:    id,
		now:   time.Now,
	}
}

func (s *InMemoryStore) FindFiles(ctx context.Context, folderID, name string) ([]entity.RemoteFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entity.RemoteFile
	for _, id := range s.order {
		rec := s.files[id]
		if rec.folderID == folderID && rec.meta.Name == name {
			out = append(out, rec.snapshot())
		}
	}

	return out, nil
}

func (s *InMemoryStore) Download(ctx context.Context, fileID string) ([]byte, error) {
	rec, err := s.get(fileID)
	if err != nil {
		return nil, err
	}

	rec.mu.RLock()
	defer rec.mu.RUnlock()

	return slices.Clone(rec.data), nil
}

func (s *InMemoryStore) Create(ctx context.Context, folderID, name, mimeType string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.id.Generate()
	if _, exists := s.files[id]; exists {
		return "", pkgerror.NewBusiness("file already exists", pkgerror.CodeConflict)
	}

	s.files[id] = &fileRecord{
		meta: entity.RemoteFile{
			ID:        id,
			Name:      name,
			CreatedAt: s.now(),
			Size:      int64(len(data)),
		},
		folderID: folderID,
		mimeType: mimeType,
		data:     slices.Clone(data),
	}
	s.order = append(s.order, id)

	return id, nil
}

func (s *InMemoryStore) Update(ctx context.Context, fileID, mimeType string, data []byte) error {
	rec, err := s.get(fileID)
	if err != nil {
		return err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	rec.data = slices.Clone(data)
	rec.mimeType = mimeType
	rec.meta.Size = int64(len(data))

	return nil
}

// MimeType returns the content type a file was last written with.
func (s *InMemoryStore) MimeType(fileID string) (string, error) {
	rec, err := s.get(fileID)
	if err != nil {
		return "", err
	}

	rec.mu.RLock()
	defer rec.mu.RUnlock()

	return rec.mimeType, nil
}

// Len returns the number of files across all folders.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

func (s *InMemoryStore) get(fileID string) (*fileRecord, error) {
	s.mu.RLock()
	rec, ok := s.files[fileID]
	s.mu.RUnlock()
	if !ok {
		return nil, pkgerror.ErrNotFound
	}

	return rec, nil
}

func (r *fileRecord) snapshot() entity.RemoteFile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.meta
}
