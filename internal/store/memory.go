package store

import (
	"context"
	"sync"

	"github.com/GregMSThompson/report-cms/internal/errs"
	"github.com/GregMSThompson/report-cms/internal/models"
)

// MemoryStore is an in-process document store for local development and
// tests. Every call copies the document so callers never share memory with
// the store. GetErr and PutErr, when set, make the next calls fail.
type MemoryStore struct {
	mu   sync.Mutex
	doc  *models.AppData
	gets int
	puts int

	GetErr error
	PutErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreWith returns a store already holding d.
func NewMemoryStoreWith(d *models.AppData) *MemoryStore {
	return &MemoryStore{doc: d.Clone()}
}

func (s *MemoryStore) Get(_ context.Context) (*models.AppData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gets++
	if s.GetErr != nil {
		return nil, errs.NewStoreError(errs.OpRead, "failed to get content document", s.GetErr)
	}
	if s.doc == nil {
		return nil, errs.NewNotFoundError("content document not found")
	}
	return s.doc.Clone(), nil
}

func (s *MemoryStore) Put(_ context.Context, d *models.AppData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puts++
	if s.PutErr != nil {
		return errs.NewStoreError(errs.OpWrite, "failed to save content document", s.PutErr)
	}
	s.doc = d.Clone()
	return nil
}

// SetErrors replaces the injected failures.
func (s *MemoryStore) SetErrors(getErr, putErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.GetErr = getErr
	s.PutErr = putErr
}

// Snapshot returns a copy of what is durably stored, or nil.
func (s *MemoryStore) Snapshot() *models.AppData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

func (s *MemoryStore) Gets() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gets
}

func (s *MemoryStore) Puts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.puts
}
