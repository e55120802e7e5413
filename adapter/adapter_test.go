package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/zero-day-ai/foundation/ids"
)

type note struct {
	ID    ids.ResourceID `json:"id,omitempty" validate:"omitempty,resourceid"`
	Title string         `json:"title" validate:"identifier"`
	Owner string         `json:"owner,omitempty"`
}

// memDB is an in-memory Database used to exercise the contract helpers.
// Transactions work on a copy that replaces the parent's records on commit.
type memDB struct {
	mu      sync.Mutex
	records map[ids.ResourceID]note
}

func newMemDB(seed ...note) *memDB {
	db := &memDB{records: make(map[ids.ResourceID]note)}
	for _, n := range seed {
		db.records[n.ID] = n
	}
	return db
}

func (m *memDB) Insert(_ context.Context, rec note) (note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec.ID == "" {
		rec.ID = ids.NewResourceID()
	}
	m.records[rec.ID] = rec
	return rec, nil
}

func (m *memDB) Get(_ context.Context, id ids.ResourceID) (note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return note{}, ErrNotFound
	}
	return rec, nil
}

func (m *memDB) Update(_ context.Context, id ids.ResourceID, patch Patch) (note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return note{}, ErrNotFound
	}
	doc, err := toMap(rec)
	if err != nil {
		return note{}, err
	}
	maps.Copy(doc, patch)
	raw, err := json.Marshal(doc)
	if err != nil {
		return note{}, err
	}
	var updated note
	if err := json.Unmarshal(raw, &updated); err != nil {
		return note{}, err
	}
	updated.ID = id
	m.records[id] = updated
	return updated, nil
}

func (m *memDB) Delete(_ context.Context, id ids.ResourceID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return ErrNotFound
	}
	delete(m.records, id)
	return nil
}

func (m *memDB) Query(_ context.Context, filter Filter) ([]note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []note
	for _, id := range slices.Sorted(maps.Keys(m.records)) {
		rec := m.records[id]
		doc, err := toMap(rec)
		if err != nil {
			return nil, err
		}
		if matches(doc, filter) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *memDB) Transaction(ctx context.Context, fn func(ctx context.Context, tx Database[note]) error) error {
	m.mu.Lock()
	tx := &memDB{records: maps.Clone(m.records)}
	m.mu.Unlock()

	if err := fn(ctx, tx); err != nil {
		return err
	}

	m.mu.Lock()
	m.records = tx.records
	m.mu.Unlock()
	return nil
}

func (m *memDB) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

func toMap(rec note) (map[string]any, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	err = json.Unmarshal(raw, &doc)
	return doc, err
}

func matches(doc map[string]any, filter Filter) bool {
	for k, want := range filter {
		if fmt.Sprint(doc[k]) != fmt.Sprint(want) {
			return false
		}
	}
	return true
}

// memStorage is an in-memory Storage.
type memStorage struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{blobs: make(map[string][]byte)}
}

func (s *memStorage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[key]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(data), nil
}

func (s *memStorage) Put(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = slices.Clone(data)
	return nil
}

func (s *memStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
	return nil
}

func (s *memStorage) GenerateUploadURL(context.Context) (string, error) {
	return "https://blobs.example.test/upload/" + ids.Generate("upl"), nil
}

var (
	_ Database[note] = (*memDB)(nil)
	_ Storage        = (*memStorage)(nil)
)
