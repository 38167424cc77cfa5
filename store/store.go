// Package store keeps the draft pitch list between sessions.
package store

import (
	"context"
	"sync"

	"github.com/orayew2002/pitch-card/domain"
)

// DraftKey is the key the draft pitch list is saved under.
const DraftKey = "pitches"

// Store persists the draft pitch list.
type Store interface {
	// Load returns the saved draft. ok is false when nothing was saved.
	Load(ctx context.Context) (pitches []domain.Pitch, ok bool, err error)
	Save(ctx context.Context, pitches []domain.Pitch) error
	Clear(ctx context.Context) error
}

// Memory is an in-process Store.
type Memory struct {
	mu      sync.Mutex
	pitches []domain.Pitch
	saved   bool
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty Memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Load returns a copy of the held draft.
func (m *Memory) Load(context.Context) ([]domain.Pitch, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.saved {
		return nil, false, nil
	}
	return append([]domain.Pitch{}, m.pitches...), true, nil
}

// Save replaces the held draft.
func (m *Memory) Save(_ context.Context, pitches []domain.Pitch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pitches = append([]domain.Pitch{}, pitches...)
	m.saved = true
	return nil
}

// Clear drops the held draft.
func (m *Memory) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pitches = nil
	m.saved = false
	return nil
}
