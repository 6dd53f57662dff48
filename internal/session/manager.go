package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"kanbanflow/internal/model"
)

// BoardStore resolves the board a session is opened for.
type BoardStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error)
}

// Manager keeps one Session per board, created on first use.
type Manager struct {
	boards   BoardStore
	store    Store
	notifier Notifier
	opts     []Option

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

func NewManager(boards BoardStore, store Store, notifier Notifier, opts ...Option) *Manager {
	return &Manager{
		boards:   boards,
		store:    store,
		notifier: notifier,
		opts:     opts,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Session returns the session for boardID, loading the board and its first
// snapshot if none is open yet.
func (m *Manager) Session(ctx context.Context, boardID uuid.UUID) (*Session, error) {
	m.mu.Lock()
	s, ok := m.sessions[boardID]
	m.mu.Unlock()
	if ok {
		return s, nil
	}

	board, err := m.boards.GetByID(ctx, boardID)
	if err != nil {
		return nil, err
	}

	s = New(*board, m.store, m.notifier, m.opts...)
	if err := s.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("load board %s: %w", boardID, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.sessions[boardID]; ok {
		return existing, nil
	}
	m.sessions[boardID] = s
	return s, nil
}

// Len returns the number of open sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
