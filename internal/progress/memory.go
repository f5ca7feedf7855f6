package progress

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"

	"github.com/osse101/RaidCompanion_Go/internal/concurrency"
	"github.com/osse101/RaidCompanion_Go/internal/domain"
	"github.com/osse101/RaidCompanion_Go/internal/repository"
)

var errTxClosed = errors.New(domain.ErrMsgTxClosed)

// MemoryRepository keeps progress in process memory.
// A transaction holds a per-profile lock from GetProgressForUpdate until it ends,
// so read-modify-write cycles on one profile are atomic.
type MemoryRepository struct {
	locks    *concurrency.LockManager
	mu       sync.RWMutex
	profiles map[string]*domain.Progress
}

// NewMemoryRepository creates an empty in-memory progress store
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		locks:    concurrency.NewLockManager(),
		profiles: make(map[string]*domain.Progress),
	}
}

func (r *MemoryRepository) GetProgress(_ context.Context, profileID string) (*domain.Progress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[profileID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, profileID)
	}
	return clone(p), nil
}

func (r *MemoryRepository) DeleteProgress(_ context.Context, profileID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[profileID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrProfileNotFound, profileID)
	}
	delete(r.profiles, profileID)
	return nil
}

func (r *MemoryRepository) BeginTx(_ context.Context) (repository.ProgressTx, error) {
	return &memoryTx{
		repo:    r,
		pending: make(map[string]*domain.Progress),
		held:    make(map[string]func()),
	}, nil
}

type memoryTx struct {
	repo    *MemoryRepository
	pending map[string]*domain.Progress
	held    map[string]func()
	done    bool
}

func (tx *memoryTx) GetProgressForUpdate(ctx context.Context, profileID string) (*domain.Progress, error) {
	if tx.done {
		return nil, errTxClosed
	}
	if _, ok := tx.held[profileID]; !ok {
		tx.held[profileID] = tx.repo.locks.Lock(profileID)
	}
	if p, ok := tx.pending[profileID]; ok {
		return clone(p), nil
	}
	p, err := tx.repo.GetProgress(ctx, profileID)
	if err != nil {
		return domain.NewProgress(profileID), nil
	}
	return p, nil
}

func (tx *memoryTx) SaveProgress(_ context.Context, p *domain.Progress) error {
	if tx.done {
		return errTxClosed
	}
	tx.pending[p.ProfileID] = clone(p)
	return nil
}

func (tx *memoryTx) Commit(_ context.Context) error {
	if tx.done {
		return errTxClosed
	}
	tx.repo.mu.Lock()
	for id, p := range tx.pending {
		tx.repo.profiles[id] = p
	}
	tx.repo.mu.Unlock()
	tx.finish()
	return nil
}

func (tx *memoryTx) Rollback(_ context.Context) error {
	if tx.done {
		return errTxClosed
	}
	tx.finish()
	return nil
}

func (tx *memoryTx) finish() {
	tx.done = true
	tx.pending = nil
	for _, unlock := range tx.held {
		unlock()
	}
	tx.held = nil
}

func clone(p *domain.Progress) *domain.Progress {
	out := *p
	out.CompletedQuests = append([]string{}, p.CompletedQuests...)
	out.TrackedItems = append([]string{}, p.TrackedItems...)
	out.Inventory = maps.Clone(p.Inventory)
	out.WorkstationLevels = maps.Clone(p.WorkstationLevels)
	if out.Inventory == nil {
		out.Inventory = map[string]int{}
	}
	if out.WorkstationLevels == nil {
		out.WorkstationLevels = map[string]int{}
	}
	return &out
}
