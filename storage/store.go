package storage

import (
	"context"
	"sync"
)

// Store persists artifact documents keyed by folder and storage key.
type Store interface {
	// Load returns the stored document, or a NotFound error when none exists.
	Load(ctx context.Context, folder, key string) (string, error)
	// Save replaces the whole document at folder/key.
	Save(ctx context.Context, folder, key, doc string) error
}

// KeyLocks hands out one mutex per folder/key pair.
type KeyLocks struct {
	locks sync.Map
}

func (l *KeyLocks) Lock(folder, key string) func() {
	v, _ := l.locks.LoadOrStore(folder+"/"+key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
