// Package ledger owns the in-memory transaction list. It is the single
// mutation entry point: every change replaces the whole list and mirrors it
// synchronously to the storage adapter.
package ledger

import (
	"context"
	"sync"

	"siga/internal/core"
	"siga/internal/id"
	"siga/internal/store"
)

// Ledger is safe for concurrent use; HTTP handlers share one instance.
type Ledger struct {
	adapter *store.Adapter
	ids     id.Generator
	key     string

	mu   sync.Mutex
	txns []core.Transaction
}

// New creates a ledger persisting under key and loads the current list,
// seeding demo data on first use.
func New(ctx context.Context, adapter *store.Adapter, ids id.Generator, key string) *Ledger {
	if key == "" {
		key = store.DefaultKey
	}
	l := &Ledger{
		adapter: adapter,
		ids:     ids,
		key:     key,
	}
	l.txns = adapter.Load(ctx, key)
	return l
}

// All returns a snapshot of the current list in insertion order.
func (l *Ledger) All() []core.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]core.Transaction, len(l.txns))
	copy(out, l.txns)
	return out
}

// Len returns the number of recorded transactions.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.txns)
}

// Replace swaps the entire list and persists it. The in-memory update is
// kept even when the write fails (optimistic, no rollback).
func (l *Ledger) Replace(ctx context.Context, txns []core.Transaction) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.replaceLocked(ctx, txns)
}

func (l *Ledger) replaceLocked(ctx context.Context, txns []core.Transaction) {
	l.txns = txns
	l.adapter.Save(ctx, l.key, txns)
}

// Add validates the draft, assigns a fresh identifier and appends the new
// transaction. The created transaction is returned.
func (l *Ledger) Add(ctx context.Context, draft core.Draft) (core.Transaction, error) {
	if err := draft.Validate(); err != nil {
		return core.Transaction{}, err
	}
	tx := draft.Transaction(l.ids.NewID())

	l.mu.Lock()
	defer l.mu.Unlock()
	next := make([]core.Transaction, 0, len(l.txns)+1)
	next = append(next, l.txns...)
	next = append(next, tx)
	l.replaceLocked(ctx, next)
	return tx, nil
}
