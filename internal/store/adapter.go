// Package store adapts a kv.Store into the transaction persistence layer:
// the whole list lives as one JSON-encoded entry under a fixed key.
package store

import (
	"context"

	"siga/internal/core"
	"siga/internal/id"
	"siga/internal/kv"
	applog "siga/internal/log"
)

// DefaultKey is the storage slot holding the transaction list.
const DefaultKey = "siga-transactions"

// Adapter reads and writes the transaction list through a kv.Store. Failures
// never propagate to the user path: load falls back to the seeded or empty
// list, save logs and keeps the caller's in-memory state. Single attempt,
// no retry.
type Adapter struct {
	store  kv.Store
	ids    id.Generator
	logger *applog.Logger
}

func NewAdapter(store kv.Store, ids id.Generator, logger *applog.Logger) *Adapter {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &Adapter{
		store:  store,
		ids:    ids,
		logger: logger.WithComponent("store"),
	}
}

// Load returns the transaction list under key. On first use (no entry) it
// seeds the demo records, persists them and returns them. A decode failure
// is treated as "no data": it is logged and the empty default is returned.
func (a *Adapter) Load(ctx context.Context, key string) []core.Transaction {
	value, ok, err := a.store.Get(ctx, key)
	if err != nil {
		a.logger.ErrorContext(ctx, "Storage read failed, using empty list",
			applog.FieldStorageKey, key, applog.FieldError, err)
		return []core.Transaction{}
	}

	if !ok {
		demo := a.seedDemo()
		a.persist(ctx, key, demo)
		a.logger.InfoContext(ctx, "Seeded demo transactions",
			applog.FieldStorageKey, key, applog.FieldCount, len(demo))
		return demo
	}

	txns, err := decode(value)
	if err != nil {
		a.logger.ErrorContext(ctx, "Storage decode failed, using empty list",
			applog.FieldStorageKey, key, applog.FieldError, err)
		return []core.Transaction{}
	}
	return txns
}

// Save encodes the full list and overwrites the entry under key. On failure
// the prior persisted state stays in place and the in-memory update is kept.
func (a *Adapter) Save(ctx context.Context, key string, txns []core.Transaction) {
	a.persist(ctx, key, txns)
}

func (a *Adapter) persist(ctx context.Context, key string, txns []core.Transaction) {
	value, err := encode(txns)
	if err != nil {
		a.logger.ErrorContext(ctx, "Storage encode failed",
			applog.FieldStorageKey, key, applog.FieldError, err)
		return
	}
	if err := a.store.Set(ctx, key, value); err != nil {
		a.logger.ErrorContext(ctx, "Storage write failed",
			applog.FieldStorageKey, key, applog.FieldError, err)
	}
}

// seedDemo builds the four first-run records: two incomes and two expenses
// across USD and EUR, matching the product's demo dataset.
func (a *Adapter) seedDemo() []core.Transaction {
	return []core.Transaction{
		{
			ID:          a.ids.NewID(),
			Type:        core.Income,
			Date:        core.NewDate(2024, 7, 15),
			Description: "Servicios de consultoría",
			Amount:      core.Money{Cents: 250000},
			Currency:    core.USD,
		},
		{
			ID:          a.ids.NewID(),
			Type:        core.Expense,
			Date:        core.NewDate(2024, 7, 16),
			Description: "Suscripción a software",
			Amount:      core.Money{Cents: 5000},
			Currency:    core.USD,
		},
		{
			ID:          a.ids.NewID(),
			Type:        core.Income,
			Date:        core.NewDate(2024, 7, 20),
			Description: "Venta de producto A",
			Amount:      core.Money{Cents: 80000},
			Currency:    core.EUR,
		},
		{
			ID:          a.ids.NewID(),
			Type:        core.Expense,
			Date:        core.NewDate(2024, 7, 22),
			Description: "Alquiler de oficina",
			Amount:      core.Money{Cents: 120000},
			Currency:    core.USD,
		},
	}
}
