package schema

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/oc2pg/demoseed/internal/store"
)

// Lifecycle drives every table and counter between absent and present.
// Both directions are idempotent: dropping a missing object and creating an
// existing one are no-ops, anything else aborts the run.
type Lifecycle struct {
	guard      *store.Guard
	schemaName string
}

func NewLifecycle(guard *store.Guard, schemaName string) *Lifecycle {
	return &Lifecycle{guard: guard, schemaName: schemaName}
}

// ResetAll drops every table child-first, then every counter.
func (l *Lifecycle) ResetAll(ctx context.Context) error {
	color.Yellow("🗑️  Dropping tables...")

	catalog := Catalog()
	for _, name := range DropOrder {
		t := catalog[name]
		if _, err := l.guard.Exec(ctx, store.PhaseDrop, DropTableSQL(l.schemaName, t)); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", name, err)
		}
	}
	for _, name := range DropOrder {
		t := catalog[name]
		if !t.HasSeq {
			continue
		}
		if _, err := l.guard.Exec(ctx, store.PhaseDrop, DropSeqSQL(l.schemaName, t)); err != nil {
			return fmt.Errorf("failed to drop sequence %s: %w", SeqName(name), err)
		}
	}

	color.Green("✅ Schema reset complete")
	return nil
}

// EnsureSchema creates every table parent-first, each followed by its counter.
func (l *Lifecycle) EnsureSchema(ctx context.Context) error {
	color.Cyan("📐 Creating tables...")

	catalog := Catalog()
	for _, name := range CreateOrder() {
		t := catalog[name]
		if _, err := l.guard.Exec(ctx, store.PhaseCreate, CreateTableSQL(l.schemaName, t)); err != nil {
			return fmt.Errorf("failed to create table %s: %w", name, err)
		}
		if !t.HasSeq {
			continue
		}
		if _, err := l.guard.Exec(ctx, store.PhaseCreate, CreateSeqSQL(l.schemaName, t)); err != nil {
			return fmt.Errorf("failed to create sequence %s: %w", SeqName(name), err)
		}
	}

	color.Green("✅ Schema ensured")
	return nil
}
