// Package verify inspects a seeded database and reports row counts,
// referential orphans, and payment/item aggregate mismatches.
package verify

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/oc2pg/demoseed/internal/schema"
	"github.com/oc2pg/demoseed/internal/store"
)

type TableCount struct {
	Table string `yaml:"table"`
	Rows  int    `yaml:"rows"`
}

type OrphanCheck struct {
	Child  string `yaml:"child"`
	Parent string `yaml:"parent"`
	Count  int    `yaml:"count"`
}

type Report struct {
	Counts            []TableCount  `yaml:"counts"`
	Orphans           []OrphanCheck `yaml:"orphans"`
	PaymentMismatches []int         `yaml:"payment_mismatches"`
	OK                bool          `yaml:"ok"`
}

// fkChecks lists every child/parent edge of the dataset.
var fkChecks = []struct {
	child, fkColumn, parent string
}{
	{"employees", "dept_id", "departments"},
	{"projects", "dept_id", "departments"},
	{"emp_project_assignments", "emp_id", "employees"},
	{"emp_project_assignments", "project_id", "projects"},
	{"addresses", "cust_id", "customers"},
	{"orders", "cust_id", "customers"},
	{"order_items", "order_id", "orders"},
	{"order_items", "prod_id", "products"},
	{"payments", "order_id", "orders"},
}

// Run produces a full report. Any query failure aborts: verification runs
// against a schema that EnsureSchema has created.
func Run(ctx context.Context, s *store.Store, schemaName string) (*Report, error) {
	report := &Report{OK: true}

	for _, name := range schema.CreateOrder() {
		query, args, err := s.Builder().
			Select("COUNT(*)").
			From(schema.QualifiedName(schemaName, name)).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("failed to build count query for %s: %w", name, err)
		}
		var n int
		if err := s.QueryRow(ctx, query, args...).Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", name, err)
		}
		report.Counts = append(report.Counts, TableCount{Table: name, Rows: n})
	}

	for _, chk := range fkChecks {
		query := fmt.Sprintf(
			"SELECT COUNT(*) FROM %s c LEFT JOIN %s p ON p.id = c.%s WHERE p.id IS NULL",
			schema.QualifiedName(schemaName, chk.child),
			schema.QualifiedName(schemaName, chk.parent),
			chk.fkColumn,
		)
		var n int
		if err := s.QueryRow(ctx, query).Scan(&n); err != nil {
			return nil, fmt.Errorf("failed orphan check %s→%s: %w", chk.child, chk.parent, err)
		}
		if n > 0 {
			report.OK = false
		}
		report.Orphans = append(report.Orphans, OrphanCheck{Child: chk.child, Parent: chk.parent, Count: n})
	}

	mismatches, err := paymentMismatches(ctx, s, schemaName)
	if err != nil {
		return nil, err
	}
	report.PaymentMismatches = mismatches
	if len(mismatches) > 0 {
		report.OK = false
	}

	return report, nil
}

// paymentMismatches returns the order ids whose payment amount differs from
// the exact sum of quantity × unit_price over the order's items.
func paymentMismatches(ctx context.Context, s *store.Store, schemaName string) ([]int, error) {
	query := fmt.Sprintf(`
		SELECT p.order_id
		FROM %s p
		LEFT JOIN %s oi ON oi.order_id = p.order_id
		GROUP BY p.order_id, p.amount
		HAVING p.amount <> COALESCE(SUM(oi.quantity * oi.unit_price), 0)
		ORDER BY p.order_id`,
		schema.QualifiedName(schemaName, "payments"),
		schema.QualifiedName(schemaName, "order_items"),
	)

	rows, err := s.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed payment aggregate check: %w", err)
	}
	defer rows.Close()

	var out []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan mismatch row: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// WriteYAML persists the report for the migration tool's demo scripts.
func WriteYAML(report *Report, path string) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}
	return nil
}
