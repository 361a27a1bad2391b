package seed

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/oc2pg/demoseed/internal/config"
	"github.com/oc2pg/demoseed/internal/schema"
	"github.com/oc2pg/demoseed/internal/store"
)

// Seeder runs the full generation pass: every entity type in strict
// dependency order, parents committed before children, payments only after
// their order's items. One shared Provider keeps the dataset shape
// internally consistent within the run.
type Seeder struct {
	scale      config.Scale
	store      *store.Store
	guard      *store.Guard
	rnd        *Provider
	totals     OrderTotaler
	schemaName string
}

func NewSeeder(cfg *config.Config, s *store.Store) *Seeder {
	return &Seeder{
		scale:      cfg.Scale,
		store:      s,
		guard:      store.NewGuard(s),
		rnd:        NewProvider(),
		totals:     NewAggregateComputer(s, cfg.Database.Schema),
		schemaName: cfg.Database.Schema,
	}
}

// Run seeds all twelve entity types. Statements run in autocommit mode, so
// each entity type is fully persisted before the next dependent one starts;
// a crash mid-run leaves a prefix of complete entity types and never a child
// without its parent.
func (s *Seeder) Run(ctx context.Context) error {
	color.Cyan("🌱 Seeding dataset...")

	depts := GenerateDepartments(s.scale.Departments, s.rnd)
	if err := s.insertDepartments(ctx, depts); err != nil {
		return err
	}

	customers := GenerateCustomers(s.scale.Customers, s.rnd)
	if err := s.insertCustomers(ctx, customers); err != nil {
		return err
	}

	products := GenerateProducts(s.scale.Products, s.rnd)
	if err := s.insertProducts(ctx, products); err != nil {
		return err
	}

	employees := GenerateEmployees(s.scale.Employees, depts, s.rnd)
	s.warnSkipped("employees", s.scale.Employees, len(employees))
	if err := s.insertEmployees(ctx, employees); err != nil {
		return err
	}

	projects := GenerateProjects(s.scale.Projects, depts, s.rnd)
	s.warnSkipped("projects", s.scale.Projects, len(projects))
	if err := s.insertProjects(ctx, projects); err != nil {
		return err
	}

	assignments := GenerateAssignments(employees, projects, s.rnd)
	if err := s.insertAssignments(ctx, assignments); err != nil {
		return err
	}

	addresses := GenerateAddresses(customers, s.rnd)
	if err := s.insertAddresses(ctx, addresses); err != nil {
		return err
	}

	orders := GenerateOrders(s.scale.Orders, customers, s.rnd)
	s.warnSkipped("orders", s.scale.Orders, len(orders))
	if err := s.insertOrders(ctx, orders); err != nil {
		return err
	}

	items := GenerateOrderItems(orders, products, s.scale.MaxItemsPerOrder, s.rnd)
	if err := s.insertOrderItems(ctx, items); err != nil {
		return err
	}

	payments := GeneratePayments(orders, s.rnd)
	if err := s.insertPayments(ctx, payments); err != nil {
		return err
	}

	events := GenerateEventLog(s.scale.Orders, s.rnd)
	if err := s.insertEventLog(ctx, events); err != nil {
		return err
	}

	audits := GenerateAuditTrail(s.scale.Orders, s.rnd)
	if err := s.insertAuditTrail(ctx, audits); err != nil {
		return err
	}

	color.Green("\n✅ Dataset seeding completed")
	return nil
}

func (s *Seeder) warnSkipped(table string, wanted, got int) {
	if wanted > 0 && got == 0 {
		color.Yellow("  ⚠️  Skipping %s: parent scale factor is zero", table)
	}
}

// insertRows writes one row per statement through the guard; a unique
// violation means the row survived a previous run and is counted as skipped.
func (s *Seeder) insertRows(ctx context.Context, table string, columns []string, rows [][]interface{}) error {
	color.Cyan("  📝 Seeding %s (%d rows)...", table, len(rows))

	skipped := 0
	for _, vals := range rows {
		query, args, err := s.store.Builder().
			Insert(schema.QualifiedName(s.schemaName, table)).
			Columns(columns...).
			Values(vals...).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert for %s: %w", table, err)
		}
		wasSkipped, err := s.guard.Exec(ctx, store.PhaseInsert, query, args...)
		if err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
		if wasSkipped {
			skipped++
		}
	}

	if skipped > 0 {
		color.Yellow("  ⏭️  %s: %d rows already present", table, skipped)
	}
	return nil
}

// syncCounter advances a table's sequence past the highest generated id so
// inserts made by downstream tooling cannot collide with seeded rows.
func (s *Seeder) syncCounter(ctx context.Context, table string, maxID int) error {
	if maxID < 1 {
		return nil
	}
	query := fmt.Sprintf("SELECT setval('%s', %d, true)",
		schema.QualifiedName(s.schemaName, schema.SeqName(table)), maxID)
	if err := s.store.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to advance counter for %s: %w", table, err)
	}
	return nil
}

func (s *Seeder) insertDepartments(ctx context.Context, rows []Department) error {
	vals := make([][]interface{}, len(rows))
	for i, r := range rows {
		vals[i] = []interface{}{r.ID, r.Name, r.Location}
	}
	if err := s.insertRows(ctx, "departments", []string{"id", "name", "location"}, vals); err != nil {
		return err
	}
	return s.syncCounter(ctx, "departments", len(rows))
}

func (s *Seeder) insertEmployees(ctx context.Context, rows []Employee) error {
	vals := make([][]interface{}, len(rows))
	for i, r := range rows {
		vals[i] = []interface{}{r.ID, r.FirstName, r.LastName, r.Email, r.Salary, r.HireDate, r.DeptID}
	}
	cols := []string{"id", "first_name", "last_name", "email", "salary", "hire_date", "dept_id"}
	if err := s.insertRows(ctx, "employees", cols, vals); err != nil {
		return err
	}
	return s.syncCounter(ctx, "employees", len(rows))
}

func (s *Seeder) insertProjects(ctx context.Context, rows []Project) error {
	vals := make([][]interface{}, len(rows))
	for i, r := range rows {
		vals[i] = []interface{}{r.ID, r.Name, r.StartDate, r.EndDate, r.DeptID}
	}
	cols := []string{"id", "name", "start_date", "end_date", "dept_id"}
	if err := s.insertRows(ctx, "projects", cols, vals); err != nil {
		return err
	}
	return s.syncCounter(ctx, "projects", len(rows))
}

func (s *Seeder) insertAssignments(ctx context.Context, rows []Assignment) error {
	vals := make([][]interface{}, len(rows))
	for i, r := range rows {
		vals[i] = []interface{}{r.EmpID, r.ProjectID, r.Role, r.AssignedDate}
	}
	cols := []string{"emp_id", "project_id", "role", "assigned_date"}
	return s.insertRows(ctx, "emp_project_assignments", cols, vals)
}

func (s *Seeder) insertCustomers(ctx context.Context, rows []Customer) error {
	vals := make([][]interface{}, len(rows))
	for i, r := range rows {
		vals[i] = []interface{}{r.ID, r.Name, r.Email, r.CreatedAt}
	}
	cols := []string{"id", "name", "email", "created_at"}
	if err := s.insertRows(ctx, "customers", cols, vals); err != nil {
		return err
	}
	return s.syncCounter(ctx, "customers", len(rows))
}

func (s *Seeder) insertAddresses(ctx context.Context, rows []Address) error {
	vals := make([][]interface{}, len(rows))
	for i, r := range rows {
		vals[i] = []interface{}{r.ID, r.CustID, r.Line1, r.City, r.Region, r.PostalCode, r.Country}
	}
	cols := []string{"id", "cust_id", "line1", "city", "region", "postal_code", "country"}
	if err := s.insertRows(ctx, "addresses", cols, vals); err != nil {
		return err
	}
	return s.syncCounter(ctx, "addresses", len(rows))
}

func (s *Seeder) insertProducts(ctx context.Context, rows []Product) error {
	vals := make([][]interface{}, len(rows))
	for i, r := range rows {
		vals[i] = []interface{}{r.ID, r.Name, r.SKU, r.Price, r.Active}
	}
	cols := []string{"id", "name", "sku", "price", "active"}
	if err := s.insertRows(ctx, "products", cols, vals); err != nil {
		return err
	}
	return s.syncCounter(ctx, "products", len(rows))
}

func (s *Seeder) insertOrders(ctx context.Context, rows []Order) error {
	vals := make([][]interface{}, len(rows))
	for i, r := range rows {
		vals[i] = []interface{}{r.ID, r.CustID, r.OrderedAt, r.Status}
	}
	cols := []string{"id", "cust_id", "ordered_at", "status"}
	if err := s.insertRows(ctx, "orders", cols, vals); err != nil {
		return err
	}
	return s.syncCounter(ctx, "orders", len(rows))
}

func (s *Seeder) insertOrderItems(ctx context.Context, rows []OrderItem) error {
	vals := make([][]interface{}, len(rows))
	for i, r := range rows {
		vals[i] = []interface{}{r.OrderID, r.LineNo, r.ProdID, r.Quantity, r.UnitPrice}
	}
	cols := []string{"order_id", "line_no", "prod_id", "quantity", "unit_price"}
	return s.insertRows(ctx, "order_items", cols, vals)
}

// insertPayments resolves each amount from the order's committed items
// immediately before the dependent insert.
func (s *Seeder) insertPayments(ctx context.Context, rows []Payment) error {
	color.Cyan("  📝 Seeding payments (%d rows)...", len(rows))

	skipped := 0
	for _, r := range rows {
		total, err := s.totals.OrderTotal(ctx, r.OrderID)
		if err != nil {
			return err
		}
		r.Amount = total

		query, args, err := s.store.Builder().
			Insert(schema.QualifiedName(s.schemaName, "payments")).
			Columns("id", "order_id", "amount", "method", "paid_at").
			Values(r.ID, r.OrderID, r.Amount, r.Method, r.PaidAt).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert for payments: %w", err)
		}
		wasSkipped, err := s.guard.Exec(ctx, store.PhaseInsert, query, args...)
		if err != nil {
			return fmt.Errorf("failed to insert into payments: %w", err)
		}
		if wasSkipped {
			skipped++
		}
	}

	if skipped > 0 {
		color.Yellow("  ⏭️  payments: %d rows already present", skipped)
	}
	return s.syncCounter(ctx, "payments", len(rows))
}

func (s *Seeder) insertEventLog(ctx context.Context, rows []EventLogEntry) error {
	vals := make([][]interface{}, len(rows))
	for i, r := range rows {
		vals[i] = []interface{}{r.ID, r.Actor, r.Action, r.EventTime, r.Payload}
	}
	cols := []string{"id", "actor", "action", "event_time", "payload"}
	if err := s.insertRows(ctx, "event_log", cols, vals); err != nil {
		return err
	}
	return s.syncCounter(ctx, "event_log", len(rows))
}

func (s *Seeder) insertAuditTrail(ctx context.Context, rows []AuditTrailEntry) error {
	vals := make([][]interface{}, len(rows))
	for i, r := range rows {
		vals[i] = []interface{}{r.ID, r.TableName, r.KeyValue, r.Action, r.ChangedAt}
	}
	cols := []string{"id", "table_name", "key_value", "action", "changed_at"}
	if err := s.insertRows(ctx, "audit_trail", cols, vals); err != nil {
		return err
	}
	return s.syncCounter(ctx, "audit_trail", len(rows))
}
