package schema

import (
	"fmt"
	"strings"
)

// Table describes one table of the demo dataset: its name, whether it carries
// an identity sequence, and the body of its CREATE TABLE statement.
type Table struct {
	Name    string
	HasSeq  bool
	Columns []string
}

// DropOrder lists every table child-first so DROP TABLE never trips over a
// dependent foreign key. CreateOrder is the exact reverse; the generation
// order in the seeder follows CreateOrder too.
var DropOrder = []string{
	"order_items",
	"payments",
	"emp_project_assignments",
	"orders",
	"employees",
	"projects",
	"addresses",
	"customers",
	"products",
	"departments",
	"event_log",
	"audit_trail",
}

// CreateOrder returns the parent-first table order.
func CreateOrder() []string {
	out := make([]string, len(DropOrder))
	for i, name := range DropOrder {
		out[len(DropOrder)-1-i] = name
	}
	return out
}

// Catalog returns the twelve table definitions keyed by name.
func Catalog() map[string]Table {
	tables := []Table{
		{
			Name: "departments", HasSeq: true,
			Columns: []string{
				"id INTEGER PRIMARY KEY",
				"name VARCHAR(100) NOT NULL",
				"location VARCHAR(100) NOT NULL",
			},
		},
		{
			Name: "employees", HasSeq: true,
			Columns: []string{
				"id INTEGER PRIMARY KEY",
				"first_name VARCHAR(100) NOT NULL",
				"last_name VARCHAR(100) NOT NULL",
				"email VARCHAR(255) NOT NULL UNIQUE",
				"salary NUMERIC(12,2) NOT NULL",
				"hire_date DATE NOT NULL",
				"dept_id INTEGER NOT NULL REFERENCES %SCHEMA%.departments(id)",
			},
		},
		{
			Name: "projects", HasSeq: true,
			Columns: []string{
				"id INTEGER PRIMARY KEY",
				"name VARCHAR(200) NOT NULL",
				"start_date DATE NOT NULL",
				"end_date DATE",
				"dept_id INTEGER NOT NULL REFERENCES %SCHEMA%.departments(id)",
			},
		},
		{
			Name: "emp_project_assignments", HasSeq: false,
			Columns: []string{
				"emp_id INTEGER NOT NULL REFERENCES %SCHEMA%.employees(id)",
				"project_id INTEGER NOT NULL REFERENCES %SCHEMA%.projects(id)",
				"role VARCHAR(50) NOT NULL",
				"assigned_date DATE NOT NULL",
				"PRIMARY KEY (emp_id, project_id)",
			},
		},
		{
			Name: "customers", HasSeq: true,
			Columns: []string{
				"id INTEGER PRIMARY KEY",
				"name VARCHAR(200) NOT NULL",
				"email VARCHAR(255) NOT NULL UNIQUE",
				"created_at DATE NOT NULL",
			},
		},
		{
			Name: "addresses", HasSeq: true,
			Columns: []string{
				"id INTEGER PRIMARY KEY",
				"cust_id INTEGER NOT NULL REFERENCES %SCHEMA%.customers(id)",
				"line1 VARCHAR(255) NOT NULL",
				"city VARCHAR(100) NOT NULL",
				"region VARCHAR(100)",
				"postal_code VARCHAR(20) NOT NULL",
				"country VARCHAR(100) NOT NULL",
			},
		},
		{
			Name: "products", HasSeq: true,
			Columns: []string{
				"id INTEGER PRIMARY KEY",
				"name VARCHAR(300) NOT NULL",
				"sku VARCHAR(50) NOT NULL UNIQUE",
				"price NUMERIC(12,2) NOT NULL",
				"active BOOLEAN NOT NULL DEFAULT true",
			},
		},
		{
			Name: "orders", HasSeq: true,
			Columns: []string{
				"id INTEGER PRIMARY KEY",
				"cust_id INTEGER NOT NULL REFERENCES %SCHEMA%.customers(id)",
				"ordered_at DATE NOT NULL",
				"status VARCHAR(20) NOT NULL",
			},
		},
		{
			Name: "order_items", HasSeq: false,
			Columns: []string{
				"order_id INTEGER NOT NULL REFERENCES %SCHEMA%.orders(id)",
				"line_no INTEGER NOT NULL",
				"prod_id INTEGER NOT NULL REFERENCES %SCHEMA%.products(id)",
				"quantity INTEGER NOT NULL",
				"unit_price NUMERIC(12,2) NOT NULL",
				"PRIMARY KEY (order_id, line_no)",
			},
		},
		{
			Name: "payments", HasSeq: true,
			Columns: []string{
				"id INTEGER PRIMARY KEY",
				"order_id INTEGER NOT NULL REFERENCES %SCHEMA%.orders(id)",
				"amount NUMERIC(12,2) NOT NULL",
				"method VARCHAR(30) NOT NULL",
				"paid_at DATE NOT NULL",
			},
		},
		{
			Name: "event_log", HasSeq: true,
			Columns: []string{
				"id INTEGER PRIMARY KEY",
				"actor VARCHAR(100) NOT NULL",
				"action VARCHAR(50) NOT NULL",
				"event_time TIMESTAMP NOT NULL",
				"payload TEXT",
			},
		},
		{
			Name: "audit_trail", HasSeq: true,
			Columns: []string{
				"id INTEGER PRIMARY KEY",
				"table_name VARCHAR(100) NOT NULL",
				"key_value INTEGER NOT NULL",
				"action VARCHAR(50) NOT NULL",
				"changed_at TIMESTAMP NOT NULL",
			},
		},
	}

	byName := make(map[string]Table, len(tables))
	for _, t := range tables {
		byName[t.Name] = t
	}
	return byName
}

// SeqName returns the counter name for an identity-bearing table.
func SeqName(table string) string {
	return table + "_seq"
}

// QualifiedName returns the schema-qualified, quoted identifier.
func QualifiedName(schemaName, object string) string {
	return quoteIdent(schemaName) + "." + quoteIdent(object)
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// CreateTableSQL renders the CREATE TABLE statement for a table in the given
// schema. No IF NOT EXISTS: idempotence comes from error classification.
func CreateTableSQL(schemaName string, t Table) string {
	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = "  " + strings.ReplaceAll(c, "%SCHEMA%", quoteIdent(schemaName))
	}
	return fmt.Sprintf("CREATE TABLE %s (\n%s\n)",
		QualifiedName(schemaName, t.Name), strings.Join(cols, ",\n"))
}

// CreateSeqSQL renders the CREATE SEQUENCE statement for a table's counter.
func CreateSeqSQL(schemaName string, t Table) string {
	return fmt.Sprintf("CREATE SEQUENCE %s", QualifiedName(schemaName, SeqName(t.Name)))
}

// DropTableSQL renders the DROP TABLE statement.
func DropTableSQL(schemaName string, t Table) string {
	return fmt.Sprintf("DROP TABLE %s", QualifiedName(schemaName, t.Name))
}

// DropSeqSQL renders the DROP SEQUENCE statement.
func DropSeqSQL(schemaName string, t Table) string {
	return fmt.Sprintf("DROP SEQUENCE %s", QualifiedName(schemaName, SeqName(t.Name)))
}
