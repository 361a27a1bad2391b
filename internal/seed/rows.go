package seed

import (
	"fmt"
	"strings"
	"time"
)

// Row types for the twelve entity tables. Every row is write-once: nothing
// mutates it after the insert.

type Department struct {
	ID       int
	Name     string
	Location string
}

type Employee struct {
	ID        int
	FirstName string
	LastName  string
	Email     string
	Salary    Cents
	HireDate  time.Time
	DeptID    int
}

type Project struct {
	ID        int
	Name      string
	StartDate time.Time
	EndDate   time.Time
	DeptID    int
}

type Assignment struct {
	EmpID        int
	ProjectID    int
	Role         string
	AssignedDate time.Time
}

type Customer struct {
	ID        int
	Name      string
	Email     string
	CreatedAt time.Time
}

type Address struct {
	ID         int
	CustID     int
	Line1      string
	City       string
	Region     string
	PostalCode string
	Country    string
}

type Product struct {
	ID     int
	Name   string
	SKU    string
	Price  Cents
	Active bool
}

type Order struct {
	ID        int
	CustID    int
	OrderedAt time.Time
	Status    string
}

type OrderItem struct {
	OrderID   int
	LineNo    int
	ProdID    int
	Quantity  int
	UnitPrice Cents
}

type Payment struct {
	ID      int
	OrderID int
	Amount  Cents // derived from the order's items immediately before insert
	Method  string
	PaidAt  time.Time
}

type EventLogEntry struct {
	ID        int
	Actor     string
	Action    string
	EventTime time.Time
	Payload   string
}

type AuditTrailEntry struct {
	ID        int
	TableName string
	KeyValue  int
	Action    string
	ChangedAt time.Time
}

// Each generator is a pure function over (scale factor, parent rows, random
// provider): identity is the 1-based row index, FK placement follows the
// coverage formula, and only non-key attributes consume randomness. That
// keeps every generator unit-testable without a live store.

func GenerateDepartments(n int, rnd *Provider) []Department {
	rows := make([]Department, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, Department{
			ID:       i,
			Name:     fmt.Sprintf("%s %d", pick(deptNames, i), i),
			Location: pick(cities, i),
		})
	}
	return rows
}

func GenerateEmployees(n int, depts []Department, rnd *Provider) []Employee {
	if len(depts) == 0 {
		return nil
	}
	rows := make([]Employee, 0, n)
	for i := 1; i <= n; i++ {
		first := pick(firstNames, rnd.UniformInt(len(firstNames)))
		last := pick(lastNames, rnd.UniformInt(len(lastNames)))
		rows = append(rows, Employee{
			ID:        i,
			FirstName: first,
			LastName:  last,
			Email: fmt.Sprintf("%s.%s_%d@%s",
				strings.ToLower(first), strings.ToLower(last), i, pick(emailDomains, i)),
			Salary:   rnd.UniformCents(3200_00, 15800_00),
			HireDate: rnd.PastDate(365 * 8),
			DeptID:   depts[CoverageIndex(i, 0, len(depts))-1].ID,
		})
	}
	return rows
}

func GenerateProjects(n int, depts []Department, rnd *Provider) []Project {
	if len(depts) == 0 {
		return nil
	}
	rows := make([]Project, 0, n)
	for i := 1; i <= n; i++ {
		start := rnd.PastDate(720)
		rows = append(rows, Project{
			ID:        i,
			Name:      fmt.Sprintf("%s %d", pick(projectNouns, i), i),
			StartDate: start,
			EndDate:   start.AddDate(0, 0, rnd.UniformInt(365)),
			DeptID:    depts[CoverageIndex(i, 0, len(depts))-1].ID,
		})
	}
	return rows
}

// GenerateAssignments produces two assignments per employee, spread over the
// project set with offsets 0 and 1 so the two target different projects.
// When both offsets land on the same project (a single-project set) the
// duplicate pair is dropped to keep (employee, project) unique.
func GenerateAssignments(employees []Employee, projects []Project, rnd *Provider) []Assignment {
	if len(projects) == 0 {
		return nil
	}
	rows := make([]Assignment, 0, 2*len(employees))
	for _, e := range employees {
		first := CoverageIndex(e.ID, 0, len(projects))
		second := CoverageIndex(e.ID, 1, len(projects))
		rows = append(rows, Assignment{
			EmpID:        e.ID,
			ProjectID:    projects[first-1].ID,
			Role:         pick(assignmentRoles, e.ID),
			AssignedDate: rnd.PastDate(365),
		})
		if second == first {
			continue
		}
		rows = append(rows, Assignment{
			EmpID:        e.ID,
			ProjectID:    projects[second-1].ID,
			Role:         pick(assignmentRoles, e.ID+1),
			AssignedDate: rnd.PastDate(365),
		})
	}
	return rows
}

func GenerateCustomers(n int, rnd *Provider) []Customer {
	rows := make([]Customer, 0, n)
	for i := 1; i <= n; i++ {
		first := pick(firstNames, rnd.UniformInt(len(firstNames)))
		last := pick(lastNames, rnd.UniformInt(len(lastNames)))
		rows = append(rows, Customer{
			ID:        i,
			Name:      first + " " + last,
			Email:     fmt.Sprintf("%s.%s_%d@%s", strings.ToLower(first), strings.ToLower(last), i, pick(emailDomains, i+1)),
			CreatedAt: rnd.PastDate(365 * 3),
		})
	}
	return rows
}

// GenerateAddresses produces one address per customer.
func GenerateAddresses(customers []Customer, rnd *Provider) []Address {
	rows := make([]Address, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, Address{
			ID:         c.ID,
			CustID:     customers[CoverageIndex(c.ID, 0, len(customers))-1].ID,
			Line1:      fmt.Sprintf("%d %s St", rnd.UniformInt(9999), pick(lastNames, c.ID)),
			City:       pick(cities, c.ID),
			Region:     pick(regions, c.ID),
			PostalCode: fmt.Sprintf("%05d", rnd.UniformInt(99999)),
			Country:    pick(countries, c.ID),
		})
	}
	return rows
}

func GenerateProducts(n int, rnd *Provider) []Product {
	rows := make([]Product, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, Product{
			ID:     i,
			Name:   fmt.Sprintf("%s %d", pick(productNouns, i), i),
			SKU:    fmt.Sprintf("SKU-%06d", i),
			Price:  rnd.UniformCents(1_00, 999_00),
			Active: i%5 != 0,
		})
	}
	return rows
}

func GenerateOrders(n int, customers []Customer, rnd *Provider) []Order {
	if len(customers) == 0 {
		return nil
	}
	rows := make([]Order, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, Order{
			ID:        i,
			CustID:    customers[CoverageIndex(i, 0, len(customers))-1].ID,
			OrderedAt: rnd.PastDate(365),
			Status:    orderStatus(i),
		})
	}
	return rows
}

// GenerateOrderItems gives each order an item count in [1, maxItems] derived
// from the order index, spreads products with the line number as the coverage
// offset, and snapshots the product's current price as the item's unit price.
// The count never consumes the provider: a rerun regenerates the exact same
// (order_id, line_no) keys, so every line collides and is skipped rather than
// appended after the order's payment has already committed.
func GenerateOrderItems(orders []Order, products []Product, maxItems int, rnd *Provider) []OrderItem {
	if len(products) == 0 {
		return nil
	}
	var rows []OrderItem
	for _, o := range orders {
		count := CoverageIndex(o.ID, 0, maxItems)
		for line := 1; line <= count; line++ {
			prod := products[CoverageIndex(o.ID, line, len(products))-1]
			rows = append(rows, OrderItem{
				OrderID:   o.ID,
				LineNo:    line,
				ProdID:    prod.ID,
				Quantity:  rnd.UniformInt(4),
				UnitPrice: prod.Price,
			})
		}
	}
	return rows
}

// GeneratePayments produces one payment skeleton per order. Amount stays zero
// here; the seeder fills it from the order's committed items right before the
// insert.
func GeneratePayments(orders []Order, rnd *Provider) []Payment {
	rows := make([]Payment, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, Payment{
			ID:      o.ID,
			OrderID: o.ID,
			Method:  pick(paymentMethods, o.ID),
			PaidAt:  rnd.PastDate(30),
		})
	}
	return rows
}

func GenerateEventLog(n int, rnd *Provider) []EventLogEntry {
	rows := make([]EventLogEntry, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, EventLogEntry{
			ID:        i,
			Actor:     fmt.Sprintf("%s_%d", strings.ToLower(pick(firstNames, i)), i),
			Action:    pick(eventActions, i),
			EventTime: rnd.PastDate(90),
			Payload:   fmt.Sprintf(`{"source":"demoseed","seq":%d}`, i),
		})
	}
	return rows
}

func GenerateAuditTrail(n int, rnd *Provider) []AuditTrailEntry {
	audited := []string{"employees", "projects", "customers", "orders", "products"}
	rows := make([]AuditTrailEntry, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, AuditTrailEntry{
			ID:        i,
			TableName: pick(audited, i),
			KeyValue:  rnd.UniformInt(1000),
			Action:    pick(auditActions, i),
			ChangedAt: rnd.PastDate(90),
		})
	}
	return rows
}
