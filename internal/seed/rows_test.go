package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoverageIndex(t *testing.T) {
	tests := []struct {
		i, offset, p int
		want         int
	}{
		{1, 0, 6, 2},
		{5, 0, 6, 6},
		{6, 0, 6, 1},
		{50, 0, 6, 3},
		{1, 1, 12, 3},
		{7, 0, 1, 1},
		{3, 0, 0, 0},
		{3, 0, -1, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CoverageIndex(tt.i, tt.offset, tt.p),
			"CoverageIndex(%d, %d, %d)", tt.i, tt.offset, tt.p)
	}
}

func TestCoverageIndexReachesEveryParent(t *testing.T) {
	// Once the child count reaches the parent count, every parent index
	// appears at least once.
	const parents = 6
	seen := make(map[int]bool)
	for i := 1; i <= parents; i++ {
		seen[CoverageIndex(i, 0, parents)] = true
	}
	assert.Len(t, seen, parents)
}

func TestOrderStatusMapping(t *testing.T) {
	assert.Equal(t, "CLOSED", orderStatus(3))
	assert.Equal(t, "NEW", orderStatus(4))
	assert.Equal(t, "PAID", orderStatus(5))
	assert.Equal(t, "SHIPPED", orderStatus(6))
	assert.Equal(t, "CLOSED", orderStatus(7))
}

func TestGenerateDepartments(t *testing.T) {
	rnd := NewSeededProvider(1)
	depts := GenerateDepartments(6, rnd)

	require.Len(t, depts, 6)
	for i, d := range depts {
		assert.Equal(t, i+1, d.ID)
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Location)
	}

	assert.Empty(t, GenerateDepartments(0, rnd))
}

func TestGenerateEmployeesSpreadsDepartments(t *testing.T) {
	rnd := NewSeededProvider(1)
	depts := GenerateDepartments(6, rnd)
	employees := GenerateEmployees(50, depts, rnd)

	require.Len(t, employees, 50)

	perDept := make(map[int]int)
	emails := make(map[string]bool)
	for i, e := range employees {
		assert.Equal(t, i+1, e.ID)
		assert.Equal(t, (i+1)%6+1, e.DeptID)
		assert.GreaterOrEqual(t, e.Salary, Cents(3200_00))
		assert.LessOrEqual(t, e.Salary, Cents(15800_00))
		assert.False(t, emails[e.Email], "duplicate email %s", e.Email)
		emails[e.Email] = true
		perDept[e.DeptID]++
	}
	// 50 employees over 6 departments leaves no department empty.
	assert.Len(t, perDept, 6)
}

func TestGenerateEmployeesWithoutDepartments(t *testing.T) {
	rnd := NewSeededProvider(1)
	assert.Nil(t, GenerateEmployees(50, nil, rnd))
}

func TestGenerateProjects(t *testing.T) {
	rnd := NewSeededProvider(1)
	depts := GenerateDepartments(6, rnd)
	projects := GenerateProjects(12, depts, rnd)

	require.Len(t, projects, 12)
	for i, p := range projects {
		assert.Equal(t, i+1, p.ID)
		assert.Equal(t, (i+1)%6+1, p.DeptID)
		assert.True(t, p.EndDate.After(p.StartDate))
	}

	assert.Nil(t, GenerateProjects(12, nil, rnd))
}

func TestGenerateAssignments(t *testing.T) {
	rnd := NewSeededProvider(1)
	depts := GenerateDepartments(6, rnd)
	employees := GenerateEmployees(50, depts, rnd)
	projects := GenerateProjects(12, depts, rnd)

	assignments := GenerateAssignments(employees, projects, rnd)
	require.Len(t, assignments, 100)

	pairs := make(map[[2]int]bool)
	perEmployee := make(map[int]int)
	for _, a := range assignments {
		key := [2]int{a.EmpID, a.ProjectID}
		assert.False(t, pairs[key], "duplicate assignment %v", key)
		pairs[key] = true
		perEmployee[a.EmpID]++
	}
	for _, e := range employees {
		assert.Equal(t, 2, perEmployee[e.ID])
	}
}

func TestGenerateAssignmentsSingleProject(t *testing.T) {
	rnd := NewSeededProvider(1)
	depts := GenerateDepartments(1, rnd)
	employees := GenerateEmployees(3, depts, rnd)
	projects := GenerateProjects(1, depts, rnd)

	// Both coverage offsets land on the lone project; the duplicate is dropped.
	assignments := GenerateAssignments(employees, projects, rnd)
	require.Len(t, assignments, 3)
	for _, a := range assignments {
		assert.Equal(t, 1, a.ProjectID)
	}

	assert.Nil(t, GenerateAssignments(employees, nil, rnd))
}

func TestGenerateCustomers(t *testing.T) {
	rnd := NewSeededProvider(1)
	customers := GenerateCustomers(40, rnd)

	require.Len(t, customers, 40)
	emails := make(map[string]bool)
	for i, c := range customers {
		assert.Equal(t, i+1, c.ID)
		assert.False(t, emails[c.Email], "duplicate email %s", c.Email)
		emails[c.Email] = true
	}
}

func TestGenerateAddressesOnePerCustomer(t *testing.T) {
	rnd := NewSeededProvider(1)
	customers := GenerateCustomers(10, rnd)
	addresses := GenerateAddresses(customers, rnd)

	require.Len(t, addresses, 10)
	custIDs := make(map[int]bool, len(customers))
	for _, c := range customers {
		custIDs[c.ID] = true
	}
	for _, a := range addresses {
		assert.True(t, custIDs[a.CustID], "address points at unknown customer %d", a.CustID)
		assert.NotEmpty(t, a.Line1)
		assert.NotEmpty(t, a.PostalCode)
	}

	assert.Empty(t, GenerateAddresses(nil, rnd))
}

func TestGenerateProducts(t *testing.T) {
	rnd := NewSeededProvider(1)
	products := GenerateProducts(25, rnd)

	require.Len(t, products, 25)
	skus := make(map[string]bool)
	for i, p := range products {
		assert.Equal(t, i+1, p.ID)
		assert.False(t, skus[p.SKU], "duplicate SKU %s", p.SKU)
		skus[p.SKU] = true
		assert.GreaterOrEqual(t, p.Price, Cents(1_00))
		assert.LessOrEqual(t, p.Price, Cents(999_00))
	}
	assert.False(t, products[4].Active)
	assert.True(t, products[0].Active)
}

func TestGenerateOrders(t *testing.T) {
	rnd := NewSeededProvider(1)
	customers := GenerateCustomers(40, rnd)
	orders := GenerateOrders(120, customers, rnd)

	require.Len(t, orders, 120)
	for i, o := range orders {
		assert.Equal(t, i+1, o.ID)
		assert.Equal(t, (i+1)%40+1, o.CustID)
	}
	assert.Equal(t, "NEW", orders[3].Status)
	assert.Equal(t, "PAID", orders[4].Status)
	assert.Equal(t, "SHIPPED", orders[5].Status)
	assert.Equal(t, "CLOSED", orders[6].Status)

	assert.Nil(t, GenerateOrders(120, nil, rnd))
}

func TestGenerateOrderItems(t *testing.T) {
	rnd := NewSeededProvider(1)
	customers := GenerateCustomers(5, rnd)
	products := GenerateProducts(25, rnd)
	orders := GenerateOrders(20, customers, rnd)

	items := GenerateOrderItems(orders, products, 5, rnd)
	require.NotEmpty(t, items)

	priceByProduct := make(map[int]Cents, len(products))
	for _, p := range products {
		priceByProduct[p.ID] = p.Price
	}

	perOrder := make(map[int]int)
	for _, it := range items {
		perOrder[it.OrderID]++
		assert.Equal(t, perOrder[it.OrderID], it.LineNo, "line numbers must be sequential")
		assert.GreaterOrEqual(t, it.Quantity, 1)
		assert.LessOrEqual(t, it.Quantity, 4)
		// The item snapshots the product's price at generation time.
		assert.Equal(t, priceByProduct[it.ProdID], it.UnitPrice)
	}
	for _, o := range orders {
		// The line count is a function of the order index alone.
		assert.Equal(t, CoverageIndex(o.ID, 0, 5), perOrder[o.ID])
	}

	assert.Nil(t, GenerateOrderItems(orders, nil, 5, rnd))
}

func TestGenerateOrderItemsKeysStableAcrossProviders(t *testing.T) {
	// Two runs with unrelated randomness must produce the same
	// (order_id, line_no, prod_id) keys, or a rerun would append lines to
	// orders whose payments are already committed.
	setup := NewSeededProvider(1)
	customers := GenerateCustomers(40, setup)
	products := GenerateProducts(25, setup)
	orders := GenerateOrders(120, customers, setup)

	first := GenerateOrderItems(orders, products, 5, NewSeededProvider(7))
	second := GenerateOrderItems(orders, products, 5, NewSeededProvider(991))

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].OrderID, second[i].OrderID)
		assert.Equal(t, first[i].LineNo, second[i].LineNo)
		assert.Equal(t, first[i].ProdID, second[i].ProdID)
		assert.Equal(t, first[i].UnitPrice, second[i].UnitPrice)
	}
}

func TestGenerateOrderItemsFixedCount(t *testing.T) {
	rnd := NewSeededProvider(1)
	customers := GenerateCustomers(2, rnd)
	products := GenerateProducts(3, rnd)
	orders := GenerateOrders(4, customers, rnd)

	// With a cap of one, every order gets exactly one line.
	items := GenerateOrderItems(orders, products, 1, rnd)
	require.Len(t, items, 4)
	for _, it := range items {
		assert.Equal(t, 1, it.LineNo)
	}
}

func TestGeneratePayments(t *testing.T) {
	rnd := NewSeededProvider(1)
	customers := GenerateCustomers(3, rnd)
	orders := GenerateOrders(10, customers, rnd)

	payments := GeneratePayments(orders, rnd)
	require.Len(t, payments, 10)
	for i, p := range payments {
		assert.Equal(t, orders[i].ID, p.OrderID)
		assert.Zero(t, p.Amount, "amount is resolved at insert time")
		assert.NotEmpty(t, p.Method)
	}
}

func TestGenerateLogTables(t *testing.T) {
	rnd := NewSeededProvider(1)

	events := GenerateEventLog(20, rnd)
	require.Len(t, events, 20)
	for i, e := range events {
		assert.Equal(t, i+1, e.ID)
		assert.NotEmpty(t, e.Actor)
		assert.Contains(t, e.Payload, `"seq":`)
	}

	audits := GenerateAuditTrail(20, rnd)
	require.Len(t, audits, 20)
	for i, a := range audits {
		assert.Equal(t, i+1, a.ID)
		assert.NotEmpty(t, a.TableName)
		assert.Contains(t, []string{"INSERT", "UPDATE", "DELETE"}, a.Action)
	}
}
