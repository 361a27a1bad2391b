package seed

// CoverageIndex maps the i-th child (1-indexed) onto a parent index in [1, p]
// using the deterministic spread ((i + offset) mod p) + 1. When the child
// count reaches p every parent receives at least one child; no randomness is
// involved in referential placement. Returns 0 when there are no parents.
func CoverageIndex(i, offset, p int) int {
	if p <= 0 {
		return 0
	}
	return (i+offset)%p + 1
}

// pick maps a 1-indexed counter onto a fixed enumeration.
func pick(pool []string, i int) string {
	return pool[i%len(pool)]
}

// Word pools for non-key attributes. Categorical columns (status, role,
// method) are selected by modulo so the value for a given row index is stable
// across runs.

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Wilson", "Anderson", "Taylor", "Moore",
	"Jackson", "Martin",
}

var emailDomains = []string{
	"example.com", "test.com", "corp.net", "mail.com",
}

var deptNames = []string{
	"Engineering", "Sales", "Marketing", "Finance", "Operations", "Support",
	"Legal", "Research", "Procurement", "Logistics",
}

var cities = []string{
	"Austin", "Berlin", "Chicago", "Denver", "Lisbon", "Madrid", "Oslo",
	"Prague", "Seattle", "Toronto",
}

var regions = []string{
	"TX", "BE", "IL", "CO", "LX", "MD", "OS", "PR", "WA", "ON",
}

var countries = []string{
	"US", "DE", "US", "US", "PT", "ES", "NO", "CZ", "US", "CA",
}

var projectNouns = []string{
	"Migration", "Rollout", "Overhaul", "Pilot", "Integration", "Upgrade",
	"Audit", "Expansion",
}

var assignmentRoles = []string{
	"Developer", "Lead", "Analyst", "Tester", "Architect",
}

var productNouns = []string{
	"Widget", "Gadget", "Bracket", "Fixture", "Coupler", "Adapter", "Valve",
	"Sensor", "Module", "Panel",
}

var paymentMethods = []string{
	"CARD", "TRANSFER", "CASH", "CHECK",
}

var eventActions = []string{
	"create", "update", "delete", "login", "logout", "export",
}

var auditActions = []string{
	"INSERT", "UPDATE", "DELETE",
}

// orderStatus is the explicit modulo-to-enumeration mapping for order status.
func orderStatus(i int) string {
	switch i % 4 {
	case 0:
		return "NEW"
	case 1:
		return "PAID"
	case 2:
		return "SHIPPED"
	default:
		return "CLOSED"
	}
}
