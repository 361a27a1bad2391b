package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kind classifies a statement failure into the categories the seeding phases
// care about. Anything the classifier does not recognize is Other and must be
// treated as fatal by the caller.
type Kind int

const (
	KindNone Kind = iota
	KindObjectExists
	KindObjectAbsent
	KindUniqueViolation
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindObjectExists:
		return "object-exists"
	case KindObjectAbsent:
		return "object-absent"
	case KindUniqueViolation:
		return "unique-violation"
	default:
		return "other"
	}
}

// SQLSTATE codes reported by PostgreSQL for the allow-listed conditions.
const (
	codeDuplicateTable    = "42P07" // duplicate_table, also duplicate sequence
	codeDuplicateObject   = "42710" // duplicate_object
	codeUndefinedTable    = "42P01" // undefined_table, also undefined sequence
	codeUndefinedObject   = "42704" // undefined_object
	codeUniqueViolation   = "23505"
	codeInvalidSchemaName = "3F000"
)

// Classify maps a driver error to a Kind. A nil error is KindNone.
func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return KindOther
	}
	switch pgErr.Code {
	case codeDuplicateTable, codeDuplicateObject:
		return KindObjectExists
	case codeUndefinedTable, codeUndefinedObject, codeInvalidSchemaName:
		return KindObjectAbsent
	case codeUniqueViolation:
		return KindUniqueViolation
	default:
		return KindOther
	}
}
