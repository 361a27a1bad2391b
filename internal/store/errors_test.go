package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil error", nil, KindNone},
		{"duplicate table", &pgconn.PgError{Code: "42P07"}, KindObjectExists},
		{"duplicate object", &pgconn.PgError{Code: "42710"}, KindObjectExists},
		{"undefined table", &pgconn.PgError{Code: "42P01"}, KindObjectAbsent},
		{"undefined object", &pgconn.PgError{Code: "42704"}, KindObjectAbsent},
		{"invalid schema name", &pgconn.PgError{Code: "3F000"}, KindObjectAbsent},
		{"unique violation", &pgconn.PgError{Code: "23505"}, KindUniqueViolation},
		{"fk violation is fatal", &pgconn.PgError{Code: "23503"}, KindOther},
		{"not null violation is fatal", &pgconn.PgError{Code: "23502"}, KindOther},
		{"syntax error is fatal", &pgconn.PgError{Code: "42601"}, KindOther},
		{"non-driver error", errors.New("connection refused"), KindOther},
		{
			"wrapped driver error",
			fmt.Errorf("exec failed: %w", &pgconn.PgError{Code: "23505"}),
			KindUniqueViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "object-exists", KindObjectExists.String())
	assert.Equal(t, "object-absent", KindObjectAbsent.String())
	assert.Equal(t, "unique-violation", KindUniqueViolation.String())
	assert.Equal(t, "none", KindNone.String())
	assert.Equal(t, "other", KindOther.String())
}
