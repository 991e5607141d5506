package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestUniqueViolationOn(t *testing.T) {
	reversal := &pgconn.PgError{Code: uniqueViolation, ConstraintName: reversalOfConstraint}
	wrapped := fmt.Errorf("insert: %w", reversal)

	assert.True(t, uniqueViolationOn(wrapped, reversalOfConstraint))
	assert.True(t, uniqueViolationOn(wrapped, ""))
	assert.False(t, uniqueViolationOn(wrapped, "accounts_code_key"))
	assert.False(t, uniqueViolationOn(&pgconn.PgError{Code: "23503"}, ""))
	assert.False(t, uniqueViolationOn(errors.New("boom"), ""))
}
