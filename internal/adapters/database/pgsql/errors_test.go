package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: uniqueViolationCode}
	assert.True(t, isUniqueViolation(unique))
	assert.True(t, isUniqueViolation(fmt.Errorf("exec failed: %w", unique)))

	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("not a pg error")))
	assert.False(t, isUniqueViolation(nil))
}

func TestUniqueViolationConstraint(t *testing.T) {
	orderErr := fmt.Errorf("exec failed: %w", &pgconn.PgError{
		Code:           uniqueViolationCode,
		ConstraintName: favoriteUserOrderConstraint,
	})
	name, ok := uniqueViolationConstraint(orderErr)
	assert.True(t, ok)
	assert.Equal(t, favoriteUserOrderConstraint, name)

	name, ok = uniqueViolationConstraint(&pgconn.PgError{
		Code:           uniqueViolationCode,
		ConstraintName: favoriteUserRateConstraint,
	})
	assert.True(t, ok)
	assert.Equal(t, favoriteUserRateConstraint, name)

	_, ok = uniqueViolationConstraint(&pgconn.PgError{Code: "23503", ConstraintName: "fk_something"})
	assert.False(t, ok)
	_, ok = uniqueViolationConstraint(errors.New("not a pg error"))
	assert.False(t, ok)
}
