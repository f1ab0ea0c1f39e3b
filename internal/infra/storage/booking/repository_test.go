package booking

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pq.Error{
		Code:       "23505",
		Constraint: "bookings_date_slot_unique",
	}

	assert.True(t, isUniqueViolation(uniqueErr))

	// Обернутая ошибка тоже распознается
	assert.True(t, isUniqueViolation(fmt.Errorf("insert failed: %w", uniqueErr)))

	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"})) // foreign_key_violation
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
	assert.False(t, isUniqueViolation(nil))
}
