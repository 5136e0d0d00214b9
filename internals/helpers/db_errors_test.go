package helper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateKeyErr(t *testing.T) {
	// pesan asli Postgres saat unique index beneficiaries.phone dilanggar
	pgDup := errors.New(`ERROR: duplicate key value violates unique constraint "beneficiaries_phone_key" (SQLSTATE 23505)`)
	assert.True(t, IsDuplicateKeyErr(pgDup))

	assert.True(t, IsDuplicateKeyErr(errors.New("UNIQUE constraint failed: preachers.email")))

	assert.False(t, IsDuplicateKeyErr(nil))
	assert.False(t, IsDuplicateKeyErr(errors.New("connection refused")))
	assert.False(t, IsDuplicateKeyErr(errors.New("record not found")))
}
