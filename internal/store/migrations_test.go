package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schemaVersion(t *testing.T, db *DB) int {
	t.Helper()
	var v int
	require.NoError(t, db.Conn().QueryRow("SELECT version FROM schema_version").Scan(&v))
	return v
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)
	assert.Equal(t, currentSchemaVersion, schemaVersion(t, db))

	require.NoError(t, db.Migrate())
	assert.Equal(t, currentSchemaVersion, schemaVersion(t, db))
}

func TestApplyMigration_ShortStatementError(t *testing.T) {
	db := openTestDB(t)

	var err error
	require.NotPanics(t, func() {
		err = db.applyMigration(currentSchemaVersion+1, []string{"BOGUS"})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"BOGUS"`)
	assert.Equal(t, currentSchemaVersion, schemaVersion(t, db))
}
