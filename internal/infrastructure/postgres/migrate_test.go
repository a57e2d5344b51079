package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrateURL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@h:5432/d?sslmode=disable", migrateURL("postgres://u:p@h:5432/d?sslmode=disable"))
	assert.Equal(t, "pgx5://u@h/d", migrateURL("postgresql://u@h/d"))
	assert.Equal(t, "pgx5://already", migrateURL("pgx5://already"))
}

func TestMigracionesEmbebidas(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestValidID(t *testing.T) {
	assert.True(t, validID("6f1c1a4e-6c43-4f0a-9a57-0d7d0f7b8f21"))
	assert.False(t, validID("supplier-1"))
	assert.False(t, validID(""))
}
