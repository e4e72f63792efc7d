package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      DatabaseConfig
		expected string
	}{
		{
			name:     "sqlite enables foreign keys",
			cfg:      DatabaseConfig{Driver: "sqlite", Path: "data.sqlite"},
			expected: "data.sqlite?_foreign_keys=on",
		},
		{
			name:     "sqlite appends to existing query",
			cfg:      DatabaseConfig{Driver: "sqlite", Path: "file:data.sqlite?cache=shared"},
			expected: "file:data.sqlite?cache=shared&_foreign_keys=on",
		},
		{
			name:     "sqlite keeps explicit foreign key setting",
			cfg:      DatabaseConfig{Driver: "sqlite", Path: ":memory:?_fk=1"},
			expected: ":memory:?_fk=1",
		},
		{
			name:     "empty driver defaults to sqlite file",
			cfg:      DatabaseConfig{},
			expected: DefaultSQLitePath + "?_foreign_keys=on",
		},
		{
			name: "postgres from discrete fields",
			cfg: DatabaseConfig{
				Driver: "postgres", Host: "db", Port: "5432", User: "pizza",
				Password: "secret", Name: "pizzas", SSLMode: "disable",
			},
			expected: "host=db user=pizza password=secret dbname=pizzas port=5432 sslmode=disable",
		},
		{
			name:     "postgres url wins",
			cfg:      DatabaseConfig{Driver: "PostgreSQL", Host: "ignored", URL: "postgres://u:p@db:5432/pizzas"},
			expected: "postgres://u:p@db:5432/pizzas",
		},
		{
			name:     "unknown driver",
			cfg:      DatabaseConfig{Driver: "mysql"},
			expected: "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cfg.DSN())
		})
	}
}

func TestStringRedactsPassword(t *testing.T) {
	cfg := DatabaseConfig{Driver: "postgres", User: "pizza", Password: "hunter2"}

	s := cfg.String()

	assert.NotContains(t, s, "hunter2")
	assert.Contains(t, s, "[REDACTED]")
}
