package database

import (
	"testing"

	"movie-review/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func TestDSN_EscapesCredentials(t *testing.T) {
	dsn := DSN(utils.DatabaseConfig{
		Host:     "db",
		Port:     "5432",
		Name:     "movies",
		User:     "app",
		Password: "p@ss/word",
	})

	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/movies?sslmode=disable", dsn)
}
