package config

import "testing"

func TestLoadDatabaseLogQueries(t *testing.T) {
	t.Run("off by default", func(t *testing.T) {
		if Load().Database.LogQueries {
			t.Error("expected query logging off by default")
		}
	})

	t.Run("enabled via DB_LOG_QUERIES", func(t *testing.T) {
		t.Setenv("DB_LOG_QUERIES", "true")
		if !Load().Database.LogQueries {
			t.Error("expected query logging on")
		}
	})

	t.Run("malformed value keeps the default", func(t *testing.T) {
		t.Setenv("DB_LOG_QUERIES", "yes please")
		if Load().Database.LogQueries {
			t.Error("expected query logging off for a malformed value")
		}
	})
}
