package migrations

import (
	"strings"
	"testing"
)

func TestEveryMigrationHasUpAndDown(t *testing.T) {
	entries, err := FS.ReadDir(".")
	if err != nil {
		t.Fatalf("read embedded migrations: %v", err)
	}

	seen := map[string]bool{}
	for _, entry := range entries {
		seen[entry.Name()] = true
	}
	if len(seen) == 0 {
		t.Fatal("no migrations embedded")
	}

	for name := range seen {
		var counterpart string
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			counterpart = strings.TrimSuffix(name, ".up.sql") + ".down.sql"
		case strings.HasSuffix(name, ".down.sql"):
			counterpart = strings.TrimSuffix(name, ".down.sql") + ".up.sql"
		default:
			t.Errorf("%s is not an .up.sql or .down.sql file", name)
			continue
		}
		if !seen[counterpart] {
			t.Errorf("%s has no counterpart %s", name, counterpart)
		}
	}
}

func TestCoreTablesMigrationShape(t *testing.T) {
	data, err := FS.ReadFile("000001_create_core_tables.up.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	sql := string(data)

	for _, fragment := range []string{
		"CREATE TABLE IF NOT EXISTS users",
		"CREATE TABLE IF NOT EXISTS generations",
		"CREATE TABLE IF NOT EXISTS flashcards",
		"CREATE TABLE IF NOT EXISTS generation_error_logs",
		"ON DELETE CASCADE",
		"ON DELETE SET NULL",
	} {
		if !strings.Contains(sql, fragment) {
			t.Errorf("migration missing %q", fragment)
		}
	}
}
