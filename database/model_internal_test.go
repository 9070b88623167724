package database

import (
	"strings"
	"testing"
)

func TestIsValidTableAcceptsSchemaTables(t *testing.T) {
	for _, name := range GetSchemaTables() {
		if !isValidTable(name) {
			t.Errorf("expected schema table %q to be valid", name)
		}
	}
}

func TestIsValidTableRejectsEverythingElse(t *testing.T) {
	rejected := []string{
		"unknown",
		"",
		"   ",
		"user!@#",
		"user-name",
		"Users",
		"USERS",
		"table123",
		strings.Repeat("x", 256),
	}

	for _, name := range rejected {
		if isValidTable(name) {
			t.Errorf("expected %q to be rejected", name)
		}
	}
}
