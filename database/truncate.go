package database

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/gorm"

	"github.com/ehihameneromosele/fullblog2c/metal/env"
)

// Truncate empties every schema table, children first. It backs the seeder's
// reset step and refuses to run against production outright.
type Truncate struct {
	database *Connection
	env      *env.Environment
}

func NewTruncate(db *Connection, env *env.Environment) *Truncate {
	return &Truncate{
		database: db,
		env:      env,
	}
}

func (t Truncate) Execute() error {
	if t.env.App.IsProduction() {
		panic("Cannot truncate production environment")
	}

	db := t.database.Sql()
	tables := GetSchemaTables()

	var errs []error

	for i := len(tables) - 1; i >= 0; i-- {
		if err := t.truncateTable(db, tables[i]); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("truncate completed with %d error(s): %w", len(errs), errors.Join(errs...))
	}

	return nil
}

func (t Truncate) truncateTable(db *gorm.DB, table string) error {
	if !isValidTable(table) {
		return fmt.Errorf("table '%s' does not exist", table)
	}

	if !db.Migrator().HasTable(table) {
		slog.Info("truncate skipped, table missing", "table", table)

		return nil
	}

	exec := db.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE;", table))

	if exec.Error == nil {
		slog.Info("truncated table", "table", table)

		return nil
	}

	if isUndefinedRelationError(exec.Error) {
		slog.Info("truncate skipped", "table", table, "error", exec.Error)

		return nil
	}

	return fmt.Errorf("truncate table %s: %w", table, exec.Error)
}

func isUndefinedRelationError(err error) bool {
	return sqlState(err) == "42P01"
}

func sqlState(err error) string {
	if err == nil {
		return ""
	}

	var stateErr interface{ SQLState() string }

	if errors.As(err, &stateErr) {
		return stateErr.SQLState()
	}

	// Some drivers only surface the code inside the message text.
	message := err.Error()
	upper := strings.ToUpper(message)
	marker := "(SQLSTATE "

	if idx := strings.LastIndex(upper, marker); idx != -1 {
		start := idx + len(marker)

		if end := strings.Index(upper[start:], ")"); end != -1 {
			return message[start : start+end]
		}
	}

	return ""
}
