package repositories

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern turns a raw query into a lower-cased LIKE pattern that
// matches it as a plain substring.
func likePattern(query string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
}

// lowerFunc names the SQL function that folds case the same way
// strings.ToLower does. SQLite's built-in LOWER only folds ASCII.
func lowerFunc(db *gorm.DB) string {
	if db.Dialector.Name() == DriverSQLite {
		return unicodeLowerFunc
	}
	return "LOWER"
}

// containsAny builds a WHERE clause matching query as a case-insensitive
// substring of any of columns.
func containsAny(db *gorm.DB, query string, columns ...string) (string, []any) {
	lower := lowerFunc(db)
	pattern := likePattern(query)

	conds := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, col := range columns {
		conds = append(conds, fmt.Sprintf(`%s(%s) LIKE ? ESCAPE '\'`, lower, col))
		args = append(args, pattern)
	}
	return strings.Join(conds, " OR "), args
}
