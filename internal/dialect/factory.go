package dialect

import "strings"

// GetDialect returns the Dialect implementation for a name. Unknown names
// fall back to MySQL, the tool's default dialect.
func GetDialect(name string) Dialect {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "postgres", "postgresql":
		return &PostgresDialect{}
	case "sqlite", "sqlite3":
		return &SqliteDialect{}
	default: // mysql
		return &MysqlDialect{}
	}
}

// Ensure interface implementation
var _ Dialect = (*MysqlDialect)(nil)
var _ Dialect = (*PostgresDialect)(nil)
var _ Dialect = (*SqliteDialect)(nil)
