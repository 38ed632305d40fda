package dialect

type PostgresDialect struct{}

func (d *PostgresDialect) Name() string {
	return "postgresql"
}

func (d *PostgresDialect) QuoteIdentifier(name string) string {
	return `"` + name + `"`
}

func (d *PostgresDialect) DriverName() string {
	return "postgres"
}
