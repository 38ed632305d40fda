package dialect

type SqliteDialect struct{}

func (d *SqliteDialect) Name() string {
	return "sqlite"
}

func (d *SqliteDialect) QuoteIdentifier(name string) string {
	return `"` + name + `"`
}

func (d *SqliteDialect) DriverName() string {
	return "sqlite"
}
