package dialect

type MysqlDialect struct{}

func (d *MysqlDialect) Name() string {
	return "mysql"
}

func (d *MysqlDialect) QuoteIdentifier(name string) string {
	return "`" + name + "`"
}

func (d *MysqlDialect) DriverName() string {
	return "mysql"
}
