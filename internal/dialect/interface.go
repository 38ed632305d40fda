package dialect

// Dialect abstracts database-specific SQL rendering. Value escaping is
// dialect-independent; only identifier quoting and the database/sql driver
// used for direct loads vary.
type Dialect interface {
	// Name returns the canonical lowercase dialect name.
	Name() string

	// QuoteIdentifier wraps an already-sanitized identifier in the
	// dialect's quoting characters.
	QuoteIdentifier(name string) string

	// DriverName returns the registered database/sql driver for this
	// dialect.
	DriverName() string
}
