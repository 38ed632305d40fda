package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"sqlforge/internal/dialect"
)

// DBConfig is one entry under the databases: list in sqlforge.yaml.
// Driver takes the names understood by dialect.GetDialect (mysql,
// postgres, sqlite); DSN is passed to database/sql untouched.
type DBConfig struct {
	Name   string `mapstructure:"name"`
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	Active bool   `mapstructure:"active"`
}

// Dialect resolves the entry's driver name to a SQL dialect.
func (c *DBConfig) Dialect() dialect.Dialect {
	return dialect.GetDialect(c.Driver)
}

// GetActiveDBConfig returns the currently active database configuration.
func GetActiveDBConfig() (*DBConfig, error) {
	var configs []DBConfig

	if err := viper.UnmarshalKey("databases", &configs); err != nil {
		return nil, fmt.Errorf("failed to parse databases config: %w", err)
	}

	var activeConfig *DBConfig
	count := 0

	for i := range configs {
		if configs[i].Active {
			activeConfig = &configs[i]
			count++
		}
	}

	if count == 0 {
		return nil, fmt.Errorf("no active database found in config (set active: true)")
	}
	if count > 1 {
		return nil, fmt.Errorf("multiple active databases found (only one can be active)")
	}
	if activeConfig.DSN == "" {
		return nil, fmt.Errorf("active database %q has no dsn", activeConfig.Name)
	}

	return activeConfig, nil
}
