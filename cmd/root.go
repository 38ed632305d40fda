package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var RootCmd = &cobra.Command{
	Use:   "sqlforge",
	Short: "A CSV to SQL conversion toolkit",
	Long: `
  ____   ___  _     _____ ___  ____   ____ _____
 / ___| / _ \| |   |  ___/ _ \|  _ \ / ___| ____|
 \___ \| | | | |   | |_ | | | | |_) | |  _|  _|
  ___) | |_| | |___|  _|| |_| |  _ <| |_| | |___
 |____/ \__\_\_____|_|   \___/|_| \_\\____|_____|

SQLFORGE 🔨 - CSV Analyzer & SQL Generator

Inspects delimited data, infers column types, and forges
dialect-aware DDL and INSERT scripts. Also splits, loads,
normalizes, imputes and fakes data along the way.
`,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./sqlforge.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			exePath := filepath.Dir(ex)
			viper.AddConfigPath(exePath)
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("sqlforge")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
