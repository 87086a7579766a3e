// Package cli implements the string-analyzer CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/string-analyzer/internal/config"
	"github.com/rcliao/string-analyzer/internal/logger"
	"github.com/rcliao/string-analyzer/internal/store"
)

var (
	dbPath     string
	formatFlag string
	configFile string

	cfg *config.Config
	log *zap.SugaredLogger
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "string-analyzer",
	Short: "Analyze and store strings",
	Long: "Compute descriptive properties of strings (length, palindrome, word count, " +
		"character frequency, SHA-256) and keep them in a SQLite-backed store.",
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $STRING_ANALYZER_DATABASE_PATH or ~/.string-analyzer/strings.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json, yaml or text")
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ./string-analyzer.toml or ~/.string-analyzer/config.toml)")
	RootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")
}

// initConfig resolves configuration and the logger before any subcommand runs.
func initConfig(cmd *cobra.Command, args []string) error {
	switch formatFlag {
	case "json", "yaml", "text":
	default:
		return fmt.Errorf("unknown format %q (use json, yaml or text)", formatFlag)
	}

	v, err := config.New(configFile)
	if err != nil {
		return err
	}
	persistent := cmd.Root().PersistentFlags()
	v.BindPFlag("database.path", persistent.Lookup("db"))
	v.BindPFlag("log.json", persistent.Lookup("log-json"))
	if f := cmd.Flags().Lookup("addr"); f != nil {
		v.BindPFlag("server.addr", f)
	}

	c, err := config.Load(v)
	if err != nil {
		return err
	}
	l, err := logger.New(logger.Options{JSON: c.Log.JSON, Level: c.Log.Level})
	if err != nil {
		return err
	}

	cfg, log = c, l
	return nil
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(cfg.Database.Path, log)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
