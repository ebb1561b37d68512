// Package cli provides the command-line interface for the wheel journal.
package cli

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"wheel-journal/internal/config"
	"wheel-journal/internal/logging"
	"wheel-journal/internal/store"
)

// Version information
const Version = "0.1.0"

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Store  store.DataStore
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	rootCmd := &cobra.Command{
		Use:   "journal",
		Short: "Wheel Journal - options wheel strategy trade tracker",
		Long: `Wheel Journal is a trade journal for the options wheel strategy:
cash-secured puts, covered calls and the stock purchases in between.

Log trades as you open, close and get assigned; the stats and chart
commands derive premium collected, win rate, open risk and cumulative
P&L from the raw trade log.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}

			// The store opens lazily so that version/config work without one.
			if needsStore(cmd) && app.Store == nil {
				dbPath := cfg.Database.Path
				if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
					return err
				}
				dataStore, err := store.NewSQLiteStore(dbPath)
				if err != nil {
					return err
				}
				app.Store = dataStore
				app.Logger.Debug().Str("path", dbPath).Msg("SQLite store initialized")
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Store != nil {
				app.Store.Close()
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
	addTradeCommands(rootCmd, app)
	rootCmd.AddCommand(newStatsCmd(app))
	rootCmd.AddCommand(newChartCmd(app))
	rootCmd.AddCommand(newExportCmd(app))
	rootCmd.AddCommand(newImportCmd(app))

	return rootCmd
}

// needsStore reports whether the invoked command touches the database.
func needsStore(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "version", "config", "help", "completion":
			return false
		}
	}
	return true
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"version": Version})
			} else {
				output.Printf("Wheel Journal v%s\n", Version)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			output.Bold("Database")
			output.Printf("  Path:         %s\n", app.Config.Database.Path)
			output.Println()
			output.Bold("UI")
			output.Printf("  Color:        %v\n", app.Config.UI.ColorEnabled)
			output.Printf("  Date Format:  %s\n", app.Config.UI.DateFormat)
			output.Println()
			output.Bold("Logging")
			output.Printf("  Level:        %s\n", app.Config.Logging.Level)
			output.Printf("  File:         %v\n", app.Config.Logging.File)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	return cmd
}
