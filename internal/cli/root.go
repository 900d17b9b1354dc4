// Package cli provides the command-line interface for daybook.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sandeepkv93/daybook/internal/config"
	"github.com/sandeepkv93/daybook/internal/model"
	"github.com/sandeepkv93/daybook/internal/storage"
)

var (
	cfgFile string
	verbose bool
	logger  *slog.Logger
	cfg     *config.Config
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "daybook",
	Short: "Local planner with scheduled tasks, daily goals, and a journal",
	Long: `Daybook keeps scheduled tasks, daily goals, and journal entries in a
single local SQLite file and fires desktop reminders at the right
wall-clock minute.

All data stays on this machine; there is no account and no network.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logLevel := slog.LevelInfo
		if verbose {
			logLevel = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
		return initConfig()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default daybook.yaml in . or the data dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(serveCmd)
}

func initConfig() error {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("daybook")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(config.DefaultDataDir())
	}
	v.SetEnvPrefix("DAYBOOK")
	v.AutomaticEnv()

	path := ""
	if err := v.ReadInConfig(); err == nil {
		path = v.ConfigFileUsed()
		logger.Debug("using config file", "path", path)
	}

	var err error
	cfg, err = config.Load(path)
	if err != nil {
		return err
	}

	// Environment overrides: DAYBOOK_DATA_DIR, DAYBOOK_TICK_SECONDS.
	if dir := v.GetString("data_dir"); dir != "" {
		cfg.DataDir = dir
	}
	if tick := v.GetInt("tick_seconds"); tick > 0 {
		cfg.TickSeconds = tick
	}
	return cfg.Validate()
}

func openDB() (*storage.DB, error) {
	db, err := storage.Open(cfg.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}
	return db, nil
}

func today() string {
	return time.Now().Format(model.DateLayout)
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

// Flag helpers: a pointer is produced only when the flag was set, so
// partial updates touch exactly the fields the user named.

func stringFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func intFlag(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}

func boolFlag(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

func priorityFlag(cmd *cobra.Command, name string) *model.Priority {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	p := model.Priority(v)
	return &p
}
