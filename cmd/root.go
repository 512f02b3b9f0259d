package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/wegbereiter/internal/config"
	"github.com/abhisek/wegbereiter/internal/content"
	"github.com/abhisek/wegbereiter/internal/logger"
	"github.com/abhisek/wegbereiter/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "wegbereiter",
	Short: "German spelling quiz for the terminal",
	Long:  "Wegbereiter – eine Lern-Expedition durch die deutsche Rechtschreibung: doppelte Konsonanten, ck und tz.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite history file (overrides WEGBEREITER_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: ./config.yaml or $XDG_CONFIG_HOME/wegbereiter/config.yaml)")
	rootCmd.PersistentFlags().String("content", "", "Path to a lesson catalogue JSON file (default: built-in lessons)")
	rootCmd.PersistentFlags().Bool("no-history", false, "Do not record answers and results")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// env is what every subcommand needs after flags and config are resolved.
type env struct {
	cfg     *config.Config
	log     *zap.Logger
	catalog *content.Catalog
}

// setup loads the config, applies flag overrides, and builds the logger and
// the lesson catalogue. Flags win over config file and environment.
func setup(cmd *cobra.Command) (*env, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if p, _ := cmd.Flags().GetString("content"); p != "" {
		cfg.ContentPath = p
	}
	if off, _ := cmd.Flags().GetBool("no-history"); off {
		cfg.History = false
	}

	if cfg.DBPath, err = resolveDBPath(cfg.DBPath); err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(filepath.Dir(cfg.DBPath), "wegbereiter.log")
	}

	log, err := logger.New(cfg)
	if err != nil {
		return nil, err
	}

	catalog := content.Default()
	if cfg.ContentPath != "" {
		if catalog, err = content.LoadFile(cfg.ContentPath); err != nil {
			return nil, err
		}
	}

	log.Debug("configured",
		zap.String("env", cfg.Env),
		zap.String("db", cfg.DBPath),
		zap.String("content", cfg.ContentPath),
		zap.Bool("history", cfg.History),
		zap.Int("lessons", catalog.Len()))

	return &env{cfg: cfg, log: log, catalog: catalog}, nil
}

// resolveDBPath returns p when set, creating its directory, and the default
// XDG path otherwise.
func resolveDBPath(p string) (string, error) {
	if p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the history database of e.
func (e *env) openStore() (*store.Store, error) {
	st, err := store.Open(e.cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
