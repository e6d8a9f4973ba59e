package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MuhamadTAH/psychology-sub002/internal/collection"
	"github.com/MuhamadTAH/psychology-sub002/internal/config"
	"github.com/MuhamadTAH/psychology-sub002/internal/ingest"
	"github.com/MuhamadTAH/psychology-sub002/internal/lessons"
	"github.com/MuhamadTAH/psychology-sub002/internal/logger"
	"github.com/MuhamadTAH/psychology-sub002/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "lessonctl",
	Short: "Normalize and ingest lesson submissions",
	Long: "lessonctl converts lesson submissions in any of the supported formats into canonical\n" +
		"lessons and merges them into the persisted lesson collection.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("driver", "", "Store driver: file, sqlite or postgres (overrides LESSONS_STORE_DRIVER)")
	rootCmd.PersistentFlags().String("store", "", "Store directory or DSN (overrides LESSONS_STORE_DSN)")
	rootCmd.PersistentFlags().String("block", "", "Name of the lesson collection block (overrides LESSONS_BLOCK)")
	rootCmd.PersistentFlags().Bool("strict", false, "Fail on unresolvable answer references instead of defaulting to A")

	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig returns the environment configuration with any persistent
// flags the user set applied on top.
func resolveConfig(cmd *cobra.Command) config.Config {
	cfg := config.FromEnv()
	flags := cmd.Flags()
	if v, _ := flags.GetString("driver"); v != "" {
		cfg.StoreDriver = config.Driver(v)
	}
	if v, _ := flags.GetString("store"); v != "" {
		cfg.StoreDSN = v
	}
	if v, _ := flags.GetString("block"); v != "" {
		cfg.Block = v
	}
	if flags.Changed("strict") {
		cfg.StrictAnswers, _ = flags.GetBool("strict")
	}
	return cfg
}

// app is everything a command needs to talk to the collection.
type app struct {
	cfg   config.Config
	log   *logger.Logger
	store store.BlockStore
	svc   *ingest.Service
}

func openApp(ctx context.Context, cmd *cobra.Command) (*app, error) {
	cfg := resolveConfig(cmd)

	log, err := logger.New(cfg.LogMode, logLevel(cmd, cfg))
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	s, err := store.Open(ctx, cfg.StoreDriver, cfg.StoreDSN)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	repo := collection.NewRepo(s, cfg.Block)
	svc := ingest.NewService(repo, lessons.Config{StrictAnswers: cfg.StrictAnswers}, log)
	return &app{cfg: cfg, log: log, store: s, svc: svc}, nil
}

// logLevel returns the configured level, defaulting one-shot commands to warn.
func logLevel(cmd *cobra.Command, cfg config.Config) string {
	if cfg.LogLevel != "" || cmd == serveCmd {
		return cfg.LogLevel
	}
	return "warn"
}

func (a *app) Close() {
	a.store.Close()
	a.log.Sync()
}
