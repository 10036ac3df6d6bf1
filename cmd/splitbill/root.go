package main

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jask/splitbill/internal/config"
	"github.com/jask/splitbill/internal/database"
	"github.com/jask/splitbill/internal/database/repository"
	"github.com/jask/splitbill/internal/ledger"
	"github.com/jask/splitbill/internal/logging"
	"github.com/jask/splitbill/internal/tui"
)

type rootFlags struct {
	configPath string
	logFile    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	cmd := &cobra.Command{
		Use:           "splitbill",
		Short:         "Split bills with friends and track who owes whom",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&flags.configPath, "config", "", "path to config.toml (default $SPLITBILL_CONFIG or ~/.config/splitbill/config.toml)")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "write logs to this file")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error")
	return cmd
}

func loadConfig(flags rootFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	if flags.logFile != "" {
		cfg.Log.File = flags.logFile
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	return cfg, nil
}

func run(ctx context.Context, cfg config.Config) error {
	logFile, err := tea.LogToFile(cfg.Log.File, "splitbill")
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logger := logging.Setup(logFile, cfg.Log.Level)

	session, closeStore, err := openSession(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	app := tui.New(ctx, session, tui.Options{
		Currency:      cfg.UI.CurrencySymbol,
		AvatarBaseURL: cfg.UI.AvatarBaseURL,
		Logger:        logger,
	})
	logger.Info("starting", "friends", len(session.Friends()))
	if _, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// openSession builds a session over a fresh in-memory store seeded from cfg.
func openSession(ctx context.Context, cfg config.Config, logger *slog.Logger) (*ledger.Session, func(), error) {
	db, err := database.OpenMemory("splitbill-" + uuid.NewString())
	if err != nil {
		return nil, nil, fmt.Errorf("open db: %w", err)
	}
	closeDB := func() { _ = db.Close() }

	if err := database.RunMigrations(db); err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	if err := database.SeedFriends(ctx, db, seedFriends(cfg.Friends)); err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("seed friends: %w", err)
	}

	session, err := ledger.NewSession(ctx, repository.NewFriendRepo(db), logger)
	if err != nil {
		closeDB()
		return nil, nil, err
	}
	return session, closeDB, nil
}

func seedFriends(in []config.FriendConfig) []ledger.Friend {
	out := make([]ledger.Friend, 0, len(in))
	for _, f := range in {
		out = append(out, ledger.Friend{ID: f.ID, Name: f.Name, AvatarURL: f.AvatarURL, Balance: f.Balance})
	}
	return out
}
