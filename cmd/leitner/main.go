package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"leitner/internal/config"
	"leitner/internal/handler"
	"leitner/internal/i18n"
	"leitner/internal/repository"
	"leitner/internal/repository/postgres"
	"leitner/internal/repository/statefile"
	"leitner/internal/repository/wordfile"
	"leitner/internal/service"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Interrupts end the session through ctx so it is saved before exit
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var locale, backend string

	cmd := &cobra.Command{
		Use:   "leitner <word-file>",
		Short: "Practise vocabulary with ten Leitner boxes",
		Long: `Quizzes the pairs of a "term,translation" word file. Correct answers move a
pair one box up, wrong answers send it back to box 1. Type :print to see
all boxes; an empty line saves the session and exits.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if locale != "" {
				cfg.Locale = locale
			}
			if backend != "" {
				cfg.Backend = backend
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			return run(cmd.Context(), cfg, args[0], cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&locale, "locale", "", "message locale (default from LEITNER_LOCALE or LANG)")
	cmd.Flags().StringVar(&backend, "backend", "", "state backend: file or postgres (default from LEITNER_BACKEND)")

	return cmd
}

func run(ctx context.Context, cfg *config.Config, wordFile string, in io.Reader, out io.Writer) error {
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger = logger.With(zap.String("session_id", uuid.NewString()))
	logger.Info("Starting Leitner session",
		zap.String("word_file", wordFile),
		zap.String("backend", cfg.Backend),
		zap.String("locale", cfg.Locale),
	)

	state, closeState, err := newStateRepository(ctx, cfg, wordFile, logger)
	if err != nil {
		logger.Error("Failed to open state storage", zap.Error(err))
		return err
	}
	defer closeState()

	trainer := service.NewTrainerService(
		wordfile.NewReader(wordFile, logger),
		state,
		service.NewSampler(nil),
		service.NewGrader(logger),
		logger,
	)
	h := handler.NewHandler(
		trainer,
		service.NewStatsService(logger),
		i18n.New(cfg.Locale),
		in,
		out,
		logger,
	)

	if err := h.Start(ctx); err != nil {
		logger.Error("Failed to start session", zap.Error(err))
		return err
	}
	if err := h.Run(ctx); err != nil {
		logger.Error("Session ended with error", zap.Error(err))
		return err
	}

	logger.Info("Session finished")
	return nil
}

// newLogger builds a console logger for terminals and a JSON logger otherwise
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var cfg zap.Config
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}

// newStateRepository opens the configured backend; the returned func releases it
func newStateRepository(ctx context.Context, cfg *config.Config, wordFile string, logger *zap.Logger) (repository.StateRepository, func(), error) {
	if cfg.Backend != config.BackendPostgres {
		return statefile.NewStore(cfg.StatePath(wordFile)), func() {}, nil
	}

	db, err := connectDatabase(ctx, cfg.DSN(), cfg.Database.ConnectRetries, logger)
	if err != nil {
		return nil, nil, err
	}

	if err := postgres.Migrate(db, logger); err != nil {
		db.Close()
		return nil, nil, err
	}

	return postgres.NewStateRepo(db, filepath.Clean(wordFile)), func() { db.Close() }, nil
}
