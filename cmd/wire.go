package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	resultadapter "github.com/bnema/employee-pairs-cli/internal/adapters/render/result"
	sourceadapter "github.com/bnema/employee-pairs-cli/internal/adapters/source"
	"github.com/bnema/employee-pairs-cli/internal/adapters/source/dates"
	"github.com/bnema/employee-pairs-cli/internal/application"
	"github.com/bnema/employee-pairs-cli/internal/config"
	"github.com/bnema/employee-pairs-cli/internal/domain"
	"github.com/bnema/employee-pairs-cli/internal/ports"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	viper         *viper.Viper
	configPath    string
	verbose       bool
	quiet         bool
	clock         ports.Clock
	renderReport  func(application.Report, resultadapter.RenderOptions) (string, error)
	renderRanking func([]domain.ResultPair) (string, error)
}

// session is one command invocation wired against the resolved config.
type session struct {
	cfg     config.Config
	logger  *slog.Logger
	service *application.Service
}

func newApp() *app {
	return &app{
		viper:         viper.New(),
		clock:         ports.SystemClock{},
		renderReport:  resultadapter.Render,
		renderRanking: resultadapter.RenderRanking,
	}
}

func (a *app) loadConfig() (config.Config, error) {
	cfg, err := config.Load(a.viper, a.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

func (a *app) open(cmd *cobra.Command) (*session, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	level := parseLevel(cfg.LogLevel)
	if a.verbose {
		level = slog.LevelDebug
	}
	logger := newLogger(cmd.ErrOrStderr(), level).With(slog.String("run_id", uuid.NewString()))

	format, err := sourceadapter.ResolveFormat(cfg.Input.Path, cfg.Input.Format)
	if err != nil {
		return nil, err
	}

	source, err := sourceadapter.Open(cfg.Input.Path, format, dates.NewParser(cfg.Input.DateFormats, a.clock), logger)
	if err != nil {
		return nil, fmt.Errorf("wire record source: %w", err)
	}

	logger.Debug("session wired",
		slog.String("input", cfg.Input.Path),
		slog.String("format", string(format)),
		slog.String("config", cfg.File),
	)

	return &session{
		cfg:     cfg,
		logger:  logger,
		service: application.NewService(source, logger),
	}, nil
}

func (s *session) analyzeOptions(loaded loadedFunc, limit int) application.AnalyzeOptions {
	return application.AnalyzeOptions{
		Parallel: s.cfg.Aggregate.Parallel,
		Workers:  s.cfg.Aggregate.Workers,
		Limit:    limit,
		OnLoaded: loaded,
	}
}

// showProgress reports whether progress may be drawn on stderr without
// interleaving with JSON output or debug logs.
func (a *app) showProgress(asJSON bool) bool {
	return !asJSON && !a.quiet && !a.verbose
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
