package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/quiz-bank/internal/config"
	"github.com/gokatarajesh/quiz-bank/internal/logging"
	"github.com/gokatarajesh/quiz-bank/internal/metrics"
	"github.com/gokatarajesh/quiz-bank/internal/question"
	"github.com/gokatarajesh/quiz-bank/internal/server"
)

// Application owns the loaded question bank and the HTTP server.
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	service *question.Service
	http    *http.Server
}

// Options lets callers swap process-wide collaborators, mainly in tests.
type Options struct {
	Logger     *zerolog.Logger
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// New loads the question bank and builds the HTTP server. The bank is fully
// loaded before any handler is registered; a load failure aborts startup.
func New(ctx context.Context, cfg *config.App, opts Options) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env, cfg.LogLevel)
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	logger.Info().Msg("starting application bootstrap")

	bank, err := question.LoadBank(cfg.Bank.Path)
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}

	recorder := metrics.New(opts.Registerer)
	recorder.SetBankSize(bank.Len())

	svc := question.NewService(bank, question.ServiceOptions{
		SampleSize: cfg.Bank.SampleSize,
		Recorder:   recorder,
	})
	svc.LogSummary(logger.With().Str("path", cfg.Bank.Path).Logger())

	quizHandler := question.NewHTTPHandler(svc, logger)
	apiServer := server.NewHTTPServer(cfg, logger, quizHandler, svc, opts.Gatherer)

	return &Application{
		cfg:     cfg,
		logger:  logger,
		service: svc,
		http:    apiServer,
	}, nil
}

// Handler exposes the routed handler, used by tests.
func (a *Application) Handler() http.Handler {
	return a.http.Handler
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}
