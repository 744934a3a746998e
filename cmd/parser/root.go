package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"articles-parser/internal/config"
	"articles-parser/internal/infra/fetcher"
	"articles-parser/internal/infra/loader"
	"articles-parser/internal/observability/logging"
	"articles-parser/internal/observability/metrics"
	"articles-parser/internal/observability/tracing"
	"articles-parser/internal/usecase/ingest"
)

// newRootCmd builds the parser command. With no flags it processes the
// default inputs: a local NewsAPI file, a local Simple file and the NewsAPI URL.
func newRootCmd(stdout io.Writer) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "articles-parser",
		Short: "Validate news articles from NewsAPI, Simple and RSS sources",
		Long: `Reads each configured input from a file or URL, decodes it according to its
format, and prints every article that has a title, description, publish date and URL.
Invalid articles and load failures are reported to the log file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, configPath, stdout)
		},
	}
	cmd.SetContext(context.Background())
	cmd.Flags().StringVarP(&configPath, "config", "c", os.Getenv("PARSER_CONFIG"), "path to a YAML configuration file")

	return cmd
}

// run wires configuration, logging, tracing and the ingest service, then
// processes every input.
func run(ctx context.Context, configPath string, stdout io.Writer) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	sink, err := logging.OpenSink(cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() {
		_ = sink.Close()
	}()
	logger := logging.WithRunID(logging.NewSinkLogger(cfg.Log.File, sink))
	slog.SetDefault(logger)

	shutdown, err := tracing.Setup(cfg.Tracing.Export, sink)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Error("failed to shut down tracer provider", slog.Any("error", err))
		}
	}()

	fetchConfig, err := cfg.FetchConfig()
	if err != nil {
		return err
	}
	if cfg.NeedsAPIKey() {
		logger.Warn("NEWSAPI_API_KEY is not set, NewsAPI URL inputs will be requested without a key")
	}

	inputs, err := cfg.IngestInputs()
	if err != nil {
		return err
	}

	l := loader.New(fetcher.NewHTTPFetcher(fetchConfig), logger)
	svc := ingest.NewService(l, stdout, logger)

	logger.Info("parser started", slog.Int("inputs", len(inputs)))
	if _, err := svc.Run(ctx, inputs); err != nil {
		return err
	}

	if err := metrics.WriteTextfile(cfg.Metrics.Textfile); err != nil {
		logger.Error("failed to write metrics", slog.Any("error", err))
	}
	return nil
}
