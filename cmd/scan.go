package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"swaggerhunter/internal/api"
	"swaggerhunter/internal/config"
	"swaggerhunter/internal/hunter"
	"swaggerhunter/internal/probe"
	"swaggerhunter/pkg/logger"
	"swaggerhunter/pkg/serrors"
	"swaggerhunter/pkg/storage"
	"swaggerhunter/pkg/storage/csvfile"
	"swaggerhunter/pkg/ui"
)

// loadDomains collects scan targets from the optional list file and the
// positional arguments. Providing no domains at all is an input error; blank
// lines are dropped later by the orchestrator.
func loadDomains(listPath string, args []string) ([]string, error) {
	var domains []string

	if listPath != "" {
		b, err := os.ReadFile(listPath)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrNotFound, err, "file not found: %s", listPath)
		}
		domains = strings.Split(string(b), "\n")
	}
	domains = append(domains, args...)

	hasTarget := false
	for _, d := range domains {
		if strings.TrimSpace(d) != "" {
			hasTarget = true

			break
		}
	}
	if !hasTarget {
		return nil, serrors.With(serrors.ErrBadRequest, "no domains provided, use --list <file> or pass domains directly")
	}

	return domains, nil
}

// setupMetricsServer starts the optional metrics/debug server and returns a
// function that shuts it down.
func setupMetricsServer(ctx context.Context, cfg *config.Config) func(ctx context.Context) {
	server, err := api.NewServer(api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create metrics server", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting metrics server...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start metrics server", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping metrics server...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop metrics server", zap.Error(err))
		}
	}
}

func scanCommand(cfg *config.Config) *cobra.Command {
	var (
		listPath string
		output   string
		insecure bool
		deep     bool
	)

	cmd := &cobra.Command{
		Use:           "scan [domains...]",
		Short:         "Probes domains for exposed Swagger/OpenAPI specification endpoints",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			domains, err := loadDomains(listPath, args)
			if err != nil {
				return err
			}

			if output == "" {
				output = cfg.Scanner.OutputFile
			}

			if cfg.Metrics.Enabled {
				stopMetrics := setupMetricsServer(ctx, cfg)
				defer stopMetrics(context.Background())
			}

			csvSink, err := csvfile.New(output)
			if err != nil {
				return err
			}
			sinks := []storage.FindingSink{csvSink}

			if cfg.Database.Enabled {
				pgSink, closeStrg := getPostgres(ctx, cfg)
				defer closeStrg()
				sinks = append(sinks, pgSink)
			}

			client := probe.NewClient(probe.ClientOptions{
				Timeout:  cfg.Scanner.RequestTimeout,
				Insecure: insecure,
			})

			opts := hunter.NewOptions(cfg)
			opts.Deep = deep

			h := hunter.New(client, opts, ui.NewConsole(os.Stdout, output), sinks...)

			_, runErr := h.Run(ctx, domains)
			if err := csvSink.Close(); err != nil && runErr == nil {
				runErr = err
			}

			return runErr
		},
	}

	cmd.Flags().StringVarP(&listPath, "list", "l", "", "File with list of domains (one per line)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output CSV file (defaults to the configured outputFile)")
	cmd.Flags().BoolVar(&insecure, "insecure", false, "Ignore SSL certificate errors")
	cmd.Flags().BoolVar(&deep, "deep", false, "Enable deep scan (extra ports & paths)")

	return cmd
}
