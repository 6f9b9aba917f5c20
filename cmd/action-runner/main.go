// cmd/action-runner/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/rob-foulkrod/verification/internal/action"
	"github.com/rob-foulkrod/verification/internal/action/binding"
	"github.com/rob-foulkrod/verification/internal/common/config"
	apperrors "github.com/rob-foulkrod/verification/internal/common/errors"
	"github.com/rob-foulkrod/verification/internal/common/logger"
	"github.com/rob-foulkrod/verification/internal/common/metrics"
	"github.com/rob-foulkrod/verification/internal/common/observability"
	"github.com/rob-foulkrod/verification/pkg/registry"
)

func main() {
	os.Exit(run(os.Args[1:], os.Environ()))
}

// run keeps main testable: it resolves inputs from either positional
// arguments (isolated-host convention) or INPUT_* environment variables
// (scripted-host convention), dispatches once, and appends the output
// record to the caller-provided sink.
func run(args []string, environ []string) int {
	fs := flag.NewFlagSet("action-runner", flag.ExitOnError)
	outputPath := fs.String("output", "", "Output sink file (default: $GITHUB_OUTPUT, else stdout)")
	configPath := fs.String("config", "", "Config file path (default: ./configs/config.yaml)")
	listOps := fs.Bool("list", false, "List known operations and exit")
	fs.Parse(args)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		return 1
	}

	var in action.Input
	if fs.NArg() > 0 {
		in = binding.FromArgs(fs.Args())
	} else {
		in = binding.FromEnviron(environ)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Color && in.ColorOutput)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	if *listOps {
		return listOperations(cfg, log)
	}

	obs := observability.New("action-runner")
	defer obs.Shutdown()

	if cfg.Metrics.Enabled {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.Metrics.Address, nil); err != nil {
				zapLog.Warn("metrics endpoint stopped", zap.Error(err))
			}
		}()
	}

	runner := action.New(cfg, log, obs)
	errHandler := apperrors.NewHandler(log)

	record, err := runner.Run(context.Background(), in)
	if err != nil {
		return errHandler.Handle(err)
	}

	sink := resolveSink(*outputPath, cfg, environ)
	if err := writeRecord(record, sink); err != nil {
		return errHandler.Handle(apperrors.NewOutputWriteFailedError(sink, err))
	}

	log.Info("invocation complete", map[string]interface{}{
		"operation": firstOr(record, "operation"),
		"sink":      sinkName(sink),
	})
	return 0
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

// resolveSink picks the output file: flag, then config, then the
// GITHUB_OUTPUT variable from the environ snapshot. Empty means stdout.
func resolveSink(flagPath string, cfg *config.Config, environ []string) string {
	if flagPath != "" {
		return flagPath
	}
	if cfg.Runner.OutputPath != "" {
		return cfg.Runner.OutputPath
	}
	for _, kv := range environ {
		const prefix = "GITHUB_OUTPUT="
		if len(kv) > len(prefix) && kv[:len(prefix)] == prefix {
			return kv[len(prefix):]
		}
	}
	return ""
}

func writeRecord(record *action.OutputRecord, sink string) error {
	if sink == "" {
		if _, err := record.WriteTo(os.Stdout); err != nil {
			return err
		}
		metrics.OutputRecordsWritten.WithLabelValues("stdout").Inc()
		return nil
	}
	if err := record.AppendFile(sink); err != nil {
		return err
	}
	metrics.OutputRecordsWritten.WithLabelValues("file").Inc()
	return nil
}

func sinkName(sink string) string {
	if sink == "" {
		return "stdout"
	}
	return sink
}

func firstOr(record *action.OutputRecord, key string) string {
	v, _ := record.Get(key)
	return v
}

func listOperations(cfg *config.Config, log logger.Logger) int {
	reg, err := registry.LoadRegistry(cfg.Registry.Path)
	if err != nil {
		log.Debug("registry file unavailable, listing built-ins", map[string]interface{}{
			"path": cfg.Registry.Path, "error": err.Error(),
		})
		fmt.Println("echo, reverse, count, uppercase, lowercase, analyze, transform, validate")
		return 0
	}

	for _, op := range reg.Operations {
		fmt.Printf("%-10s %-10s %s\n", op.ID, op.Category, op.Description)
	}
	return 0
}
