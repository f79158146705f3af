package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"tinyscribe/internal/config"
	"tinyscribe/internal/ingest"
	"tinyscribe/internal/logger"
	"tinyscribe/internal/pipeline"
	"tinyscribe/internal/summarizer"
	"tinyscribe/internal/transcriber"
	"tinyscribe/internal/watcher"
	"tinyscribe/pkg/executor"
)

func main() {
	var (
		configPath string
		watch      bool
	)
	flag.StringVar(&configPath, "config", "config.yaml", "Path to YAML configuration file")
	flag.BoolVar(&watch, "watch", false, "Watch the input directory and process new audio files")
	flag.Usage = usage
	flag.Parse()

	// .env is optional; real environment variables always win.
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	ctx := context.Background()

	exec := executor.New()
	ing := ingest.New(exec, log)
	tr := transcriber.New(cfg, exec, log)

	sum, err := summarizer.New(summarizer.Options{
		Provider:    cfg.Summarizer.Provider,
		GeminiKeys:  geminiKeys(),
		GeminiModel: cfg.Summarizer.GeminiModel,
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel: cfg.Summarizer.OpenAIModel,
		MaxAttempts: cfg.Summarizer.MaxAttempts,
		Timeout:     time.Duration(cfg.Summarizer.TimeoutSeconds) * time.Second,
	}, log)
	if err != nil {
		// Degraded mode still works without a credential; the report
		// just marks its summary unavailable.
		if !cfg.Pipeline.GracefulDegradation || !errors.Is(err, summarizer.ErrAuth) {
			fmt.Fprintf(os.Stderr, "Failed to configure summarizer: %v\n", err)
			os.Exit(1)
		}
		log.Warn(ctx, "Summarizer not configured, reports will omit summaries: %v", err)
		sum = nil
	}

	pipe := pipeline.New(cfg, ing, tr, sum, log)

	if watch {
		runWatch(ctx, cfg, pipe, log)
		return
	}

	audioPath := flag.Arg(0)
	if audioPath == "" {
		usage()
		os.Exit(2)
	}

	outPath, err := pipe.Process(ctx, audioPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Processing failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(outPath)
}

// runWatch monitors the configured input directory until interrupted.
func runWatch(ctx context.Context, cfg *config.Config, pipe pipeline.Pipeline, log logger.Logger) {
	if err := os.MkdirAll(cfg.Paths.Input, 0755); err != nil {
		log.Error(ctx, "Failed to create input directory: %v", err)
		os.Exit(1)
	}

	handler := func(ctx context.Context, path string) error {
		out, err := pipe.Process(ctx, path)
		if err != nil {
			return err
		}
		log.Info(ctx, "Report ready: %s", out)
		return nil
	}

	w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errChan <- err
		}
	}()

	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	cancel()
	log.Info(ctx, "Stopped")
}

// geminiKeys reads GEMINI_API_KEYS (comma-separated) with GEMINI_API_KEY
// as the single-key fallback.
func geminiKeys() []string {
	var keys []string
	for _, k := range strings.Split(os.Getenv("GEMINI_API_KEYS"), ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		if k := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: tinyscribe [flags] <audio-file>

Transcribes an audio file locally, derives chapters, summarizes it with
a remote LLM, and writes a Markdown report.

Flags:
  -config string   Path to YAML configuration file (default "config.yaml")
  -watch           Watch the input directory instead of processing one file
`)
}
