// Package main is the entry point for the replyminer extraction tool.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/joho/godotenv"

	"github.com/threadmill/replyminer/internal/config"
	"github.com/threadmill/replyminer/internal/contact"
	"github.com/threadmill/replyminer/internal/decode"
	"github.com/threadmill/replyminer/internal/emit"
	"github.com/threadmill/replyminer/internal/emit/jsonout"
	"github.com/threadmill/replyminer/internal/emit/stdout"
	"github.com/threadmill/replyminer/internal/filter"
	"github.com/threadmill/replyminer/internal/htmltext"
	"github.com/threadmill/replyminer/internal/report"
	"github.com/threadmill/replyminer/internal/thread"
)

func main() {
	configPath := flag.String("config", "", "path to YAML configuration file (optional)")
	charsetName := flag.String("charset", "", "character encoding of the input files (overrides config)")
	format := flag.String("format", "", "output format, stdout or json (overrides config)")
	filterExpr := flag.String("filter", "", "emit only records matching this expression (overrides config)")
	htmlInput := flag.Bool("html", false, "treat input files as HTML-saved mail")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] FILE...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	// A local .env complements plain environment configuration.
	_ = godotenv.Load()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	applyFlags(cfg, *charsetName, *format, *filterExpr, *htmlInput)

	// Setup structured logging
	setupLogger(cfg.Logging.Level)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	files := flag.Args()
	if len(files) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	// The title list is required: without it names cannot be sanitized.
	titles, err := contact.LoadTitles(cfg.Extract.TitlesPath)
	if err != nil {
		slog.Error("failed to load title list", "path", cfg.Extract.TitlesPath, "error", err)
		os.Exit(1)
	}
	sanitizer := contact.NewSanitizer(titles)

	var flt *filter.Filter
	if cfg.Output.Filter != "" {
		flt, err = filter.New(cfg.Output.Filter)
		if err != nil {
			slog.Error("failed to compile filter", "error", err)
			os.Exit(1)
		}
	}

	emitter, cleanup, err := selectEmitter(cfg)
	if err != nil {
		slog.Error("failed to create emitter", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	slog.Info("starting replyminer",
		"files", len(files),
		"emitter", emitter.Name(),
		"workers", cfg.Extract.Workers,
		"titles", len(titles),
	)

	ext := extractor{
		cfg:       cfg,
		sanitizer: sanitizer,
		filter:    flt,
		emitter:   emitter,
	}

	// Every message is an independent pure transformation, so files fan out
	// across a bounded pool and only emission is serialized.
	var (
		wg     sync.WaitGroup
		failed atomic.Int64
	)
	paths := make(chan string)
	for i := 0; i < cfg.Extract.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range paths {
				if err := ext.processFile(path); err != nil {
					slog.Error("failed to process message", "path", path, "error", err)
					failed.Add(1)
				}
			}
		}()
	}
	for _, path := range files {
		paths <- path
	}
	close(paths)
	wg.Wait()

	if n := failed.Load(); n > 0 {
		slog.Warn("finished with failures", "failed", n, "total", len(files))
		if int(n) == len(files) {
			os.Exit(1)
		}
		return
	}
	slog.Info("replyminer finished", "files", len(files))
}

// extractor bundles the pipeline collaborators shared by all workers. All of
// them are read-only after startup except the emitter, which mu serializes.
type extractor struct {
	cfg       *config.Config
	sanitizer *contact.Sanitizer
	filter    *filter.Filter
	emitter   emit.Emitter
	mu        sync.Mutex
}

// processFile runs the full pipeline over one message file: decode, optional
// HTML conversion, reply splitting, then per-reply metadata and signature
// extraction. Replies without an identifiable sender are skipped, matching
// the best-effort nature of the heuristics.
func (x *extractor) processFile(path string) error {
	text, err := decode.ReadFile(path, x.cfg.Extract.Charset)
	if err != nil {
		return err
	}

	if x.cfg.Extract.HTML {
		text, err = htmltext.Convert(text)
		if err != nil {
			return err
		}
	}

	replies := thread.SplitReplies(text)
	slog.Debug("split message", "path", path, "replies", len(replies))

	for _, reply := range replies {
		md := thread.ExtractMetadata(reply, x.sanitizer)
		if md.Sender == nil {
			continue
		}

		sig, err := thread.DetectSignature(reply, *md.Sender, x.cfg.Extract.LengthDivisor, x.sanitizer)
		if err != nil {
			return err
		}

		rec := report.New(path, md, sig)
		if x.filter != nil {
			ok, err := x.filter.Match(rec)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
		}

		x.mu.Lock()
		err = x.emitter.Emit(rec)
		x.mu.Unlock()
		if err != nil {
			return err
		}
	}
	return nil
}

// loadConfig loads configuration from the specified path (YAML + env override)
// or from environment variables only if no path is given.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

// applyFlags lets command-line flags override the layered configuration.
func applyFlags(cfg *config.Config, charsetName, format, filterExpr string, htmlInput bool) {
	if charsetName != "" {
		cfg.Extract.Charset = charsetName
	}
	if format != "" {
		cfg.Output.Format = format
	}
	if filterExpr != "" {
		cfg.Output.Filter = filterExpr
	}
	if htmlInput {
		cfg.Extract.HTML = true
	}
}

// setupLogger configures the global slog logger with JSON output and the
// specified log level. Logs go to stderr so records on stdout stay clean.
func setupLogger(level string) {
	var logLevel slog.Level

	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// selectEmitter chooses the record sink based on configuration. The returned
// cleanup closes any file the sink writes to.
func selectEmitter(cfg *config.Config) (emit.Emitter, func(), error) {
	switch cfg.Output.Format {
	case "json":
		if cfg.Output.Path != "" {
			f, err := os.Create(cfg.Output.Path)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to create output file: %w", err)
			}
			return jsonout.New(f), func() { f.Close() }, nil
		}
		return jsonout.New(os.Stdout), func() {}, nil

	case "stdout":
		return stdout.New(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown output format %q", cfg.Output.Format)
	}
}
