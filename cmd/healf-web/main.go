// Command healf-web starts the catalog explorer web server.
//
// Usage:
//
//	go run ./cmd/healf-web -addr :8080 -data exports/products.csv
//
// Configuration comes from an optional JSON file (-config), HEALF_*
// environment variables (a .env file is honored), and flags, in that order
// of precedence for the flags that overlap.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Dolat-Hamza/healf/internal/config"
	"github.com/Dolat-Hamza/healf/internal/datasource"
	"github.com/Dolat-Hamza/healf/internal/datasource/file"
	"github.com/Dolat-Hamza/healf/internal/datasource/httpds"
	"github.com/Dolat-Hamza/healf/internal/loader"
	"github.com/Dolat-Hamza/healf/internal/metrics"
	"github.com/Dolat-Hamza/healf/internal/metrics/promexp"
	"github.com/Dolat-Hamza/healf/internal/parser/csv"
	"github.com/Dolat-Hamza/healf/internal/validate"
	"github.com/Dolat-Hamza/healf/internal/webui"
)

func main() {
	flagConfig := flag.String("config", "", "path to JSON config file")
	flagAddr := flag.String("addr", "", "listen address (overrides config)")
	flagData := flag.String("data", "", "local CSV export to load at startup (overrides config)")
	flagURL := flag.String("url", "", "remote CSV export to fetch at startup (overrides config)")
	flag.Parse()

	// A .env file is optional; absence is not an error.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		logger.Error("config load failed", "error", err)
		os.Exit(1)
	}
	if *flagAddr != "" {
		cfg.Server.Addr = *flagAddr
	}
	if *flagData != "" {
		cfg.Dataset.Path = *flagData
	}
	if *flagURL != "" {
		cfg.Dataset.URL = *flagURL
	}

	issues := config.Validate(cfg)
	for _, issue := range issues {
		fmt.Fprintln(os.Stderr, issue.Error())
	}
	if config.HasErrors(issues) {
		os.Exit(1)
	}

	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		backend, err := promexp.NewBackend()
		if err != nil {
			logger.Error("metrics backend init failed", "error", err)
			os.Exit(1)
		}
		metrics.SetBackend(backend)
		metricsHandler = backend.Handler()
	}

	parserOpts := loaderParserOptions(cfg, logger)
	ld := loader.New(loader.Options{
		MaxBytes: cfg.Dataset.MaxFileSize,
		Parser:   parserOpts,
		Logger:   logger,
	})
	store := loader.NewStore()

	if src, kind := startupSource(cfg); src != nil {
		if kind == "url" {
			peekRemote(cfg.Dataset.URL, logger)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		ds, err := ld.Load(ctx, src, "", kind)
		cancel()
		if err != nil {
			logger.Error("startup dataset load failed", "error", err)
			os.Exit(1)
		}
		store.Put(ds)
	}

	srv := webui.NewServer(webui.Config{
		Addr:           cfg.Server.Addr,
		PageSize:       cfg.Query.PageSize,
		Fuzzy:          cfg.Query.Fuzzy,
		FuzzyThreshold: cfg.Query.FuzzyThreshold,
		MaxUploadBytes: cfg.Dataset.MaxFileSize,
		Validation:     validationOptions(cfg),
		MetricsHandler: metricsHandler,
		Logger:         logger,
	}, ld, store)

	logger.Info("listening", "addr", cfg.Server.Addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// loaderParserOptions maps config onto the CSV tokenizer options.
func loaderParserOptions(cfg config.Config, logger *slog.Logger) csv.Options {
	opt := csv.Options{Logger: logger}
	if cfg.Dataset.Delimiter != "" {
		opt.Delimiter = []rune(cfg.Dataset.Delimiter)[0]
	}
	return opt
}

// validationOptions maps config onto the strict validation pass, starting
// from the documented defaults.
func validationOptions(cfg config.Config) validate.Options {
	opt := validate.DefaultOptions()
	if cfg.Dataset.MaxFileSize > 0 {
		opt.MaxFileSize = cfg.Dataset.MaxFileSize
	}
	if cfg.Dataset.MaxRows > 0 {
		opt.MaxRows = cfg.Dataset.MaxRows
	}
	if len(cfg.Validation.RequiredFields) > 0 {
		opt.RequiredFields = cfg.Validation.RequiredFields
	}
	opt.AllowMissingFields = !cfg.Validation.RejectMissingFields
	opt.ValidateDataTypes = !cfg.Validation.SkipTypeChecks
	return opt
}

// peekRemote fetches the head of a remote export and logs what the header
// line looks like, so a misconfigured URL fails loudly before the full
// download starts. Peek failures only warn; the real load decides.
func peekRemote(url string, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	head, err := httpds.NewClient(httpds.Config{}).FetchFirstBytes(ctx, url, 4096)
	if err != nil {
		logger.Warn("could not peek remote export", "url", url, "error", err)
		return
	}
	line, _, _ := strings.Cut(string(head), "\n")
	delim := csv.DetectDelimiter(line)
	logger.Info("remote export peek",
		"url", url, "columns", len(csv.SplitLine(line, delim)), "delimiter", string(delim))
}

func startupSource(cfg config.Config) (datasource.Source, string) {
	switch {
	case cfg.Dataset.Path != "":
		return file.NewLocal(cfg.Dataset.Path), "file"
	case cfg.Dataset.URL != "":
		return httpds.NewRemote(nil, cfg.Dataset.URL), "url"
	}
	return nil, ""
}
