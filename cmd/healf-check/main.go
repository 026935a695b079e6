// Command healf-check validates product CSV exports from the command line.
//
// Usage:
//
//	go run ./cmd/healf-check file1.csv file2.csv
//	go run ./cmd/healf-check -list manifest.txt -json
//
// Each file is validated independently; the exit code is 1 when any file
// has batch-fatal errors or invalid rows.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Dolat-Hamza/healf/internal/datasource/file"
	"github.com/Dolat-Hamza/healf/internal/errs"
	"github.com/Dolat-Hamza/healf/internal/validate"
)

var (
	flagList     = flag.String("list", "", "manifest file listing CSV paths, one per line ('#' comments allowed)")
	flagJSON     = flag.Bool("json", false, "emit the full validation result as JSON instead of a summary line")
	flagStrict   = flag.Bool("strict", false, "mark rows with missing required field values invalid")
	flagMaxRows  = flag.Int("max-rows", 0, "override the row ceiling (0 keeps the default)")
	flagRequired = flag.String("required", "", "comma-separated required headers (empty keeps ID,TITLE,VENDOR)")
)

func main() {
	flag.Parse()
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	paths := flag.Args()
	if *flagList != "" {
		listed, err := file.ReadList(*flagList)
		if err != nil {
			fmt.Fprintln(os.Stderr, "read list:", err)
			os.Exit(2)
		}
		paths = append(paths, listed...)
	}
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: healf-check [flags] file.csv ...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	opt := validate.DefaultOptions()
	opt.Logger = logger
	opt.AllowMissingFields = !*flagStrict
	if *flagMaxRows > 0 {
		opt.MaxRows = *flagMaxRows
	}
	if *flagRequired != "" {
		var required []string
		for _, f := range strings.Split(*flagRequired, ",") {
			if f = strings.TrimSpace(f); f != "" {
				required = append(required, f)
			}
		}
		opt.RequiredFields = required
	}

	failed := false
	for _, path := range paths {
		if !checkFile(path, opt) {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// checkFile validates one CSV and prints its outcome; it reports whether
// the file passed.
func checkFile(path string, opt validate.Options) bool {
	raw, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return false
	}

	res, err := validate.Content(string(raw), opt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", path, errs.Message(err))
		for _, hint := range errs.Suggestions(err) {
			fmt.Fprintf(os.Stderr, "  - %s\n", hint)
		}
		return false
	}

	if *flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(res)
	} else {
		fmt.Printf("%s: %s\n", path, validate.SummaryLine(res))
		for _, invalid := range res.InvalidProducts {
			fmt.Printf("  row %d: %s\n", invalid.Row, strings.Join(invalid.Errors, "; "))
		}
	}
	return res.IsValid
}
