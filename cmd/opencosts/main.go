// ABOUTME: Command line entry point that runs one pricing pass and exports the result
// ABOUTME: Prints a compact report (or grouped JSON) and writes the CSV file

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"opencosts-api/infrastructure/logger/structured"
	opencosts "opencosts-api/opencosts-lib"
	"opencosts-api/pkg/config"
	"opencosts-api/pkg/searchterms"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("opencosts", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configFile := fs.String("config", "", "path to a YAML config file")
	termsFile := fs.String("terms-file", "", "file with one search term per line (default from config)")
	termsList := fs.String("terms", "", "comma separated search terms; overrides -terms-file")
	out := fs.String("out", "", "CSV output path (default from config); '-' skips the file")
	noCreationDate := fs.Bool("no-creation-date", false, "omit the creation date column")
	asJSON := fs.Bool("json", false, "print rows grouped by author as JSON instead of the report")
	logLevel := fs.String("log-level", "", "debug, info, warn or error (default from config)")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(config.Options{ConfigFile: *configFile})
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 2
	}

	level := cfg.Log.Level
	if *logLevel != "" {
		level = *logLevel
	}
	logger := structured.New(structured.Options{
		Level:  level,
		Format: "text",
		File:   cfg.Log.File,
		Output: stderr,
	})

	terms := searchterms.SplitList(*termsList)
	if len(terms) == 0 {
		path := cfg.Search.TermsFile
		if *termsFile != "" {
			path = *termsFile
		}
		if terms, err = searchterms.Load(path, cfg.Search.DefaultTerms, logger); err != nil {
			fmt.Fprintf(stderr, "search terms: %v\n", err)
			return 2
		}
	}

	client, err := opencosts.NewClient(
		opencosts.WithLogger(logger),
		opencosts.WithBaseURL(cfg.Catalog.BaseURL),
		opencosts.WithAPIBaseURL(cfg.Catalog.APIBaseURL),
		opencosts.WithConcurrency(cfg.Catalog.Concurrency),
		opencosts.WithTimeout(cfg.Catalog.Timeout),
		opencosts.WithUserAgent(cfg.Catalog.UserAgent),
	)
	if err != nil {
		fmt.Fprintf(stderr, "client: %v\n", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	snapshot, err := client.Run(ctx, terms)
	if err != nil {
		fmt.Fprintf(stderr, "run: %v\n", err)
		return 1
	}

	if *asJSON {
		err = client.WriteJSON(stdout, snapshot.Rows)
	} else {
		err = client.Report(stdout, snapshot)
	}
	if err != nil {
		fmt.Fprintf(stderr, "output: %v\n", err)
		return 1
	}

	csvPath := cfg.Output.CSVPath
	if *out != "" {
		csvPath = *out
	}
	if csvPath == "-" || csvPath == "" {
		return 0
	}

	includeCreationDate := cfg.Output.IncludeCreationDate && !*noCreationDate
	if err := client.WriteCSVFile(csvPath, snapshot.Rows, includeCreationDate); err != nil {
		fmt.Fprintf(stderr, "csv: %v\n", err)
		return 1
	}
	if !*asJSON {
		fmt.Fprintf(stdout, "\nWrote %d rows to %s\n", len(snapshot.Rows), csvPath)
	}

	return 0
}
