package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/meltforce/swimnotes/internal/batch"
	"github.com/meltforce/swimnotes/internal/config"
	"github.com/meltforce/swimnotes/internal/models"
	"github.com/meltforce/swimnotes/internal/practice"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	jsonOut := flag.Bool("json", false, "print the parsed structure as JSON")
	metricsOut := flag.Bool("metrics", false, "print only yardage, time and difficulty")
	dir := flag.String("dir", "", "canonicalize every .txt practice file under this directory")
	dryRun := flag.Bool("dry-run", false, "with -dir: report what would change without rewriting files")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("swimnotes", Version)
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *jsonOut {
		cfg.Output = "json"
	}
	if *metricsOut {
		cfg.Output = "metrics"
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	if *dir != "" {
		runBatch(cfg, log, *dir, *dryRun)
		return
	}

	raw, err := readInput(flag.Arg(0))
	if err != nil {
		log.Error("failed to read input", "error", err)
		os.Exit(1)
	}

	parsed := practice.Parse(raw)

	switch cfg.Output {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(models.NewPracticeView(parsed)); err != nil {
			log.Error("failed to encode practice", "error", err)
			os.Exit(1)
		}
	case "metrics":
		fmt.Printf("yards=%d time=%s difficulty=%d\n",
			parsed.TotalYardage,
			models.FormatDuration(parsed.EstimatedTime),
			parsed.Difficulty,
		)
	default:
		fmt.Println(practice.Format(parsed))
	}
}

// readInput reads the practice text from a file argument or, when absent,
// from stdin.
func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func runBatch(cfg *config.Config, log *slog.Logger, dir string, dryRun bool) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		log.Error("practice path does not exist or is not a directory", "path", dir)
		os.Exit(1)
	}

	stateDir := cfg.Batch.StateDir
	if stateDir == "" {
		stateDir = filepath.Join(dir, ".swimnotes")
	}

	state, err := batch.OpenStateDB(stateDir)
	if err != nil {
		log.Error("failed to open state db", "error", err)
		os.Exit(1)
	}
	defer state.Close()

	if dryRun {
		log.Info("DRY RUN mode, no files will be rewritten")
	}

	canon := batch.New(state, log, dryRun)
	stats, err := canon.Run(dir)
	if err != nil {
		log.Error("canonicalization failed", "error", err)
		printStats(log, stats)
		os.Exit(1)
	}

	printStats(log, stats)
	log.Info("canonicalization complete")
}

func printStats(log *slog.Logger, stats *batch.Stats) {
	log.Info("canonicalization stats",
		"files_processed", stats.FilesProcessed,
		"files_skipped", stats.FilesSkipped,
		"files_unchanged", stats.FilesUnchanged,
		"files_rewritten", stats.FilesRewritten,
		"files_errored", stats.FilesErrored,
	)
}
