// Package batch rewrites a directory of practice .txt files into canonical
// form, skipping files a previous run already canonicalized. The raw text
// stays the source of truth: only its layout is normalized, and derived
// metrics are reported, never stored in place of it.
package batch

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/meltforce/swimnotes/internal/models"
	"github.com/meltforce/swimnotes/internal/practice"
)

// Stats tracks canonicalization progress.
type Stats struct {
	FilesProcessed int
	FilesSkipped   int
	FilesUnchanged int
	FilesRewritten int
	FilesErrored   int
}

// Canonicalizer walks practice files and rewrites them canonically.
type Canonicalizer struct {
	state  *StateDB
	log    *slog.Logger
	dryRun bool
	stats  Stats
}

// New creates a Canonicalizer. A nil state database disables skip tracking.
func New(state *StateDB, log *slog.Logger, dryRun bool) *Canonicalizer {
	return &Canonicalizer{state: state, log: log, dryRun: dryRun}
}

// Run processes every .txt file under dir.
func (c *Canonicalizer) Run(dir string) (*Stats, error) {
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".txt") {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			rel = path
		}

		if err := c.processFile(path, rel); err != nil {
			c.stats.FilesErrored++
			c.log.Warn("skipping file", "file", rel, "error", err)
		}
		return nil
	})
	if err != nil {
		return &c.stats, fmt.Errorf("walking %s: %w", dir, err)
	}
	return &c.stats, nil
}

func (c *Canonicalizer) processFile(path, rel string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading: %w", err)
	}
	c.stats.FilesProcessed++

	hash := HashBytes(data)
	size := int64(len(data))

	if c.state != nil {
		done, err := c.state.IsCanonical(rel, size, hash)
		if err != nil {
			return fmt.Errorf("checking state: %w", err)
		}
		if done {
			c.stats.FilesSkipped++
			return nil
		}
	}

	parsed := practice.Parse(string(data))
	canonical := practice.Format(parsed)
	if canonical != "" {
		canonical += "\n"
	}

	c.log.Info("canonicalized",
		"file", rel,
		"yards", parsed.TotalYardage,
		"time", models.FormatDuration(parsed.EstimatedTime),
		"difficulty", parsed.Difficulty,
	)

	if canonical == string(data) {
		c.stats.FilesUnchanged++
		return c.mark(rel, size, hash)
	}

	if c.dryRun {
		c.stats.FilesRewritten++
		return nil
	}

	if err := os.WriteFile(path, []byte(canonical), 0o644); err != nil {
		return fmt.Errorf("writing: %w", err)
	}
	c.stats.FilesRewritten++
	return c.mark(rel, int64(len(canonical)), HashBytes([]byte(canonical)))
}

func (c *Canonicalizer) mark(rel string, size int64, hash string) error {
	if c.state == nil {
		return nil
	}
	if err := c.state.MarkCanonical(rel, size, hash); err != nil {
		return fmt.Errorf("recording state: %w", err)
	}
	return nil
}
