package batch

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

const messyPractice = "4x100 free easy 2:00\n\n4x50 back easy 1:15\n"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunRewritesMessyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuesday.txt")
	if err := os.WriteFile(path, []byte(messyPractice), 0o644); err != nil {
		t.Fatal(err)
	}

	state, err := OpenStateDB(filepath.Join(dir, ".swimnotes"))
	if err != nil {
		t.Fatalf("OpenStateDB: %v", err)
	}
	defer state.Close()

	c := New(state, discardLogger(), false)
	stats, err := c.Run(dir)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.FilesProcessed != 1 || stats.FilesRewritten != 1 {
		t.Errorf("stats = %+v, want 1 processed, 1 rewritten", stats)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if got == messyPractice {
		t.Error("file not rewritten")
	}
	if got[len(got)-1] != '\n' {
		t.Error("canonical file missing trailing newline")
	}
}

func TestRunSkipsCanonicalizedFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tuesday.txt"), []byte(messyPractice), 0o644); err != nil {
		t.Fatal(err)
	}

	state, err := OpenStateDB(filepath.Join(dir, ".swimnotes"))
	if err != nil {
		t.Fatalf("OpenStateDB: %v", err)
	}
	defer state.Close()

	if _, err := New(state, discardLogger(), false).Run(dir); err != nil {
		t.Fatalf("first Run: %v", err)
	}

	stats, err := New(state, discardLogger(), false).Run(dir)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if stats.FilesProcessed != 1 || stats.FilesSkipped != 1 {
		t.Errorf("second run stats = %+v, want 1 processed, 1 skipped", stats)
	}
	if stats.FilesRewritten != 0 {
		t.Errorf("second run rewrote %d files, want 0", stats.FilesRewritten)
	}
}

func TestRunDryRunLeavesFilesAlone(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuesday.txt")
	if err := os.WriteFile(path, []byte(messyPractice), 0o644); err != nil {
		t.Fatal(err)
	}

	stats, err := New(nil, discardLogger(), true).Run(dir)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.FilesRewritten != 1 {
		t.Errorf("stats = %+v, want 1 rewritten (counted, not written)", stats)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != messyPractice {
		t.Error("dry run modified the file")
	}
}

func TestRunIgnoresNonPracticeFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.md"), []byte("# notes"), 0o644); err != nil {
		t.Fatal(err)
	}

	stats, err := New(nil, discardLogger(), false).Run(dir)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.FilesProcessed != 0 {
		t.Errorf("processed %d files, want 0", stats.FilesProcessed)
	}
}

func TestStateDBRoundTrip(t *testing.T) {
	state, err := OpenStateDB(t.TempDir())
	if err != nil {
		t.Fatalf("OpenStateDB: %v", err)
	}
	defer state.Close()

	hash := HashBytes([]byte(messyPractice))
	size := int64(len(messyPractice))

	done, err := state.IsCanonical("tuesday.txt", size, hash)
	if err != nil {
		t.Fatal(err)
	}
	if done {
		t.Error("IsCanonical true before MarkCanonical")
	}

	if err := state.MarkCanonical("tuesday.txt", size, hash); err != nil {
		t.Fatalf("MarkCanonical: %v", err)
	}

	done, err = state.IsCanonical("tuesday.txt", size, hash)
	if err != nil {
		t.Fatal(err)
	}
	if !done {
		t.Error("IsCanonical false after MarkCanonical")
	}

	// A content change invalidates the record.
	done, err = state.IsCanonical("tuesday.txt", size, HashBytes([]byte("changed")))
	if err != nil {
		t.Fatal(err)
	}
	if done {
		t.Error("IsCanonical true for different hash")
	}
}
