package runner_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/yaklabco/syntree/pkg/runner"
)

func TestDiscover_FiltersByExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.calc", "")
	writeFile(t, dir, "b.conf", "")
	writeFile(t, dir, "c.ini", "")
	writeFile(t, dir, "notes.txt", "")
	writeFile(t, dir, "README.md", "")

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 files, got %d: %v", len(files), files)
	}
}

func TestDiscover_SortedAndDeduplicated(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "z.calc", "")
	writeFile(t, dir, "a.calc", "")

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Paths:      []string{".", "a.calc"}, // a.calc reached twice
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %v", files)
	}
	if filepath.Base(files[0]) != "a.calc" || filepath.Base(files[1]) != "z.calc" {
		t.Errorf("expected sorted output, got %v", files)
	}
}

func TestDiscover_SkipsHiddenEntries(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "visible.calc", "")
	writeFile(t, dir, ".hidden.calc", "")
	writeFile(t, dir, ".git/config.conf", "")

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "visible.calc" {
		t.Errorf("expected only the visible file, got %v", files)
	}
}

func TestDiscover_ExcludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "keep.calc", "")
	writeFile(t, dir, "vendor/dep.calc", "")
	writeFile(t, dir, "deep/nested/skip.calc", "")

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir:   dir,
		ExcludeGlobs: []string{"vendor/**", "**/skip.calc"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "keep.calc" {
		t.Errorf("expected only keep.calc, got %v", files)
	}
}

func TestDiscover_IncludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "app.conf", "")
	writeFile(t, dir, "other.calc", "")

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir:   dir,
		IncludeGlobs: []string{"*.conf"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "app.conf" {
		t.Errorf("expected only app.conf, got %v", files)
	}
}

func TestDiscover_CustomExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.calc", "")
	writeFile(t, dir, "b.conf", "")

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Extensions: []string{".calc"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "a.calc" {
		t.Errorf("expected only a.calc, got %v", files)
	}
}

func TestDiscover_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
		Paths:      []string{"does-not-exist"},
	})
	if err == nil {
		t.Fatal("expected an error for a missing path")
	}
}

func TestDiscover_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.Options{WorkingDir: t.TempDir()})
	if err == nil {
		t.Fatal("expected an error for a cancelled context")
	}
}
