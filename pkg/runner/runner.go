package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/yaklabco/syntree/pkg/lang/calc"
	"github.com/yaklabco/syntree/pkg/lang/conf"
	"github.com/yaklabco/syntree/pkg/langdetect"
	"github.com/yaklabco/syntree/pkg/syntax"
)

// ErrUnknownLanguage is reported for files whose language cannot be
// determined from the path or content.
var ErrUnknownLanguage = errors.New("unknown language")

// ParseFunc builds a tree for one file's content.
type ParseFunc func(path string, src []byte) *syntax.Tree

// Runner orchestrates multi-file parsing and verification.
type Runner struct {
	parsers map[langdetect.Language]ParseFunc
}

// New creates a Runner with the built-in front ends registered.
func New() *Runner {
	return &Runner{parsers: map[langdetect.Language]ParseFunc{
		langdetect.Calc: calc.Parse,
		langdetect.Conf: conf.Parse,
	}}
}

// Run discovers files under opts.Paths and processes them concurrently.
// Outcomes are returned in discovery order regardless of which worker
// finished first. Respects context cancellation.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; rebuild discovery order at the end.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}
	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

// worker processes files from workCh and sends outcomes to outCh.
func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.ParseFile(path)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// ParseFile reads, classifies, parses and verifies one file.
func (r *Runner) ParseFile(path string) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		outcome.Error = fmt.Errorf("read %s: %w", path, err)
		return outcome
	}

	outcome.Language = langdetect.DetectPath(path, content)
	parse, ok := r.parsers[outcome.Language]
	if !ok {
		outcome.Error = fmt.Errorf("%s: %w", path, ErrUnknownLanguage)
		return outcome
	}

	tree := parse(path, content)
	if err := tree.VerifyRoundTrip(); err != nil {
		outcome.Error = fmt.Errorf("%s: %w", path, err)
		return outcome
	}

	outcome.Tree = tree
	outcome.Diagnostics = tree.Root().Diagnostics()
	return outcome
}
