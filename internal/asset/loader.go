// Package asset loads named resources in the background and reports progress
// to the frame loop.
package asset

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// ErrUnknownAsset is returned by Get for names not in the manifest.
var ErrUnknownAsset = errors.New("asset: unknown asset")

// ErrNotReady is returned by Get for assets that have not reported yet.
var ErrNotReady = errors.New("asset: not loaded yet")

// LoadFunc produces an asset value. It runs on its own goroutine.
type LoadFunc func(ctx context.Context) (any, error)

// Spec names one asset and how to load it.
type Spec struct {
	Name string
	Load LoadFunc
}

// LoadError records why a named asset failed to load.
type LoadError struct {
	Name string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("asset %q: %v", e.Name, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

type result struct {
	name  string
	value any
	err   error
}

// Loader runs every Spec concurrently. Results are only applied by Poll, so
// all bookkeeping happens on the caller's (frame loop's) goroutine.
type Loader struct {
	specs   []Spec
	results chan result
	started bool
	logger  *log.Logger

	loaded   int
	reported int
	values   map[string]any
	errs     map[string]error
}

// NewLoader creates a loader for the given manifest.
func NewLoader(logger *log.Logger, specs ...Spec) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{
		specs:   specs,
		results: make(chan result, len(specs)),
		logger:  logger,
		values:  make(map[string]any, len(specs)),
		errs:    make(map[string]error),
	}
}

// Start launches the loads. Calling Start twice is a no-op.
func (l *Loader) Start(ctx context.Context) {
	if l.started {
		return
	}
	l.started = true
	for _, spec := range l.specs {
		go func(spec Spec) {
			var r result
			r.name = spec.Name
			if spec.Load == nil {
				r.err = errors.New("no loader")
			} else {
				r.value, r.err = spec.Load(ctx)
			}
			l.results <- r
		}(spec)
	}
}

// Poll applies every result that has arrived since the last call and
// returns how many were applied. It never blocks.
func (l *Loader) Poll() int {
	n := 0
	for {
		select {
		case r := <-l.results:
			l.apply(r)
			n++
		default:
			return n
		}
	}
}

func (l *Loader) apply(r result) {
	l.reported++
	if r.err != nil {
		err := &LoadError{Name: r.name, Err: r.err}
		l.errs[r.name] = err
		l.logger.Error("Error loading asset", "asset", r.name, "err", r.err)
	} else {
		l.values[r.name] = r.value
		l.loaded++
		l.logger.Info("Asset loaded", "asset", r.name, "loaded", l.loaded, "total", len(l.specs))
	}
	if l.Done() {
		l.logger.Info("All assets reported", "loaded", l.loaded, "failed", len(l.errs))
	}
}

// Done reports whether every asset has either loaded or failed.
func (l *Loader) Done() bool {
	return l.reported == len(l.specs)
}

// Progress returns the successful load count and the manifest size.
func (l *Loader) Progress() (loaded, total int) {
	return l.loaded, len(l.specs)
}

// Get returns a loaded asset value.
func (l *Loader) Get(name string) (any, error) {
	if v, ok := l.values[name]; ok {
		return v, nil
	}
	if err, ok := l.errs[name]; ok {
		return nil, err
	}
	for _, spec := range l.specs {
		if spec.Name == name {
			return nil, ErrNotReady
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownAsset, name)
}

// Failed returns the names of assets that failed to load.
func (l *Loader) Failed() []string {
	names := make([]string, 0, len(l.errs))
	for _, spec := range l.specs {
		if _, ok := l.errs[spec.Name]; ok {
			names = append(names, spec.Name)
		}
	}
	return names
}
