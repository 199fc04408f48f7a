// Package csv saves result tables as CSV files.
package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/docscrape"
)

// DefaultResultsDir is the directory, relative to the base directory,
// result files are written to.
const DefaultResultsDir = "results"

// TimestampFormat is the layout of the timestamp in result file names.
const TimestampFormat = "2006-01-02_15-04-05"

// Writer writes tables to timestamped CSV files in a directory.
type Writer struct {
	dir string
	now func() time.Time
}

// Option configures a Writer.
type Option func(*Writer)

// WithNow sets the clock used to timestamp file names.
func WithNow(now func() time.Time) Option {
	return func(w *Writer) {
		w.now = now
	}
}

// NewWriter creates a new Writer that writes to dir.
func NewWriter(dir string, opts ...Option) *Writer {
	w := &Writer{dir: dir, now: time.Now}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write saves t as <dir>/<mode>_<timestamp>.csv and returns the file path.
func (w *Writer) Write(mode docscrape.Mode, t *docscrape.Table) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%s.csv", mode, w.now().Format(TimestampFormat))
	path := filepath.Join(w.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	cw := csv.NewWriter(f)
	if err := cw.WriteAll(t.Records()); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
