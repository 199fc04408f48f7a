package main

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"sync"

	"github.com/fwojciec/docscrape"
	"github.com/fwojciec/docscrape/table"
	"github.com/mattn/go-isatty"
)

// render writes t in the requested format.
func render(deps *Dependencies, mode docscrape.Mode, format docscrape.OutputFormat, t *docscrape.Table) error {
	switch format {
	case docscrape.OutputPretty:
		return table.NewRenderer(deps.Stdout).Render(t)
	case docscrape.OutputFile:
		path, err := deps.Results.Write(mode, t)
		if err != nil {
			return err
		}
		deps.Logger.Info("results saved", "path", path)
		return nil
	default:
		return docscrape.WriteRows(deps.Stdout, t)
	}
}

// progressPrinter shows per-page progress on a single terminal line.
// It also stands in front of the log stream so that a log record never
// lands on the end of a progress line.
type progressPrinter struct {
	mu      sync.Mutex
	w       io.Writer
	enabled bool
	pending bool
}

// newProgressPrinter returns a printer that shows progress only when w is
// a terminal.
func newProgressPrinter(w io.Writer) *progressPrinter {
	return &progressPrinter{w: w, enabled: isTerminal(w)}
}

// Report overwrites the progress line with pr.
func (p *progressPrinter) Report(pr docscrape.Progress) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending = true
	fmt.Fprintf(p.w, "\r[%d/%d] %s", pr.Completed, pr.Total, truncateURL(pr.URL, 40))
}

// Write clears a pending progress line, then writes b.
func (p *progressPrinter) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.clear()
	return p.w.Write(b)
}

// Done clears the progress line if one is showing.
func (p *progressPrinter) Done() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.clear()
}

func (p *progressPrinter) clear() {
	if p.pending {
		fmt.Fprintf(p.w, "\r%80s\r", "")
		p.pending = false
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// truncateURL shortens a URL for display by showing only the path.
func truncateURL(rawURL string, maxLen int) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		if len(rawURL) <= maxLen {
			return rawURL
		}
		return rawURL[:maxLen-3] + "..."
	}

	path := parsed.Path
	if path == "" {
		path = "/"
	}
	if len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}
