package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docscrape"
	"github.com/fwojciec/docscrape/csv"
	"github.com/fwojciec/docscrape/fs"
	"github.com/fwojciec/docscrape/goquery"
	schttp "github.com/fwojciec/docscrape/http"
	scslog "github.com/fwojciec/docscrape/slog"
	"github.com/fwojciec/docscrape/sqlite"
	"github.com/fwojciec/docscrape/yaml"
	"github.com/google/uuid"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database backing the HTTP cache. Opened by Run.
	DB *sqlite.DB

	// Services for end-to-end testing. When Fetcher is set, Run uses it
	// and Cache instead of building the HTTP stack.
	Fetcher docscrape.Fetcher
	Cache   docscrape.Cache

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Now: time.Now}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	cli := &CLI{}
	var exited bool
	parser, err := kong.New(cli,
		kong.Name("docscrape"),
		kong.Description("Collect facts from the Python documentation and the PEP index"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
		kong.Vars{"modes": modeNames()},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no mode specified. Run 'docscrape --help' to see available modes")
	}
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if exited {
		// Help was printed somewhere in args.
		return nil
	}
	if err != nil {
		return err
	}

	configPath := cli.Config
	if configPath == "" {
		configPath = filepath.Join(cli.Dir, yaml.DefaultFilename)
	}
	cfg, err := yaml.LoadConfig(configPath)
	if err != nil {
		return err
	}

	progress := newProgressPrinter(stderr)
	logger, closer, err := newLogger(cfg, cli.Dir, progress)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer closer.Close()
	logger = logger.With("run", uuid.NewString())

	logger.Info("parser started")
	logger.Info("command line arguments", "args", strings.Join(args, " "))
	defer func() {
		if err != nil {
			logger.Error("parser failed", "err", err, "stack", string(debug.Stack()))
			return
		}
		logger.Info("parser finished")
	}()

	if m.Fetcher == nil {
		if err := m.openHTTP(cfg, cli.Dir); err != nil {
			return err
		}
		defer m.Close()
	}

	fetcher := scslog.NewLoggingFetcher(m.Fetcher, logger)
	defer fetcher.Close()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Cache:  m.Cache,
		Scraper: goquery.NewScraper(fetcher,
			goquery.WithLogger(logger),
			goquery.WithDocsURL(cfg.DocsURL),
			goquery.WithPEPURL(cfg.PEPURL),
			goquery.WithArchiveStore(fs.NewArchiveStore(filepath.Join(cli.Dir, fs.DefaultArchiveDir))),
			goquery.WithProgress(progress.Report),
		),
		Results: csv.NewWriter(filepath.Join(cli.Dir, csv.DefaultResultsDir), csv.WithNow(m.now)),
	}
	defer progress.Done()

	return kongCtx.Run(deps)
}

// openHTTP builds the network fetch stack: per-host rate limiting below a
// SQLite response cache below the HTTP fetcher.
func (m *Main) openHTTP(cfg *docscrape.Config, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	dbPath := filepath.Join(dir, sqlite.DefaultFilename)
	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		return fmt.Errorf("failed to open cache at %q: %w", dbPath, err)
	}

	limited := schttp.NewRateLimitedTransport(nil, cfg.RequestsPerSecond)
	cache := sqlite.NewCache(m.DB, limited, sqlite.WithExpireAfter(cfg.CacheExpireAfter))
	m.Cache = cache
	m.Fetcher = schttp.NewFetcher(
		schttp.WithTimeout(cfg.Timeout),
		schttp.WithTransport(cache),
		schttp.WithEncoding(cfg.Encoding),
	)
	return nil
}

func (m *Main) now() time.Time {
	if m.Now == nil {
		return time.Now()
	}
	return m.Now()
}

func newLogger(cfg *docscrape.Config, dir string, stream io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := scslog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return scslog.NewLogger(scslog.LoggerConfig{
		Path:       filepath.Join(dir, "logs", "parser.log"),
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		Level:      level,
		Stream:     stream,
	})
}

func modeNames() string {
	modes := docscrape.Modes()
	names := make([]string, len(modes))
	for i, mode := range modes {
		names[i] = string(mode)
	}
	return strings.Join(names, ",")
}
