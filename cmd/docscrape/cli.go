package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/docscrape"
	"github.com/fwojciec/docscrape/csv"
	"github.com/fwojciec/docscrape/goquery"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Cache   docscrape.Cache
	Scraper *goquery.Scraper
	Results *csv.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Mode       string `arg:"" enum:"${modes}" help:"Parser mode (${modes})"`
	ClearCache bool   `short:"c" help:"Clear the HTTP cache before running"`
	Output     string `short:"o" enum:"default,pretty,file" default:"default" help:"Output format (${enum})"`
	Dir        string `short:"d" env:"DOCSCRAPE_DIR" default:"." help:"Base directory for logs, downloads, results and the HTTP cache"`
	Config     string `help:"YAML config file (default: <dir>/docscrape.yaml)"`
}

// Run clears the cache if asked, runs the selected mode and renders its result.
func (c *CLI) Run(deps *Dependencies) error {
	mode, err := docscrape.ParseMode(c.Mode)
	if err != nil {
		return err
	}
	format, err := docscrape.ParseOutputFormat(c.Output)
	if err != nil {
		return err
	}

	if c.ClearCache {
		if deps.Cache == nil {
			return docscrape.Errorf(docscrape.EINVALID, "no cache configured")
		}
		n, err := deps.Cache.Len(deps.Ctx)
		if err != nil {
			return err
		}
		if err := deps.Cache.Clear(deps.Ctx); err != nil {
			return err
		}
		deps.Logger.Info("cache cleared", "responses", n)
	}

	var result *docscrape.Table
	switch mode {
	case docscrape.ModeWhatsNew:
		result, err = deps.Scraper.WhatsNew(deps.Ctx)
	case docscrape.ModeLatestVersions:
		result, err = deps.Scraper.LatestVersions(deps.Ctx)
	case docscrape.ModeDownload:
		_, err = deps.Scraper.Download(deps.Ctx)
	case docscrape.ModePEP:
		result, err = deps.Scraper.PEP(deps.Ctx)
	default:
		return docscrape.Errorf(docscrape.EINVALID, "unsupported mode %q", mode)
	}
	if err != nil {
		return err
	}

	if result == nil {
		return nil
	}
	deps.Logger.Info("mode finished", "mode", mode, "rows", result.Len())
	return render(deps, mode, format, result)
}
