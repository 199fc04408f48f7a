// Package docscrape scrapes a fixed set of documentation sites (the Python
// documentation and the PEP index), extracts tabular facts from their HTML,
// and renders them as text, an aligned table, or a CSV file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package docscrape

// Mode names one of the scraper's operations.
type Mode string

// Supported modes.
const (
	ModeWhatsNew       Mode = "whats-new"
	ModeLatestVersions Mode = "latest-versions"
	ModeDownload       Mode = "download"
	ModePEP            Mode = "pep"
)

// Modes returns all supported modes in display order.
func Modes() []Mode {
	return []Mode{ModeWhatsNew, ModeLatestVersions, ModeDownload, ModePEP}
}

// ParseMode returns the Mode named by s.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", Errorf(EINVALID, "unknown mode %q", s)
}

// OutputFormat selects how a result table is rendered.
type OutputFormat string

// Supported output formats.
const (
	OutputDefault OutputFormat = "default"
	OutputPretty  OutputFormat = "pretty"
	OutputFile    OutputFormat = "file"
)

// ParseOutputFormat returns the OutputFormat named by s.
// An empty string selects OutputDefault.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case "", OutputDefault:
		return OutputDefault, nil
	case OutputPretty, OutputFile:
		return OutputFormat(s), nil
	}
	return "", Errorf(EINVALID, "unknown output format %q", s)
}
