// Package config provides configuration management for the dxfclean CLI.
//
// Values are merged from four sources with the usual precedence: command
// line flags > DXFCLEAN_* environment variables > dxfclean.yaml > defaults.
package config

// Defaults applied before any other configuration source.
const (
	DefaultOutputDir = "Output"
	DefaultSuffix    = "_cleaned"
	DefaultOutput    = "auto"
)

// Config holds all CLI configuration options.
type Config struct {
	OutputDir    string `koanf:"output_dir"`  // where cleaned files are written
	Suffix       string `koanf:"suffix"`      // appended to the input base name
	ArchiveDir   string `koanf:"archive_dir"` // processed inputs move here; empty disables archiving
	Verbose      bool   `koanf:"verbose"`
	OutputFormat string `koanf:"output"` // auto|text|json
}
