package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Default values
	DefaultFormat      = "md"
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB
)

// Config holds all configuration for the highlight extractor
type Config struct {
	// Extraction configuration
	InputPath  string
	Format     string
	OutputPath string

	// Serve mode exposes the collector as an MCP stdio server instead of
	// running a one-shot extraction.
	Serve bool

	// Application configuration
	Version     string
	ServerName  string
	LogLevel    string
	MaxFileSize int64 // Maximum PDF file size in bytes
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Format:      DefaultFormat,
		Version:     "1.0.0",
		ServerName:  "pdf-highlights",
		LogLevel:    DefaultLogLevel,
		MaxFileSize: DefaultMaxFileSize,
	}
}

// LoadFromFlags parses command line flags and returns a configuration
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	// The input document is the single positional argument.
	cfg.InputPath = pflag.Arg(0)
	if cfg.InputPath != "" {
		if expandedPath, err := filepath.Abs(cfg.InputPath); err == nil {
			cfg.InputPath = expandedPath
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	// Set environment variable prefix
	viper.SetEnvPrefix("PDF_HIGHLIGHTS")
	viper.AutomaticEnv()

	viper.SetDefault("format", cfg.Format)
	viper.SetDefault("output", cfg.OutputPath)
	viper.SetDefault("serve", cfg.Serve)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.StringP("format", "f", cfg.Format, "Output format: md (markdown), txt (plain text), or docx (Word document)")
	pflag.StringP("output", "o", cfg.OutputPath, "Output file path (defaults to the PDF name with a _highlights suffix)")
	pflag.Bool("serve", cfg.Serve, "Run as an MCP stdio server instead of a one-shot extraction")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum PDF file size in bytes")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	_ = viper.BindPFlag("format", pflag.Lookup("format"))
	_ = viper.BindPFlag("output", pflag.Lookup("output"))
	_ = viper.BindPFlag("serve", pflag.Lookup("serve"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <input.pdf> [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nPDF Highlights - Extract highlighted text from PDF files\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s document.pdf                       # markdown next to the input\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s document.pdf -f txt -o notes.txt   # plain text at an explicit path\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s document.pdf -f docx               # Word document\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --serve                            # MCP stdio server\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  PDF_HIGHLIGHTS_FORMAT       Output format\n")
		fmt.Fprintf(os.Stderr, "  PDF_HIGHLIGHTS_OUTPUT       Output file path\n")
		fmt.Fprintf(os.Stderr, "  PDF_HIGHLIGHTS_LOGLEVEL     Log level\n")
		fmt.Fprintf(os.Stderr, "  PDF_HIGHLIGHTS_MAXFILESIZE  Maximum file size\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.Format = viper.GetString("format")
	cfg.OutputPath = viper.GetString("output")
	cfg.Serve = viper.GetBool("serve")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
}

// Validate checks if the configuration is valid. The format tag is not
// checked here: render.ParseFormat is the single authority for it, so an
// unsupported tag surfaces as exactly one error kind.
func (c *Config) Validate() error {
	if !c.Serve && c.InputPath == "" {
		return errors.New("input PDF path is required")
	}

	// Validate max file size
	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// IsServeMode returns true if the binary should run as an MCP server
func (c *Config) IsServeMode() bool {
	return c.Serve
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{InputPath: %s, Format: %s, OutputPath: %s, Serve: %t, LogLevel: %s, MaxFileSize: %d}",
		c.InputPath, c.Format, c.OutputPath, c.Serve, c.LogLevel, c.MaxFileSize)
}
