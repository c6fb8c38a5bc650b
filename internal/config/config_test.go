package config

import (
	"os"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Helper function to reset pflag.CommandLine for testing
func resetFlags() {
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	viper.Reset()
}

// Helper function to clear environment variables
func clearEnvVars() {
	os.Unsetenv("PDF_HIGHLIGHTS_FORMAT")
	os.Unsetenv("PDF_HIGHLIGHTS_OUTPUT")
	os.Unsetenv("PDF_HIGHLIGHTS_SERVE")
	os.Unsetenv("PDF_HIGHLIGHTS_LOGLEVEL")
	os.Unsetenv("PDF_HIGHLIGHTS_MAXFILESIZE")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Format != "md" {
		t.Errorf("DefaultConfig() Format = %v, want %v", cfg.Format, "md")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("DefaultConfig() LogLevel = %v, want %v", cfg.LogLevel, "info")
	}
	if cfg.MaxFileSize != DefaultMaxFileSize {
		t.Errorf("DefaultConfig() MaxFileSize = %v, want %v", cfg.MaxFileSize, DefaultMaxFileSize)
	}
	if cfg.Serve {
		t.Errorf("DefaultConfig() Serve = true, want false")
	}
}

func TestLoadFromFlags_WithInputAndFormat(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	resetFlags()
	clearEnvVars()
	os.Args = []string{"pdf-highlights", "--format", "txt", "-o", "notes.txt", "document.pdf"}

	cfg, err := LoadFromFlags()
	if err != nil {
		t.Fatalf("LoadFromFlags() unexpected error: %v", err)
	}

	if cfg.Format != "txt" {
		t.Errorf("LoadFromFlags() Format = %v, want %v", cfg.Format, "txt")
	}
	if cfg.OutputPath != "notes.txt" {
		t.Errorf("LoadFromFlags() OutputPath = %v, want %v", cfg.OutputPath, "notes.txt")
	}
	if cfg.InputPath == "" {
		t.Errorf("LoadFromFlags() InputPath is empty, want absolute path ending in document.pdf")
	}
	if cfg.Serve {
		t.Errorf("LoadFromFlags() Serve = true, want false")
	}
}

func TestLoadFromFlags_MissingInput(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	resetFlags()
	clearEnvVars()
	os.Args = []string{"pdf-highlights"}

	if _, err := LoadFromFlags(); err == nil {
		t.Fatalf("LoadFromFlags() expected error for missing input path")
	}
}

func TestLoadFromFlags_ServeModeNeedsNoInput(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	resetFlags()
	clearEnvVars()
	os.Args = []string{"pdf-highlights", "--serve"}

	cfg, err := LoadFromFlags()
	if err != nil {
		t.Fatalf("LoadFromFlags() unexpected error: %v", err)
	}
	if !cfg.IsServeMode() {
		t.Errorf("IsServeMode() = false, want true")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		expectErr bool
	}{
		{
			name:      "valid",
			mutate:    func(c *Config) { c.InputPath = "document.pdf" },
			expectErr: false,
		},
		{
			name:      "missing input in extract mode",
			mutate:    func(c *Config) {},
			expectErr: true,
		},
		{
			name:      "serve mode without input",
			mutate:    func(c *Config) { c.Serve = true },
			expectErr: false,
		},
		{
			name: "zero max file size",
			mutate: func(c *Config) {
				c.InputPath = "document.pdf"
				c.MaxFileSize = 0
			},
			expectErr: true,
		},
		{
			name: "bad log level",
			mutate: func(c *Config) {
				c.InputPath = "document.pdf"
				c.LogLevel = "verbose"
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.expectErr && err == nil {
				t.Errorf("Validate() expected error but got none")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}
