package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"

	"github.com/a3tai/pdf-highlights/internal/config"
	"github.com/a3tai/pdf-highlights/internal/mcp"
	"github.com/a3tai/pdf-highlights/internal/pdf"
	"github.com/a3tai/pdf-highlights/internal/render"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging configures logging based on the run mode
func setupLogging(cfg *config.Config) {
	if cfg.IsServeMode() {
		// In serve mode, redirect log output to stderr to avoid interfering with MCP protocol
		log.SetOutput(os.Stderr)
		if !cfg.IsDebug() {
			log.SetOutput(os.NewFile(0, os.DevNull))
		}
	} else {
		log.SetFlags(0)
		log.SetOutput(os.Stderr)
	}
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	// Load configuration from flags first
	cfg, err := config.LoadFromFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	setupLogging(cfg)

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	// Create PDF service
	pdfService := pdf.NewService(cfg.MaxFileSize)

	if cfg.IsServeMode() {
		runServe(cfg, pdfService)
		return
	}

	if err := runExtract(cfg, pdfService); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runExtract performs the one-shot collect-then-render pipeline.
func runExtract(cfg *config.Config, pdfService *pdf.Service) error {
	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	if !strings.HasSuffix(strings.ToLower(cfg.InputPath), ".pdf") {
		log.Printf("Warning: file does not have .pdf extension: %s", cfg.InputPath)
	}

	sourceName := filepath.Base(cfg.InputPath)
	fmt.Printf("Extracting highlights from: %s\n", sourceName)

	result, err := pdfService.ExtractHighlights(pdf.HighlightExtractRequest{Path: cfg.InputPath})
	if err != nil {
		return err
	}

	if result.PassageCount == 0 {
		fmt.Printf("No highlights found in the PDF (%d pages scanned).\n", result.PageCount)
		return nil
	}

	fmt.Printf("Found %d highlight passage(s) on %d of %d pages\n",
		result.PassageCount, len(result.Pages), result.PageCount)

	outputPath := render.OutputPath(cfg.InputPath, cfg.OutputPath, format)
	doc := render.Document{
		SourceName: sourceName,
		Pages:      result.Pages,
	}

	if err := render.NewRenderer().Render(doc, format, outputPath); err != nil {
		return err
	}

	fmt.Printf("Highlights saved to: %s\n", outputPath)
	return nil
}

// runServe runs the MCP stdio server until the transport closes or a
// shutdown signal arrives.
func runServe(cfg *config.Config, pdfService *pdf.Service) {
	server, err := mcp.NewServer(cfg, pdfService)
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- server.Run(ctx)
	}()

	select {
	case sig := <-signalCh:
		log.Printf("Received signal: %s", sig)
		cancel()
	case err := <-serverErrCh:
		if err != nil {
			log.Printf("Server error: %v", err)
			os.Exit(1)
		}
	}
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("PDF Highlights\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
