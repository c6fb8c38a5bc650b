// Package mcp exposes the highlight collector over the Model Context
// Protocol so editor and assistant clients can pull highlights without
// shelling out to the CLI.
package mcp

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/a3tai/pdf-highlights/internal/config"
	"github.com/a3tai/pdf-highlights/internal/pdf"
	"github.com/a3tai/pdf-highlights/internal/render"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server represents the MCP server instance
type Server struct {
	config     *config.Config
	pdfService *pdf.Service
	mcpServer  *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, pdfService *pdf.Service) (*Server, error) {
	if pdfService == nil {
		return nil, fmt.Errorf("pdfService cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	s := &Server{
		config:     cfg,
		pdfService: pdfService,
		mcpServer:  mcpServer,
	}

	// Register tools
	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	extractHighlightsTool := mcp.NewTool(
		"pdf_extract_highlights",
		mcp.WithDescription("Extract highlighted text from a PDF file, grouped by page"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
		mcp.WithString("format",
			mcp.Description("Response format: md (default) or txt"),
		),
	)
	s.mcpServer.AddTool(extractHighlightsTool, s.handleExtractHighlights)

	validateFileTool := mcp.NewTool(
		"pdf_validate_file",
		mcp.WithDescription("Validate if a file is a readable PDF"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(validateFileTool, s.handleValidateFile)
}

// Handler functions
func (s *Server) handleExtractHighlights(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := request.GetArguments()

	format := render.FormatMarkdown
	if tag, ok := args["format"].(string); ok && tag != "" {
		format, err = render.ParseFormat(tag)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if format == render.FormatDocx {
			return mcp.NewToolResultError("docx is not available over MCP; use md or txt"), nil
		}
	}

	result, err := s.pdfService.ExtractHighlights(pdf.HighlightExtractRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if result.PassageCount == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No highlights found in %s (%d pages scanned)",
			result.Path, result.PageCount)), nil
	}

	doc := render.Document{
		SourceName: filepath.Base(result.Path),
		Pages:      result.Pages,
	}

	var body []byte
	if format == render.FormatText {
		body = render.PlainText(doc)
	} else {
		body = render.Markdown(doc)
	}

	return mcp.NewToolResultText(string(body)), nil
}

func (s *Server) handleValidateFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req := pdf.PDFValidateFileRequest{Path: path}
	result, err := s.pdfService.PDFValidateFile(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if result.Valid {
		return mcp.NewToolResultText(fmt.Sprintf("Valid PDF: %s", result.Path)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Invalid PDF: %s\nReason: %s", result.Path, result.Message)), nil
}

// Run starts the MCP server on stdio and blocks until the transport closes.
func (s *Server) Run(ctx context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting pdf-highlights MCP server in stdio mode")
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}
