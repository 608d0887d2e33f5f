package mcpadapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/civiai/planning-analyzer/internal/core/ports"
)

// Server exposes the compliance engine as MCP tools so that assistant
// runtimes can call it over stdio.
type Server struct {
	analyzeUC ports.DocumentAnalyzer
	submitUC  ports.DocumentSubmitter
	mcpServer *server.MCPServer
}

func NewServer(analyzeUC ports.DocumentAnalyzer, submitUC ports.DocumentSubmitter, version string) *Server {
	s := &Server{
		analyzeUC: analyzeUC,
		submitUC:  submitUC,
		mcpServer: server.NewMCPServer("planning-analyzer", version),
	}

	s.mcpServer.AddTool(
		mcp.NewTool("analyze_document",
			mcp.WithDescription("Analyze planning or zoning document text for requirement compliance"),
			mcp.WithString("text", mcp.Required(), mcp.Description("Full text of the document to analyze")),
		),
		s.analyzeDocument,
	)
	s.mcpServer.AddTool(
		mcp.NewTool("analyze_stored_document",
			mcp.WithDescription("Analyze a previously uploaded document by its storage key"),
			mcp.WithString("storage_key", mcp.Required(), mcp.Description("Storage key returned by the upload endpoint")),
		),
		s.analyzeStored,
	)

	return s
}

func (s *Server) analyzeDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.analyzeUC.Analyze(ctx, text, nil)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analyze document: %v", err)), nil
	}
	return toolResultJSON(result)
}

func (s *Server) analyzeStored(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	storageKey, err := req.RequireString("storage_key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.submitUC.AnalyzeStored(ctx, storageKey)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analyze stored document: %v", err)), nil
	}
	return toolResultJSON(result)
}

func toolResultJSON(payload any) (*mcp.CallToolResult, error) {
	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal tool result: %w", err)
	}
	return mcp.NewToolResultText(string(raw)), nil
}

// ServeStdio blocks serving MCP requests over stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
