package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/extrude"
	"github.com/aretw0/extrude/pkg/domain"
	"github.com/aretw0/extrude/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// UnitsURI is the resource listing the unit catalog.
const UnitsURI = "extrude://units"

// GenerateResponse is the structured output of the generate_<unit> tools.
type GenerateResponse struct {
	Result *domain.Result `json:"result" jsonschema_description:"The published result"`
}

// Server wraps the extrude Engine and exposes it as an MCP Server.
type Server struct {
	engine    ports.Engine
	logger    *slog.Logger
	mcpServer *server.MCPServer
	tools     []string
}

// NewServer creates a new MCP Server instance. A nil logger logs nothing.
func NewServer(engine ports.Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		engine:    engine,
		logger:    logger,
		mcpServer: server.NewMCPServer("extrude-mcp", strings.TrimSpace(extrude.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// Tools lists the registered tool names in registration order.
func (s *Server) Tools() []string {
	return append([]string(nil), s.tools...)
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops it when
// ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("shutdown signal received, stopping MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		if err := <-serverErrors; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) addTool(tool mcp.Tool, handler server.ToolHandlerFunc) {
	s.mcpServer.AddTool(tool, handler)
	s.tools = append(s.tools, tool.Name)
}

func (s *Server) registerTools() {
	// TOOL: generate_<unit>, one per unit with its params as numbers.
	for _, u := range s.engine.Units() {
		opts := []mcp.ToolOption{
			mcp.WithDescription(fmt.Sprintf("Generate a %s solid and publish it. %s", u.Name, u.Description)),
			mcp.WithOutputSchema[GenerateResponse](),
		}
		for _, p := range u.Params {
			opts = append(opts, mcp.WithNumber(p.Name,
				mcp.Description(p.Description),
				mcp.DefaultNumber(p.Default),
			))
		}
		unit := u.Name
		s.addTool(mcp.NewTool("generate_"+unit, opts...),
			mcp.NewStructuredToolHandler(func(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (GenerateResponse, error) {
				return s.handleGenerate(ctx, unit, args)
			}),
		)
	}

	// TOOL: get_result
	s.addTool(mcp.NewTool("get_result",
		mcp.WithDescription("Load a published result by ID."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Result ID returned by a generate tool")),
	), s.handleGetResult)

	// TOOL: list_results
	s.addTool(mcp.NewTool("list_results",
		mcp.WithDescription("List the IDs of published results."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ids, err := s.engine.Results(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(ids)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) handleGenerate(ctx context.Context, unit string, args map[string]any) (GenerateResponse, error) {
	result, err := s.engine.Generate(ctx, unit, domain.Context(args))
	if err != nil {
		s.logger.Warn("MCP generate failed", "unit", unit, "error", err)
		return GenerateResponse{}, fmt.Errorf("generate failed: %w", err)
	}
	return GenerateResponse{Result: result}, nil
}

func (s *Server) handleGetResult(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, _ := request.GetArguments()["id"].(string)
	if id == "" {
		return mcp.NewToolResultError("id is required"), nil
	}
	result, err := s.engine.Result(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
	}
	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) registerResources() {
	// EXPOSE: extrude://units
	s.mcpServer.AddResource(mcp.NewResource(UnitsURI, "Unit Catalog",
		mcp.WithMIMEType("application/json"),
	), s.readUnits)
}

func (s *Server) readUnits(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(s.engine.Units())
	if err != nil {
		return nil, fmt.Errorf("failed to encode units: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      UnitsURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
