package main

import (
	"fmt"
	"log"
	"os"

	"github.com/aretw0/extrude/internal/cli"
	"github.com/aretw0/extrude/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the engine as an MCP Server.
Each unit becomes a generate_<unit> tool; get_result and list_results read
published results and extrude://units lists the catalog.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		transport, _ := cmd.Flags().GetString("transport")

		b, cfg, err := openBackend(cmd)
		if err != nil {
			return err
		}
		defer b.Close()

		logger := cli.NewLogger(cfg.Debug)
		srv := mcp.NewServer(b.Engine, logger)

		switch transport {
		case "stdio":
			// Ensure logs don't corrupt JSON-RPC on Stdout
			log.SetOutput(os.Stderr)
			logger.Info("Starting extrude MCP Server (Stdio)...")
			return srv.ServeStdio()
		case "sse":
			ctx := cli.NewSignalContext(cmd.Context())
			defer ctx.Cancel()
			return srv.ServeSSE(ctx, cfg.Port)
		default:
			return fmt.Errorf("unknown transport %q (want stdio or sse)", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().StringP("transport", "t", "stdio", "Transport: stdio or sse")
	mcpCmd.Flags().Int("port", 8080, "Port for the sse transport (EXTRUDE_PORT)")
}
