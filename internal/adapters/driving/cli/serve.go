package cli

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/sercha-captions/internal/adapters/driving/api"
	"github.com/custodia-labs/sercha-captions/internal/adapters/driving/mcp"
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-captions/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the search API over HTTP",
	Long: `Starts the HTTP search API.

Endpoints:
  GET /healthz
  GET /v1/search?q=&corpus=&version=&limit=
  GET /v1/documents
  GET /v1/documents/{id}
  GET /v1/verses/versions

Use --mcp to also mount the MCP server at /mcp, or --mcp-addr to run it
on its own listener.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the search tool to an MCP client",
	Long: `Exposes the search tool and the document resources over MCP.

Without --port the server speaks JSON-RPC on stdin/stdout, which is what
desktop assistants launch. With --port it serves the streamable HTTP
transport instead:

  sercha-captions mcp serve --port 8081`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from config)")
	serveCmd.Flags().Bool("mcp", false, "mount the MCP server at /mcp")
	serveCmd.Flags().String("mcp-addr", "", "run the MCP server on a separate address")
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")

	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(serveCmd, mcpCmd)
}

// openServices opens the search and library services shared by every front end.
func openServices(ctx context.Context) (driving.SearchService, driving.LibraryService, error) {
	rt, err := requireRuntime()
	if err != nil {
		return nil, nil, err
	}
	search, err := rt.Search(ctx)
	if err != nil {
		return nil, nil, err
	}
	library, err := rt.Library(ctx)
	if err != nil {
		return nil, nil, err
	}
	return search, library, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)
	search, library, err := openServices(ctx)
	if err != nil {
		return err
	}

	addr, _ := cmd.Flags().GetString("addr")
	mountMCP, _ := cmd.Flags().GetBool("mcp")
	mcpAddr, _ := cmd.Flags().GetString("mcp-addr")
	if addr == "" {
		settings, err := app.Settings().Get()
		if err != nil {
			return err
		}
		addr = settings.Server.Addr
	}

	var mcpServer *mcp.Server
	if mountMCP || mcpAddr != "" {
		if mcpServer, err = mcp.NewServer(&mcp.Ports{Search: search, Library: library}); err != nil {
			return err
		}
	}
	extra := map[string]http.Handler{}
	if mountMCP {
		extra["/mcp"] = mcpServer.Handler()
	}
	apiServer, err := api.NewServer(api.Ports{Search: search, Library: library}, extra)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cmd.Printf("Search API listening on http://%s\n", addr)
		return apiServer.Run(gctx, addr)
	})
	if mcpAddr != "" {
		g.Go(func() error {
			cmd.Printf("MCP server listening on http://%s\n", mcpAddr)
			return mcpServer.RunHTTP(gctx, mcpAddr)
		})
	}

	err = g.Wait()
	logger.Info("servers stopped")
	return err
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, _ := cmd.Flags().GetInt("port")
	ctx := commandContext(cmd)
	search, library, err := openServices(ctx)
	if err != nil {
		return err
	}
	server, err := mcp.NewServer(&mcp.Ports{Search: search, Library: library})
	if err != nil {
		return err
	}

	if port <= 0 {
		// stdout carries the protocol; nothing else may be printed there.
		return server.Run(ctx)
	}
	addr := fmt.Sprintf(":%d", port)
	cmd.Printf("MCP server listening on http://localhost%s\n", addr)
	return server.RunHTTP(ctx, addr)
}
