package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	coreconfig "github.com/AzielCF/az-citydata/core/config"
	"github.com/AzielCF/az-citydata/ui/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the city data MCP server",
	Long:  `Exposes weather://, sensor://, socioeconomic:// and city-data:// resources plus an add tool over MCP, on stdio (default) or SSE.`,
	Run:   mcpServer,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().String("transport", "", "MCP transport: stdio or sse")
	mcpCmd.Flags().String("port", "", "Port for the SSE MCP server")
	mcpCmd.Flags().String("host", "", "Host for the SSE MCP server")
}

// newMCPServer registers every resource and tool on a fresh server.
func newMCPServer() *server.MCPServer {
	mcpServer := server.NewMCPServer(
		"city-data-server",
		coreconfig.Global.App.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithRecovery(),
	)

	resourceHandler := mcp.InitMcpResources(weatherUsecase, sensorUsecase, socioeconomicUsecase, cityDataUsecase)
	resourceHandler.AddResources(mcpServer)

	toolHandler := mcp.InitMcpTools(cityDataUsecase)
	toolHandler.AddTools(mcpServer)

	return mcpServer
}

func mcpServer(cmd *cobra.Command, _ []string) {
	cfg := coreconfig.Global
	if v, _ := cmd.Flags().GetString("transport"); v != "" {
		cfg.MCP.Transport = v
	}
	if v, _ := cmd.Flags().GetString("port"); v != "" {
		cfg.MCP.Port = v
	}
	if v, _ := cmd.Flags().GetString("host"); v != "" {
		cfg.MCP.Host = v
	}
	mcpServer := newMCPServer()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logrus.Info("[MCP] Reception of termination signal, shutting down gracefully...")
		StopApp()
		os.Exit(0)
	}()

	switch cfg.MCP.Transport {
	case "sse":
		addr := fmt.Sprintf("%s:%s", cfg.MCP.Host, cfg.MCP.Port)
		sseServer := server.NewSSEServer(
			mcpServer,
			server.WithBaseURL(fmt.Sprintf("http://%s", addr)),
			server.WithKeepAlive(true),
		)
		logrus.WithField("event", "server_started").Infof("[MCP] City data MCP server running on SSE http://%s/sse", addr)
		if err := sseServer.Start(addr); err != nil {
			logrus.Fatalf("Failed to start SSE server: %v", err)
		}
	case "stdio", "":
		// stdout carries the protocol; logrus writes to stderr.
		logrus.WithField("event", "server_started").Info("[MCP] City data MCP server running on stdio")
		if err := server.ServeStdio(mcpServer); err != nil {
			logrus.Fatalf("MCP stdio server stopped: %v", err)
		}
	default:
		logrus.Fatalf("unknown MCP transport %q (want stdio or sse)", cfg.MCP.Transport)
	}
}
