package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aac-tools/aac-mcp-server/pkg/config"
	internalhttp "github.com/aac-tools/aac-mcp-server/pkg/http"
	"github.com/aac-tools/aac-mcp-server/pkg/logging"
	"github.com/aac-tools/aac-mcp-server/pkg/server/mcp"
	"github.com/aac-tools/aac-mcp-server/pkg/version"
)

// IOStreams represents standard input, output, and error streams
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// NewMCPServer creates a new cobra command for the Analytics Cloud MCP Server
func NewMCPServer(streams IOStreams) *cobra.Command {
	cfg := config.DefaultConfig()
	var configPath string

	cmd := &cobra.Command{
		Use:   "aac-mcp-server",
		Short: "Analytics Cloud MCP Server - Model Context Protocol server for the Analytics Cloud platform",
		Long: `Analytics Cloud MCP Server is a Model Context Protocol (MCP) server that
exposes schedule, plan, workspace, dataset, connection and publication
operations of the Analytics Cloud platform as MCP tools.

This server can run in stdio mode for integration with MCP clients or in HTTP mode
for network access.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				fileConfig, err := config.LoadConfig(configPath)
				if err != nil {
					return fmt.Errorf("failed to load config file: %v", err)
				}
				mergeFlagOverrides(cmd, fileConfig, cfg)
				cfg = fileConfig
			}
			return runServer(cfg, streams)
		},
	}

	// Set output streams for the command
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	// Add flags
	cmd.Flags().IntVar(&cfg.Port, "port", cfg.Port, "Port to listen on for HTTP mode (0 for stdio mode)")
	cmd.Flags().IntVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (0-9)")
	cmd.Flags().StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "Analytics Cloud API URL")
	cmd.Flags().StringVar(&cfg.LegacyAPIURL, "legacy-api-url", cfg.LegacyAPIURL, "Analytics Cloud legacy API URL (defaults to the API URL)")
	cmd.Flags().StringVar(&cfg.APIToken, "api-token", cfg.APIToken, "Analytics Cloud API bearer token")
	cmd.Flags().StringVar(&cfg.SSEBaseURL, "sse-base-url", cfg.SSEBaseURL, "Base URL advertised to SSE clients")
	cmd.Flags().BoolVar(&cfg.ReadOnly, "read-only", cfg.ReadOnly, "Run in read-only mode")
	cmd.Flags().StringSliceVar(&cfg.Toolsets, "toolsets", cfg.Toolsets, "Comma-separated list of toolsets to enable")
	cmd.Flags().StringSliceVar(&cfg.EnabledTools, "enabled-tools", cfg.EnabledTools, "Comma-separated list of tools to enable")
	cmd.Flags().StringSliceVar(&cfg.DisabledTools, "disabled-tools", cfg.DisabledTools, "Comma-separated list of tools to disable")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML configuration file")

	// Add version command
	cmd.AddCommand(newVersionCommand(streams))

	return cmd
}

// mergeFlagOverrides copies explicitly set flag values over a file-loaded
// configuration, so command-line flags always win.
func mergeFlagOverrides(cmd *cobra.Command, fileConfig, flagConfig *config.StaticConfig) {
	if cmd.Flags().Changed("port") {
		fileConfig.Port = flagConfig.Port
	}
	if cmd.Flags().Changed("log-level") {
		fileConfig.LogLevel = flagConfig.LogLevel
	}
	if cmd.Flags().Changed("api-url") {
		fileConfig.APIURL = flagConfig.APIURL
	}
	if cmd.Flags().Changed("legacy-api-url") {
		fileConfig.LegacyAPIURL = flagConfig.LegacyAPIURL
	}
	if cmd.Flags().Changed("api-token") {
		fileConfig.APIToken = flagConfig.APIToken
	}
	if cmd.Flags().Changed("sse-base-url") {
		fileConfig.SSEBaseURL = flagConfig.SSEBaseURL
	}
	if cmd.Flags().Changed("read-only") {
		fileConfig.ReadOnly = flagConfig.ReadOnly
	}
	if cmd.Flags().Changed("toolsets") {
		fileConfig.Toolsets = flagConfig.Toolsets
	}
	if cmd.Flags().Changed("enabled-tools") {
		fileConfig.EnabledTools = flagConfig.EnabledTools
	}
	if cmd.Flags().Changed("disabled-tools") {
		fileConfig.DisabledTools = flagConfig.DisabledTools
	}
}

// runServer runs the MCP server with the given configuration
func runServer(cfg *config.StaticConfig, streams IOStreams) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %v", err)
	}

	logging.Initialize(cfg.LogLevel)

	server, err := mcp.NewServer(mcp.Configuration{StaticConfig: cfg})
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %v", err)
	}
	defer server.Close()

	if cfg.Port == 0 {
		// Stdio mode
		fmt.Fprintf(streams.ErrOut, "Starting Analytics Cloud MCP Server in stdio mode\n")
		fmt.Fprintf(streams.ErrOut, "Enabled tools: %v\n", server.GetEnabledTools())
		return server.ServeStdio()
	}

	// HTTP mode
	fmt.Fprintf(streams.ErrOut, "Starting Analytics Cloud MCP Server in HTTP mode on port %d\n", cfg.Port)
	fmt.Fprintf(streams.ErrOut, "Enabled tools: %v\n", server.GetEnabledTools())
	return internalhttp.Serve(context.Background(), server, cfg)
}

// newVersionCommand creates the version command
func newVersionCommand(streams IOStreams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(streams.Out, "%s\n", version.GetVersionInfo())
		},
	}

	// Set output streams for the command
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	return cmd
}
