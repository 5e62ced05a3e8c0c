// Package mcp exposes QuickCheck as Model Context Protocol tools over stdio.
package mcp

import (
	"context"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/girste/quickcheck/internal/audit"
	"github.com/girste/quickcheck/internal/config"
	"github.com/girste/quickcheck/internal/output"
	"github.com/girste/quickcheck/internal/sshd"
	"github.com/girste/quickcheck/internal/system"
	"github.com/girste/quickcheck/internal/util"
)

const (
	ToolQuickCheck    = "quickcheck"
	ToolSSHDSettings  = "sshd_settings"
	argSSHDConfigPath = "sshd_config"
)

// Server serves the report tools. Every call runs a fresh, read-only
// inspection; nothing is cached between calls.
type Server struct {
	mcpServer *server.MCPServer
	cfg       *config.Config
	runner    audit.Runner
	logger    *zap.Logger
}

// NewServer creates the MCP server. A nil cfg means defaults.
func NewServer(cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Server{
		mcpServer: server.NewMCPServer("quickcheck", util.Version, server.WithToolCapabilities(false)),
		cfg:       cfg,
		runner:    system.NewExecutor(cfg.CommandTimeout()),
		logger:    util.NewLogger("mcp"),
	}

	s.mcpServer.AddTool(mcpgo.NewTool(ToolQuickCheck,
		mcpgo.WithDescription("Read-only Linux security snapshot: identity, logged-in users, listening ports, key sshd settings and UFW status."),
		mcpgo.WithString(argSSHDConfigPath, mcpgo.Description("Path of the sshd configuration file (default "+cfg.SSHDConfigPath+")")),
	), s.handleQuickCheck)

	s.mcpServer.AddTool(mcpgo.NewTool(ToolSSHDSettings,
		mcpgo.WithDescription("Port, PermitRootLogin and PasswordAuthentication from an sshd configuration file."),
		mcpgo.WithString(argSSHDConfigPath, mcpgo.Description("Path of the sshd configuration file (default "+cfg.SSHDConfigPath+")")),
	), s.handleSSHDSettings)

	return s
}

// Serve blocks serving requests on stdin/stdout.
func (s *Server) Serve() error {
	s.logger.Info("Serving MCP on stdio")
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) sshdPath(req mcpgo.CallToolRequest) string {
	return req.GetString(argSSHDConfigPath, s.cfg.SSHDConfigPath)
}

func (s *Server) handleQuickCheck(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	cfg := *s.cfg
	cfg.SSHDConfigPath = s.sshdPath(req)

	report := audit.NewOrchestrator(s.runner, &cfg).RunAudit(ctx)
	s.logger.Debug("Tool call served", zap.String("tool", ToolQuickCheck), zap.String("run_id", report.RunID.String()))
	return mcpgo.NewToolResultText(output.ToText(report)), nil
}

func (s *Server) handleSSHDSettings(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return mcpgo.NewToolResultText(sshd.ReadSettings(s.sshdPath(req))), nil
}
