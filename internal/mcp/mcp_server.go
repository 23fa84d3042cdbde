// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/pbaettig/gitpulse/internal/contract"
	"github.com/pbaettig/gitpulse/internal/gitio"
)

// NewMCPServer initializes and configures the gitpulse MCP server
// without starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager, admin contract.CacheAdmin) *server.MCPServer {
	s := server.NewMCPServer(
		"Gitpulse Metrics Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  gitio.NewLocalGitClient(),
		mgr:     mgr,
		admin:   admin,
	}

	// --- 1. Tool: get_contributor_stats ---
	s.AddTool(mcp.NewTool("get_contributor_stats",
		mcp.WithDescription("Aggregate commit history into per-contributor totals and average lines changed per commit."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository (defaults to the configured repository).")),
	), h.handleGetContributorStats)

	// --- 2. Tool: get_file_heat ---
	s.AddTool(mcp.NewTool("get_file_heat",
		mcp.WithDescription("Rank files by commit frequency and recency, with top-by-size and top-by-churn views."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of heat records returned.")),
	), h.handleGetFileHeat)

	// --- 3. Tool: get_commit_awards ---
	s.AddTool(mcp.NewTool("get_commit_awards",
		mcp.WithDescription("Rank commits by a single scalar, excluding merge and automated commits."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
		mcp.WithString("kind", mcp.Description("Leaderboard kind. Defaults to all kinds."),
			mcp.Enum("files-touched", "bytes-added", "bytes-removed", "lines-added", "lines-removed")),
	), h.handleGetCommitAwards)

	// --- 4. Tool: get_cache_status ---
	s.AddTool(mcp.NewTool("get_cache_status",
		mcp.WithDescription("Report analysis cache entry count, total size and entry age bounds."),
	), h.handleGetCacheStatus)

	return s
}

// StartMCPServer starts the gitpulse MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager, admin contract.CacheAdmin) error {
	s := NewMCPServer(baseCfg, mgr, admin)
	return server.ServeStdio(s)
}
