package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pbaettig/gitpulse/core"
	"github.com/pbaettig/gitpulse/internal/classify"
	"github.com/pbaettig/gitpulse/internal/contract"
	"github.com/pbaettig/gitpulse/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitClient
	mgr     contract.CacheManager
	admin   contract.CacheAdmin
}

// requestConfig clones the base config with per-request overrides applied.
func (h *toolHandler) requestConfig(request mcp.CallToolRequest) *contract.Config {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPath = p
	}
	return cfg
}

func (h *toolHandler) handleGetContributorStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)

	commits, _, err := core.LoadCommits(ctx, cfg, h.client, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}
	stats, err := core.ContributorStats(commits)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}
	averages := core.AverageLinesChanged(commits, classify.NewMessageClassifier())

	jsonData, _ := json.MarshalIndent(map[string]any{
		"contributors":    stats,
		"lowestAverages":  core.LowestAverages(averages),
		"highestAverages": core.HighestAverages(averages),
	}, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetFileHeat(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.MaxFilesDisplayed = l
	}

	commits, _, err := core.LoadCommits(ctx, cfg, h.client, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}
	files := classify.NewExtensionClassifier()

	jsonData, _ := json.MarshalIndent(map[string]any{
		"fileHeat":   core.FileHeat(commits, cfg, files, time.Now()),
		"topBySize":  core.TopFilesBySize(commits, files),
		"topByChurn": core.TopFilesByChurn(commits, files),
	}, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetCommitAwards(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)

	commits, _, err := core.LoadCommits(ctx, cfg, h.client, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}
	classifier := classify.NewMessageClassifier()

	var payload any
	if kind := request.GetString("kind", ""); kind != "" {
		payload = core.TopCommitsBy(commits, schema.AwardKind(kind), classifier)
	} else {
		payload = core.AllAwards(commits, classifier)
	}

	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetCacheStatus(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.admin == nil {
		return mcp.NewToolResultError("caching is disabled; no status available"), nil
	}
	stats, err := h.admin.Stats()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read cache status: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(stats, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
