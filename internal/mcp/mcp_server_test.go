package mcp_test

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbaettig/gitpulse/internal/contract"
	mcp_internal "github.com/pbaettig/gitpulse/internal/mcp"
)

func TestMCPServerTools(t *testing.T) {
	baseCfg := &contract.Config{
		RepoPath:             ".",
		HeatDecayDays:        contract.DefaultHeatDecayDays,
		HeatFrequencyWeight:  contract.DefaultHeatFrequencyWeight,
		HeatRecencyWeight:    contract.DefaultHeatRecencyWeight,
		MaxFilesDisplayed:    contract.DefaultMaxFilesDisplayed,
		HourlyThresholdHours: contract.DefaultHourlyThresholdHours,
	}

	var mgr contract.CacheManager
	s := mcp_internal.NewMCPServer(baseCfg, mgr, nil)

	for _, name := range []string{"get_contributor_stats", "get_file_heat", "get_commit_awards", "get_cache_status"} {
		tool := s.GetTool(name)
		require.NotNil(t, tool, "Tool %s should exist", name)
	}

	t.Run("get_cache_status without caching", func(t *testing.T) {
		tool := s.GetTool("get_cache_status")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{Name: "get_cache_status"},
		}
		res, err := tool.Handler(context.Background(), req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "caching is disabled")
	})
}
