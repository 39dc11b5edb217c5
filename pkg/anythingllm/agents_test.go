package anythingllm

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAgent_RequiresWorkspace(t *testing.T) {
	c := failOnRequest(t)

	res, err := c.CreateAgent(context.Background(), AgentConfig{Provider: "openai"})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, ErrWorkspaceRequired))
}

func TestCreateAgent_Body(t *testing.T) {
	tests := []struct {
		name     string
		config   AgentConfig
		expected map[string]any
	}{
		{
			name:   "defaults provider to none",
			config: AgentConfig{WorkspaceSlug: "docs"},
			expected: map[string]any{
				"agentProvider": "none",
				"workspaceSlug": "docs",
			},
		},
		{
			name:   "provider and model",
			config: AgentConfig{WorkspaceSlug: "docs", Provider: "openai", Model: "gpt-4o"},
			expected: map[string]any{
				"agentProvider": "openai",
				"agentModel":    "gpt-4o",
				"workspaceSlug": "docs",
				"provider":      "openai",
				"model":         "gpt-4o",
			},
		},
		{
			name: "settings override",
			config: AgentConfig{
				WorkspaceSlug: "docs",
				Provider:      "openai",
				Settings: map[string]any{
					"agentProvider": "anthropic",
					"openAiTemp":    0.2,
				},
			},
			expected: map[string]any{
				"agentProvider": "anthropic",
				"workspaceSlug": "docs",
				"provider":      "openai",
				"openAiTemp":    0.2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newFakeServer(t, map[string]http.HandlerFunc{
				"POST /api/v1/workspace/docs/update": jsonResponse(http.StatusOK, map[string]any{"workspace": map[string]any{}}),
			})

			_, err := fs.client(t).CreateAgent(context.Background(), tt.config)
			require.NoError(t, err)

			reqs := fs.requests()
			require.Len(t, reqs, 1)
			assert.Equal(t, tt.expected, reqs[0].decode(t))
		})
	}
}

func TestAgentOperations(t *testing.T) {
	fs := newFakeServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/workspaces":              jsonResponse(http.StatusOK, map[string]any{"workspaces": []any{map[string]any{"slug": "docs"}}}),
		"POST /api/v1/workspace/docs/update": jsonResponse(http.StatusOK, map[string]any{}),
		"POST /api/v1/workspace/docs/chat":   jsonResponse(http.StatusOK, map[string]any{"textResponse": "done"}),
	})
	c := fs.client(t)
	ctx := context.Background()

	agents, err := c.ListAgents(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Agents are configured per-workspace in AnythingLLM", agents.Message)
	assert.Contains(t, agents.Workspaces, "workspaces")

	_, err = c.UpdateAgent(ctx, "docs", map[string]any{"agentModel": "llama3"})
	require.NoError(t, err)

	_, err = c.DeleteAgent(ctx, "docs")
	require.NoError(t, err)

	res, err := c.InvokeAgent(ctx, "docs", "@agent summarize")
	require.NoError(t, err)
	assert.Equal(t, "done", res["textResponse"])

	reqs := fs.requests()
	require.Len(t, reqs, 4)
	assert.Equal(t, map[string]any{"agentModel": "llama3"}, reqs[1].decode(t))
	assert.Equal(t, map[string]any{"agentProvider": "none"}, reqs[2].decode(t))
	assert.Equal(t, map[string]any{
		"message":     "@agent summarize",
		"mode":        "chat",
		"attachments": []any{},
	}, reqs[3].decode(t))
}
