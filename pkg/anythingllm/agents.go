package anythingllm

import (
	"context"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// ===================================================================
// Agents
// ===================================================================
// AnythingLLM has no standalone agents. An agent is a workspace with an
// agent provider configured, so an agent id is a workspace slug.

const agentsMessage = "Agents are configured per-workspace in AnythingLLM"

// AgentList is returned by ListAgents.
type AgentList struct {
	Message    string `json:"message" yaml:"message"`
	Workspaces Object `json:"workspaces" yaml:"workspaces"`
}

// AgentConfig describes an agent to create on a workspace.
type AgentConfig struct {
	WorkspaceSlug string `mapstructure:"workspaceSlug,omitempty"`
	Provider      string `mapstructure:"provider,omitempty"`
	Model         string `mapstructure:"model,omitempty"`

	// Settings are additional workspace settings sent with the agent
	// fields. They override any field of the same name.
	Settings map[string]any `mapstructure:"-"`
}

// body flattens the config into the workspace update payload.
func (a AgentConfig) body() (map[string]any, error) {
	provider := a.Provider
	if provider == "" {
		provider = "none"
	}

	body := map[string]any{"agentProvider": provider}
	if a.Model != "" {
		body["agentModel"] = a.Model
	}

	var fields map[string]any
	if err := mapstructure.Decode(a, &fields); err != nil {
		return nil, fmt.Errorf("failed to encode agent config: %w", err)
	}
	merge(body, fields)
	merge(body, a.Settings)

	return body, nil
}

// ListAgents lists workspaces, each of which may carry an agent.
func (c *Client) ListAgents(ctx context.Context) (*AgentList, error) {
	workspaces, err := c.ListWorkspaces(ctx)
	if err != nil {
		return nil, err
	}
	return &AgentList{
		Message:    agentsMessage,
		Workspaces: workspaces,
	}, nil
}

// CreateAgent configures an agent on cfg.WorkspaceSlug. It fails with
// ErrWorkspaceRequired before any request when the slug is empty.
func (c *Client) CreateAgent(ctx context.Context, cfg AgentConfig) (Object, error) {
	if cfg.WorkspaceSlug == "" {
		return nil, ErrWorkspaceRequired
	}

	body, err := cfg.body()
	if err != nil {
		return nil, err
	}
	return c.postObject(ctx, "CreateAgent", workspacePath(cfg.WorkspaceSlug, "/update"), body)
}

// UpdateAgent posts updates to the agent's workspace.
func (c *Client) UpdateAgent(ctx context.Context, agentID string, updates map[string]any) (Object, error) {
	return c.postObject(ctx, "UpdateAgent", workspacePath(agentID, "/update"), updates)
}

// DeleteAgent disables the agent on its workspace.
func (c *Client) DeleteAgent(ctx context.Context, agentID string) (Object, error) {
	return c.postObject(ctx, "DeleteAgent", workspacePath(agentID, "/update"), map[string]string{
		"agentProvider": "none",
	})
}

// InvokeAgent sends input to the agent's workspace chat.
func (c *Client) InvokeAgent(ctx context.Context, agentID, input string) (Object, error) {
	req := struct {
		chatRequest
		Attachments []string `json:"attachments"`
	}{
		chatRequest: newChatRequest(input, DefaultChatMode),
		Attachments: []string{},
	}
	return c.postObject(ctx, "InvokeAgent", workspacePath(agentID, "/chat"), req)
}
