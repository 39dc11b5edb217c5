package agent

import (
	"context"

	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/anythingllm/internal/cmd/base"
	"github.com/hashicorp-forge/anythingllm/pkg/anythingllm"
)

// Commands returns the agent command and its subcommands. Agents live on
// workspaces, so every agent id is a workspace slug.
func Commands(b *base.Command) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"agent": func() (cli.Command, error) {
			return &base.GroupCommand{
				Summary: "Manage workspace agents",
				Text: `Usage: anythingllm agent <subcommand> [options] [args]

  This command groups subcommands for configuring and invoking agents.
  AnythingLLM configures agents per workspace, so agents are addressed by
  workspace slug.`,
			}, nil
		},
		"agent list": func() (cli.Command, error) {
			return &base.APICommand{
				Command: b,
				Name:    "agent list",
				Summary: "List workspaces that can carry agents",
				Call: func(ctx context.Context, client *anythingllm.Client, _ []string) (interface{}, error) {
					return client.ListAgents(ctx)
				},
			}, nil
		},
		"agent create": func() (cli.Command, error) {
			var cfg anythingllm.AgentConfig
			settings := base.SettingsFlag{}
			return &base.APICommand{
				Command: b,
				Name:    "agent create",
				Summary: "Configure an agent on a workspace",
				Usage:   "<slug>",
				MinArgs: 1,
				MaxArgs: 1,
				SetFlags: func(f *base.FlagSet) {
					f.StringVar(&cfg.Provider, "provider", "", "Agent provider, none when empty.")
					f.StringVar(&cfg.Model, "model", "", "Agent model.")
					settings.AddFlag(f)
				},
				Call: func(ctx context.Context, client *anythingllm.Client, args []string) (interface{}, error) {
					cfg.WorkspaceSlug = args[0]
					cfg.Settings = settings
					return client.CreateAgent(ctx, cfg)
				},
			}, nil
		},
		"agent update": func() (cli.Command, error) {
			updates := base.SettingsFlag{}
			return &base.APICommand{
				Command:  b,
				Name:     "agent update",
				Summary:  "Update an agent",
				Usage:    "<slug>",
				MinArgs:  1,
				MaxArgs:  1,
				SetFlags: updates.AddFlag,
				Call: func(ctx context.Context, client *anythingllm.Client, args []string) (interface{}, error) {
					return client.UpdateAgent(ctx, args[0], updates)
				},
			}, nil
		},
		"agent delete": func() (cli.Command, error) {
			return &base.APICommand{
				Command: b,
				Name:    "agent delete",
				Summary: "Remove the agent from a workspace",
				Usage:   "<slug>",
				MinArgs: 1,
				MaxArgs: 1,
				Call: func(ctx context.Context, client *anythingllm.Client, args []string) (interface{}, error) {
					return client.DeleteAgent(ctx, args[0])
				},
			}, nil
		},
		"agent invoke": func() (cli.Command, error) {
			return &base.APICommand{
				Command: b,
				Name:    "agent invoke",
				Summary: "Send input to a workspace agent",
				Usage:   "<slug> <input>",
				MinArgs: 2,
				MaxArgs: 2,
				Call: func(ctx context.Context, client *anythingllm.Client, args []string) (interface{}, error) {
					return client.InvokeAgent(ctx, args[0], args[1])
				},
			}, nil
		},
	}
}
