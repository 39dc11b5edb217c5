package system

import (
	"context"

	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/anythingllm/internal/cmd/base"
	"github.com/hashicorp-forge/anythingllm/pkg/anythingllm"
)

// Commands returns the system command and its subcommands.
func Commands(b *base.Command) map[string]cli.CommandFactory {
	get := func(name, summary string, call func(*anythingllm.Client, context.Context) (anythingllm.Object, error)) cli.CommandFactory {
		return func() (cli.Command, error) {
			return &base.APICommand{
				Command: b,
				Name:    name,
				Summary: summary,
				Call: func(ctx context.Context, client *anythingllm.Client, _ []string) (interface{}, error) {
					return call(client, ctx)
				},
			}, nil
		}
	}

	return map[string]cli.CommandFactory{
		"system": func() (cli.Command, error) {
			return &base.GroupCommand{
				Summary: "Inspect and configure the instance",
				Text: `Usage: anythingllm system <subcommand> [options] [args]

  This command groups subcommands for instance information and system
  preferences, including the LLM provider and vector database.`,
			}, nil
		},
		"system info":      get("system info", "Show the instance environment", (*anythingllm.Client).GetSystemInfo),
		"system stats":     get("system stats", "Show vector statistics", (*anythingllm.Client).GetSystemStats),
		"system settings":  get("system settings", "Show system preferences", (*anythingllm.Client).GetSystemSettings),
		"system llm":       get("system llm", "Show the LLM provider preferences", (*anythingllm.Client).ListLLMProviders),
		"system vector-db": get("system vector-db", "Show the vector database preferences", (*anythingllm.Client).GetVectorDatabaseInfo),
		"system update-settings": func() (cli.Command, error) {
			settings := base.SettingsFlag{}
			return &base.APICommand{
				Command: b,
				Name:    "system update-settings",
				Summary: "Update system preferences",
				Details: `Keys with upper case letters are sent as written, so instance
preferences such as -set LLMProvider=ollama keep their names.`,
				SetFlags: settings.AddFlag,
				Call: func(ctx context.Context, client *anythingllm.Client, _ []string) (interface{}, error) {
					return client.UpdateSystemSettings(ctx, settings)
				},
			}, nil
		},
		"system llm set": func() (cli.Command, error) {
			settings := base.SettingsFlag{}
			return &base.APICommand{
				Command:  b,
				Name:     "system llm set",
				Summary:  "Switch the LLM provider",
				Usage:    "<provider>",
				MinArgs:  1,
				MaxArgs:  1,
				SetFlags: settings.AddFlag,
				Call: func(ctx context.Context, client *anythingllm.Client, args []string) (interface{}, error) {
					return client.UpdateLLMProvider(ctx, args[0], settings)
				},
			}, nil
		},
		"system vector-db set": func() (cli.Command, error) {
			settings := base.SettingsFlag{}
			return &base.APICommand{
				Command: b,
				Name:    "system vector-db set",
				Summary: "Update the vector database preferences",
				Details: "A provider setting, -set provider=qdrant, selects the database.",
				SetFlags: settings.AddFlag,
				Call: func(ctx context.Context, client *anythingllm.Client, _ []string) (interface{}, error) {
					return client.UpdateVectorDatabase(ctx, settings)
				},
			}, nil
		},
	}
}
