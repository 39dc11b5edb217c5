package workspace

import (
	"context"

	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/anythingllm/internal/cmd/base"
	"github.com/hashicorp-forge/anythingllm/pkg/anythingllm"
)

// Commands returns the workspace command and its subcommands.
func Commands(b *base.Command) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"workspace": func() (cli.Command, error) {
			return &base.GroupCommand{
				Summary: "Manage workspaces",
				Text: `Usage: anythingllm workspace <subcommand> [options] [args]

  This command groups subcommands for managing AnythingLLM workspaces.`,
			}, nil
		},
		"workspace list": func() (cli.Command, error) {
			return &base.APICommand{
				Command: b,
				Name:    "workspace list",
				Summary: "List workspaces",
				Call: func(ctx context.Context, client *anythingllm.Client, _ []string) (interface{}, error) {
					return client.ListWorkspaces(ctx)
				},
			}, nil
		},
		"workspace get": func() (cli.Command, error) {
			return &base.APICommand{
				Command: b,
				Name:    "workspace get",
				Summary: "Show a workspace",
				Usage:   "<slug>",
				MinArgs: 1,
				MaxArgs: 1,
				Call: func(ctx context.Context, client *anythingllm.Client, args []string) (interface{}, error) {
					return client.GetWorkspace(ctx, args[0])
				},
			}, nil
		},
		"workspace create": func() (cli.Command, error) {
			return &base.APICommand{
				Command: b,
				Name:    "workspace create",
				Summary: "Create a workspace",
				Usage:   "<name>",
				MinArgs: 1,
				MaxArgs: 1,
				Call: func(ctx context.Context, client *anythingllm.Client, args []string) (interface{}, error) {
					return client.CreateWorkspace(ctx, args[0])
				},
			}, nil
		},
		"workspace update": func() (cli.Command, error) {
			updates := base.SettingsFlag{}
			return &base.APICommand{
				Command:  b,
				Name:     "workspace update",
				Summary:  "Update a workspace",
				Usage:    "<slug>",
				Details:  "Fields are given as repeated -set key=value flags.",
				MinArgs:  1,
				MaxArgs:  1,
				SetFlags: updates.AddFlag,
				Call: func(ctx context.Context, client *anythingllm.Client, args []string) (interface{}, error) {
					return client.UpdateWorkspace(ctx, args[0], updates)
				},
			}, nil
		},
		"workspace delete": func() (cli.Command, error) {
			return &base.APICommand{
				Command: b,
				Name:    "workspace delete",
				Summary: "Delete one or more workspaces",
				Usage:   "<slug>...",
				MinArgs: 1,
				MaxArgs: -1,
				Call:    deleteWorkspaces,
			}, nil
		},
		"workspace settings": func() (cli.Command, error) {
			settings := base.SettingsFlag{}
			return &base.APICommand{
				Command: b,
				Name:    "workspace settings",
				Summary: "Show or update workspace settings",
				Usage:   "<slug>",
				Details: `Without -set the current settings are shown. Each -set key=value
is converted to the API's camelCase key, so -set chat_mode=query
updates chatMode.`,
				MinArgs:  1,
				MaxArgs:  1,
				SetFlags: settings.AddFlag,
				Call: func(ctx context.Context, client *anythingllm.Client, args []string) (interface{}, error) {
					if len(settings) == 0 {
						return client.GetWorkspaceSettings(ctx, args[0])
					}
					return client.UpdateWorkspaceSettings(ctx, args[0], settings)
				},
			}, nil
		},
	}
}

func deleteWorkspaces(ctx context.Context, client *anythingllm.Client, slugs []string) (interface{}, error) {
	var result *multierror.Error
	deleted := map[string]*anythingllm.DeleteResult{}
	for _, slug := range slugs {
		res, err := client.DeleteWorkspace(ctx, slug)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		deleted[slug] = res
	}
	return deleted, result.ErrorOrNil()
}
