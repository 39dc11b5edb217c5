package apikey

import (
	"context"

	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/anythingllm/internal/cmd/base"
	"github.com/hashicorp-forge/anythingllm/pkg/anythingllm"
)

// Commands returns the api-key command and its subcommands.
func Commands(b *base.Command) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"api-key": func() (cli.Command, error) {
			return &base.GroupCommand{
				Summary: "Manage API keys (admin)",
				Text: `Usage: anythingllm api-key <subcommand> [options] [args]

  This command groups subcommands for managing instance API keys.`,
			}, nil
		},
		"api-key list": func() (cli.Command, error) {
			return &base.APICommand{
				Command: b,
				Name:    "api-key list",
				Summary: "List API keys",
				Call: func(ctx context.Context, client *anythingllm.Client, _ []string) (interface{}, error) {
					return client.ListAPIKeys(ctx)
				},
			}, nil
		},
		"api-key create": func() (cli.Command, error) {
			return &base.APICommand{
				Command: b,
				Name:    "api-key create",
				Summary: "Generate a new API key",
				Call: func(ctx context.Context, client *anythingllm.Client, _ []string) (interface{}, error) {
					return client.CreateAPIKey(ctx)
				},
			}, nil
		},
		"api-key delete": func() (cli.Command, error) {
			return &base.APICommand{
				Command: b,
				Name:    "api-key delete",
				Summary: "Delete an API key",
				Usage:   "<id>",
				MinArgs: 1,
				MaxArgs: 1,
				Call: func(ctx context.Context, client *anythingllm.Client, args []string) (interface{}, error) {
					return client.DeleteAPIKey(ctx, args[0])
				},
			}, nil
		},
	}
}
