package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/anythingllm/internal/cmd/base"
	"github.com/hashicorp-forge/anythingllm/pkg/anythingllm"
)

// Commands returns the user command and its subcommands.
func Commands(b *base.Command) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"user": func() (cli.Command, error) {
			return &base.GroupCommand{
				Summary: "Manage users (admin)",
				Text: `Usage: anythingllm user <subcommand> [options] [args]

  This command groups subcommands for managing users. The instance must be
  in multi-user mode and the API key must belong to an admin.`,
			}, nil
		},
		"user list": func() (cli.Command, error) {
			return &base.APICommand{
				Command: b,
				Name:    "user list",
				Summary: "List users",
				Call: func(ctx context.Context, client *anythingllm.Client, _ []string) (interface{}, error) {
					return client.ListUsers(ctx)
				},
			}, nil
		},
		"user create": func() (cli.Command, error) {
			var u anythingllm.NewUser
			return &base.APICommand{
				Command: b,
				Name:    "user create",
				Summary: "Create a user",
				SetFlags: func(f *base.FlagSet) {
					f.StringVar(&u.Username, "username", "", "(Required) Username.")
					f.StringVar(&u.Password, "password", "", "(Required) Password.")
					f.StringVar(&u.Role, "role", "", "Role, one of default, manager or admin.")
				},
				Call: func(ctx context.Context, client *anythingllm.Client, _ []string) (interface{}, error) {
					if u.Username == "" || u.Password == "" {
						return nil, errors.New("username and password flags are required")
					}
					return client.CreateUser(ctx, u)
				},
			}, nil
		},
		"user update": func() (cli.Command, error) {
			updates := base.SettingsFlag{}
			return &base.APICommand{
				Command:  b,
				Name:     "user update",
				Summary:  "Update a user",
				Usage:    "<id>",
				MinArgs:  1,
				MaxArgs:  1,
				SetFlags: updates.AddFlag,
				Call: func(ctx context.Context, client *anythingllm.Client, args []string) (interface{}, error) {
					return client.UpdateUser(ctx, args[0], updates)
				},
			}, nil
		},
		"user delete": func() (cli.Command, error) {
			return &base.APICommand{
				Command: b,
				Name:    "user delete",
				Summary: "Delete one or more users",
				Usage:   "<id>...",
				MinArgs: 1,
				MaxArgs: -1,
				Call: func(ctx context.Context, client *anythingllm.Client, ids []string) (interface{}, error) {
					var result *multierror.Error
					deleted := []string{}
					for _, id := range ids {
						if _, err := client.DeleteUser(ctx, id); err != nil {
							result = multierror.Append(result, fmt.Errorf("user %s: %w", id, err))
							continue
						}
						deleted = append(deleted, id)
					}
					return map[string]any{"deleted": deleted}, result.ErrorOrNil()
				},
			}, nil
		},
	}
}
