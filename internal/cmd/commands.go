package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/anythingllm/internal/cmd/base"
	"github.com/hashicorp-forge/anythingllm/internal/cmd/commands/agent"
	"github.com/hashicorp-forge/anythingllm/internal/cmd/commands/apikey"
	"github.com/hashicorp-forge/anythingllm/internal/cmd/commands/chat"
	"github.com/hashicorp-forge/anythingllm/internal/cmd/commands/document"
	"github.com/hashicorp-forge/anythingllm/internal/cmd/commands/system"
	"github.com/hashicorp-forge/anythingllm/internal/cmd/commands/user"
	"github.com/hashicorp-forge/anythingllm/internal/cmd/commands/workspace"
	"github.com/hashicorp-forge/anythingllm/internal/version"
)

// Commands is the mapping of all available commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	Commands = commands(base.NewCommand(log, ui))
}

func commands(b *base.Command) map[string]cli.CommandFactory {
	all := map[string]cli.CommandFactory{
		"version": func() (cli.Command, error) {
			return &versionCommand{Command: b}, nil
		},
	}

	for _, group := range []func(*base.Command) map[string]cli.CommandFactory{
		workspace.Commands,
		chat.Commands,
		document.Commands,
		user.Commands,
		apikey.Commands,
		system.Commands,
		agent.Commands,
	} {
		for name, factory := range group(b) {
			all[name] = factory
		}
	}

	return all
}

type versionCommand struct {
	*base.Command
}

func (c *versionCommand) Synopsis() string {
	return "Print the version"
}

func (c *versionCommand) Help() string {
	return "Usage: anythingllm version"
}

func (c *versionCommand) Run(args []string) int {
	c.UI.Output(version.Full())
	return 0
}
