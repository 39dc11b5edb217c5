package base

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"reflect"
	"strings"

	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/anythingllm/pkg/anythingllm"
)

// CallFunc performs a command's API call. A non-nil result is printed even
// when err is also non-nil, so batch commands can report partial success.
type CallFunc func(ctx context.Context, client *anythingllm.Client, args []string) (interface{}, error)

// APICommand is a command that makes one client call and prints the result.
type APICommand struct {
	*Command

	Name     string // e.g. "workspace list"
	Summary  string
	Usage    string // argument synopsis, e.g. "<slug>"
	Details  string
	MinArgs  int
	MaxArgs  int // negative means unbounded
	SetFlags func(f *FlagSet)
	Call     CallFunc

	opts ClientOptions
}

func (c *APICommand) Synopsis() string {
	return c.Summary
}

func (c *APICommand) Help() string {
	help := fmt.Sprintf("Usage: anythingllm %s [options] %s", c.Name, c.Usage)
	if c.Details != "" {
		help += "\n\n  " + strings.ReplaceAll(strings.TrimSpace(c.Details), "\n", "\n  ")
	}
	return help + c.Flags().Help()
}

func (c *APICommand) Flags() *FlagSet {
	f := NewFlagSet(flag.NewFlagSet(c.Name, flag.ContinueOnError))
	c.opts.AddFlags(f)
	if c.SetFlags != nil {
		c.SetFlags(f)
	}
	return f
}

func (c *APICommand) Run(args []string) int {
	ui := c.UI

	// Parse flags.
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	// Validate arguments.
	args = flags.Args()
	if len(args) < c.MinArgs || (c.MaxArgs >= 0 && len(args) > c.MaxArgs) {
		ui.Error(fmt.Sprintf("unexpected arguments, usage: anythingllm %s %s", c.Name, c.Usage))
		return 1
	}

	client, err := c.NewClient(c.opts)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	result, callErr := c.Call(ctx, client, args)
	if !isNil(result) {
		if err := c.Output(c.opts.Format, result); err != nil {
			ui.Error(err.Error())
			return 1
		}
	}
	if callErr != nil {
		ui.Error(fmt.Sprintf("error: %v", callErr))
		return 1
	}

	return 0
}

// isNil reports whether v is nil or a nil pointer or map.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

// GroupCommand is a command that only groups subcommands.
type GroupCommand struct {
	Summary string
	Text    string
}

func (c *GroupCommand) Synopsis() string {
	return c.Summary
}

func (c *GroupCommand) Help() string {
	return c.Text
}

func (c *GroupCommand) Run(args []string) int {
	return cli.RunResultHelp
}
