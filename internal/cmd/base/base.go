package base

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/hashicorp-forge/anythingllm/internal/config"
	"github.com/hashicorp-forge/anythingllm/pkg/anythingllm"
)

// Command holds what every command needs.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	// Fs is used for configuration and document files.
	Fs afero.Fs
}

// NewCommand returns a Command backed by the OS filesystem.
func NewCommand(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{
		Log: log,
		UI:  ui,
		Fs:  afero.NewOsFs(),
	}
}

// ClientOptions are the flags shared by commands that call the API.
type ClientOptions struct {
	ConfigFile string
	Format     string
	LogLevel   string
}

// AddFlags registers the shared flags on f.
func (o *ClientOptions) AddFlags(f *FlagSet) {
	f.StringVar(
		&o.ConfigFile, "config", "",
		"Path to an HCL configuration file. Without one, ANYTHINGLLM_BASE_URL "+
			"and ANYTHINGLLM_API_KEY are used.",
	)
	f.StringVar(
		&o.Format, "format", "json",
		"Output format, json or yaml.",
	)
	f.StringVar(
		&o.LogLevel, "log-level", "",
		"Log level, overriding the configuration file.",
	)
}

// NewClient loads the configuration and builds an API client.
func (c *Command) NewClient(opts ClientOptions) (*anythingllm.Client, error) {
	cfg, err := config.Load(c.Fs, opts.ConfigFile)
	if err != nil {
		return nil, err
	}

	level := cfg.Level()
	if opts.LogLevel != "" {
		level = hclog.LevelFromString(opts.LogLevel)
		if level == hclog.NoLevel {
			return nil, fmt.Errorf("unknown log level %q", opts.LogLevel)
		}
	}
	c.Log.SetLevel(level)

	clientCfg, err := cfg.ClientConfig(c.Log)
	if err != nil {
		return nil, err
	}

	return anythingllm.NewClient(clientCfg)
}

// Output writes v to the UI in the requested format.
func (c *Command) Output(format string, v interface{}) error {
	var (
		out []byte
		err error
	)
	switch format {
	case "", "json":
		out, err = json.MarshalIndent(v, "", "  ")
	case "yaml":
		out, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}

	c.UI.Output(string(out))
	return nil
}
