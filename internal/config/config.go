package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/hashicorp-forge/anythingllm/pkg/anythingllm"
)

const (
	// EnvBaseURL fills anythingllm.base_url when the file leaves it empty.
	EnvBaseURL = "ANYTHINGLLM_BASE_URL"
	// EnvAPIKey fills anythingllm.api_key when the file leaves it empty.
	EnvAPIKey = "ANYTHINGLLM_API_KEY"

	defaultBaseURL  = "http://localhost:3001"
	defaultLogLevel = "info"
)

// Config is the CLI configuration file.
//
// Example configuration (HCL):
//
//	anythingllm {
//	  base_url   = "http://localhost:3001"
//	  api_key    = env("ANYTHINGLLM_API_KEY")
//	  timeout    = "30s"
//	  tls_verify = true
//	}
//
//	log_level = "info"
type Config struct {
	// AnythingLLM configures the API client.
	AnythingLLM *AnythingLLM `hcl:"anythingllm,block" json:"anythingllm"`

	// LogLevel is one of trace, debug, info, warn, error, off.
	LogLevel string `hcl:"log_level,optional" json:"log_level"`
}

// AnythingLLM configures the API client.
type AnythingLLM struct {
	BaseURL   string `hcl:"base_url,optional" json:"base_url"`
	APIKey    string `hcl:"api_key,optional" json:"api_key"`
	Timeout   string `hcl:"timeout,optional" json:"timeout"` // e.g., "30s"; empty means none
	TLSVerify *bool  `hcl:"tls_verify,optional" json:"tls_verify"`
	Trace     bool   `hcl:"trace,optional" json:"trace"`
}

// evalContext exposes env("NAME") to configuration files.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"env": function.New(&function.Spec{
				Params: []function.Parameter{
					{Name: "name", Type: cty.String},
				},
				Type: function.StaticReturnType(cty.String),
				Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
					return cty.StringVal(os.Getenv(args[0].AsString())), nil
				},
			}),
		},
	}
}

// Load reads the configuration from filename on fs. An empty filename
// yields a configuration built from the environment and defaults alone.
// The filename must end in .hcl or .json.
func Load(fs afero.Fs, filename string) (*Config, error) {
	var cfg Config

	if filename != "" {
		exists, err := afero.Exists(fs, filename)
		if err != nil {
			return nil, fmt.Errorf("failed to stat configuration file: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("configuration file not found: %s", filename)
		}

		src, err := afero.ReadFile(fs, filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file: %w", err)
		}

		if err := hclsimple.Decode(filename, src, evalContext(), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	if c.AnythingLLM == nil {
		c.AnythingLLM = &AnythingLLM{}
	}
	if c.AnythingLLM.BaseURL == "" {
		c.AnythingLLM.BaseURL = os.Getenv(EnvBaseURL)
	}
	if c.AnythingLLM.APIKey == "" {
		c.AnythingLLM.APIKey = os.Getenv(EnvAPIKey)
	}
}

func (c *Config) applyDefaults() {
	if c.AnythingLLM.BaseURL == "" {
		c.AnythingLLM.BaseURL = defaultBaseURL
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
}

// Validate checks the parts of the configuration the client does not check
// itself.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.By(logLevel)),
		validation.Field(&c.AnythingLLM, validation.Required),
	)
}

// Validate implements validation.Validatable for the anythingllm block.
func (a *AnythingLLM) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.APIKey, validation.Required.Error(
			fmt.Sprintf("cannot be blank (set api_key or %s)", EnvAPIKey))),
		validation.Field(&a.Timeout, validation.By(duration)),
	)
}

func logLevel(value interface{}) error {
	s, _ := value.(string)
	if hclog.LevelFromString(s) == hclog.NoLevel {
		return fmt.Errorf("unknown log level %q", s)
	}
	return nil
}

func duration(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration: %w", err)
	}
	if d < 0 {
		return fmt.Errorf("must not be negative, got: %v", d)
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() hclog.Level {
	return hclog.LevelFromString(strings.TrimSpace(c.LogLevel))
}

// ClientConfig converts the anythingllm block into a client configuration.
func (c *Config) ClientConfig(logger hclog.Logger) (anythingllm.Config, error) {
	a := c.AnythingLLM

	var timeout time.Duration
	if a.Timeout != "" {
		d, err := time.ParseDuration(a.Timeout)
		if err != nil {
			return anythingllm.Config{}, fmt.Errorf("invalid timeout: %w", err)
		}
		timeout = d
	}

	return anythingllm.Config{
		BaseURL:   a.BaseURL,
		APIKey:    a.APIKey,
		Timeout:   timeout,
		TLSVerify: a.TLSVerify,
		Trace:     a.Trace,
		Logger:    logger,
	}, nil
}
