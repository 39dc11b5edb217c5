package config

import (
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, fs afero.Fs, name, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o600))
}

func TestLoad(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		t.Setenv("TEST_ANYTHINGLLM_KEY", "from-env-func")

		fs := afero.NewMemMapFs()
		writeFile(t, fs, "/etc/anythingllm.hcl", `
anythingllm {
  base_url   = "https://llm.example.com/"
  api_key    = env("TEST_ANYTHINGLLM_KEY")
  timeout    = "45s"
  tls_verify = false
  trace      = true
}

log_level = "debug"
`)

		cfg, err := Load(fs, "/etc/anythingllm.hcl")
		require.NoError(t, err)
		assert.Equal(t, "https://llm.example.com/", cfg.AnythingLLM.BaseURL)
		assert.Equal(t, "from-env-func", cfg.AnythingLLM.APIKey)
		assert.Equal(t, hclog.Debug, cfg.Level())

		clientCfg, err := cfg.ClientConfig(hclog.NewNullLogger())
		require.NoError(t, err)
		assert.Equal(t, 45*time.Second, clientCfg.Timeout)
		require.NotNil(t, clientCfg.TLSVerify)
		assert.False(t, *clientCfg.TLSVerify)
		assert.True(t, clientCfg.Trace)
		assert.NoError(t, clientCfg.Validate())
	})

	t.Run("environment only", func(t *testing.T) {
		t.Setenv(EnvBaseURL, "http://anythingllm:3001")
		t.Setenv(EnvAPIKey, "env-key")

		cfg, err := Load(afero.NewMemMapFs(), "")
		require.NoError(t, err)
		assert.Equal(t, "http://anythingllm:3001", cfg.AnythingLLM.BaseURL)
		assert.Equal(t, "env-key", cfg.AnythingLLM.APIKey)
		assert.Equal(t, hclog.Info, cfg.Level())

		clientCfg, err := cfg.ClientConfig(nil)
		require.NoError(t, err)
		assert.Zero(t, clientCfg.Timeout)
		assert.Nil(t, clientCfg.TLSVerify)
	})

	t.Run("file values win over environment", func(t *testing.T) {
		t.Setenv(EnvAPIKey, "env-key")

		fs := afero.NewMemMapFs()
		writeFile(t, fs, "cfg.hcl", `
anythingllm {
  api_key = "file-key"
}
`)

		cfg, err := Load(fs, "cfg.hcl")
		require.NoError(t, err)
		assert.Equal(t, "file-key", cfg.AnythingLLM.APIKey)
		assert.Equal(t, defaultBaseURL, cfg.AnythingLLM.BaseURL)
	})

	t.Run("missing api key", func(t *testing.T) {
		t.Setenv(EnvAPIKey, "")

		_, err := Load(afero.NewMemMapFs(), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "api_key")
		assert.Contains(t, err.Error(), EnvAPIKey)
	})

	t.Run("invalid timeout and log level reported together", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFile(t, fs, "cfg.hcl", `
anythingllm {
  api_key = "k"
  timeout = "soon"
}
log_level = "loud"
`)

		_, err := Load(fs, "cfg.hcl")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid duration")
		assert.Contains(t, err.Error(), "unknown log level")
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := Load(afero.NewMemMapFs(), "/nonexistent/config.hcl")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration file not found")
	})

	t.Run("invalid HCL", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFile(t, fs, "bad.hcl", `anythingllm {`)

		_, err := Load(fs, "bad.hcl")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse configuration file")
	})
}
