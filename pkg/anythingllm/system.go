package anythingllm

import "context"

// GetSystemInfo returns the instance's environment dump.
func (c *Client) GetSystemInfo(ctx context.Context) (Object, error) {
	return c.getObject(ctx, "GetSystemInfo", "/system/env-dump")
}

// GetSystemStats returns the total vector count of the instance.
func (c *Client) GetSystemStats(ctx context.Context) (Object, error) {
	return c.getObject(ctx, "GetSystemStats", "/system/system-vectors")
}

// ListLLMProviders returns the system preferences, which hold the current
// LLM provider configuration. There is no dedicated endpoint.
func (c *Client) ListLLMProviders(ctx context.Context) (Object, error) {
	return c.getObject(ctx, "ListLLMProviders", "/admin/system-preferences")
}

// UpdateLLMProvider sets LLMProvider to provider along with any other
// preferences in config. Keys in config take precedence.
func (c *Client) UpdateLLMProvider(ctx context.Context, provider string, config map[string]any) (Object, error) {
	body := map[string]any{"LLMProvider": provider}
	merge(body, config)
	return c.postObject(ctx, "UpdateLLMProvider", "/admin/system-preferences", body)
}

// GetVectorDatabaseInfo returns the system preferences, which hold the
// vector database configuration.
func (c *Client) GetVectorDatabaseInfo(ctx context.Context) (Object, error) {
	return c.getObject(ctx, "GetVectorDatabaseInfo", "/admin/system-preferences")
}

// UpdateVectorDatabase sets VectorDB from config["provider"] along with the
// rest of config.
func (c *Client) UpdateVectorDatabase(ctx context.Context, config map[string]any) (Object, error) {
	body := map[string]any{}
	if provider, ok := config["provider"]; ok {
		body["VectorDB"] = provider
	}
	merge(body, config)
	return c.postObject(ctx, "UpdateVectorDatabase", "/admin/system-preferences", body)
}

// merge copies src into dst, overwriting existing keys.
func merge(dst, src map[string]any) {
	for k, v := range src {
		dst[k] = v
	}
}
