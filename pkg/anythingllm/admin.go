package anythingllm

import (
	"context"
	"net/http"
	"net/url"
)

// ===================================================================
// Admin endpoints
// ===================================================================
// These require an admin API key on multi-user instances.

// NewUser is the body for CreateUser.
type NewUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// GetSystemSettings returns the instance's system preferences.
func (c *Client) GetSystemSettings(ctx context.Context) (Object, error) {
	return c.getObject(ctx, "GetSystemSettings", "/admin/system-preferences")
}

// UpdateSystemSettings posts settings to the system preferences.
func (c *Client) UpdateSystemSettings(ctx context.Context, settings map[string]any) (Object, error) {
	return c.postObject(ctx, "UpdateSystemSettings", "/admin/system-preferences", settings)
}

// ListUsers lists all users.
func (c *Client) ListUsers(ctx context.Context) (Object, error) {
	return c.getObject(ctx, "ListUsers", "/admin/users")
}

// CreateUser creates a user.
func (c *Client) CreateUser(ctx context.Context, user NewUser) (Object, error) {
	return c.postObject(ctx, "CreateUser", "/admin/users/new", user)
}

// UpdateUser posts updates for the user with the given id.
func (c *Client) UpdateUser(ctx context.Context, userID string, updates map[string]any) (Object, error) {
	return c.postObject(ctx, "UpdateUser", "/admin/users/"+url.PathEscape(userID), updates)
}

// DeleteUser deletes the user with the given id.
func (c *Client) DeleteUser(ctx context.Context, userID string) (Object, error) {
	var out Object
	if err := c.doJSON(ctx, "DeleteUser", http.MethodDelete,
		"/admin/users/"+url.PathEscape(userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAPIKeys lists the instance API keys.
func (c *Client) ListAPIKeys(ctx context.Context) (Object, error) {
	return c.getObject(ctx, "ListAPIKeys", "/admin/api-keys")
}

// CreateAPIKey generates a new API key.
func (c *Client) CreateAPIKey(ctx context.Context) (Object, error) {
	return c.postObject(ctx, "CreateAPIKey", "/admin/generate-api-key", nil)
}

// DeleteAPIKey deletes the API key with the given id.
func (c *Client) DeleteAPIKey(ctx context.Context, keyID string) (Object, error) {
	var out Object
	if err := c.doJSON(ctx, "DeleteAPIKey", http.MethodDelete,
		"/admin/delete-api-key/"+url.PathEscape(keyID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
