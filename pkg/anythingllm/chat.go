package anythingllm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// DefaultChatMode is used when no mode is given.
const DefaultChatMode = "chat"

// chatRequest is the body of the chat endpoints.
type chatRequest struct {
	Message string `json:"message"`
	Mode    string `json:"mode"`
}

func newChatRequest(message, mode string) chatRequest {
	if mode == "" {
		mode = DefaultChatMode
	}
	return chatRequest{Message: message, Mode: mode}
}

// ChatWithWorkspace sends a message to the workspace and returns the full
// response.
func (c *Client) ChatWithWorkspace(ctx context.Context, slug, message, mode string) (Object, error) {
	return c.postObject(ctx, "ChatWithWorkspace", workspacePath(slug, "/chat"),
		newChatRequest(message, mode))
}

// StreamChatWithWorkspace sends a message and returns the response body as
// it arrives. The caller must close it. No buffering or framing is applied;
// see NewChatStreamReader for decoding.
func (c *Client) StreamChatWithWorkspace(ctx context.Context, slug, message, mode string) (io.ReadCloser, error) {
	const op = "StreamChatWithWorkspace"

	body, err := json.Marshal(newChatRequest(message, mode))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to marshal request body: %w", op, err)
	}

	resp, err := c.send(ctx, op, http.MethodPost, workspacePath(slug, "/stream-chat"),
		bytes.NewReader(body), c.headersWith(nil))
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// GetWorkspaceChatHistory returns the workspace's chat log. A positive
// limit is passed to the server as a query parameter.
func (c *Client) GetWorkspaceChatHistory(ctx context.Context, slug string, limit int) (Object, error) {
	path := workspacePath(slug, "/chats")
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	return c.getObject(ctx, "GetWorkspaceChatHistory", path)
}

// ClearWorkspaceChatHistory always fails: the API has no endpoint for it.
// Delete and recreate the workspace instead.
func (c *Client) ClearWorkspaceChatHistory(ctx context.Context, slug string) error {
	return fmt.Errorf(
		"%w: AnythingLLM API v1 does not support clearing chat history. "+
			"Workaround: Delete and recreate the workspace",
		ErrUnsupported)
}
