package anythingllm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DeleteResult is synthesized from the plain-text body the server returns
// for workspace deletion.
type DeleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ListWorkspaces lists all workspaces.
func (c *Client) ListWorkspaces(ctx context.Context) (Object, error) {
	return c.getObject(ctx, "ListWorkspaces", "/workspaces")
}

// GetWorkspace returns the workspace payload exactly as the server sends it.
func (c *Client) GetWorkspace(ctx context.Context, slug string) (Object, error) {
	return c.getObject(ctx, "GetWorkspace", workspacePath(slug, ""))
}

// CreateWorkspace creates a workspace with the given name.
func (c *Client) CreateWorkspace(ctx context.Context, name string) (Object, error) {
	return c.postObject(ctx, "CreateWorkspace", "/workspace/new", map[string]string{
		"name": name,
	})
}

// UpdateWorkspace posts updates to the workspace settings endpoint.
func (c *Client) UpdateWorkspace(ctx context.Context, slug string, updates map[string]any) (Object, error) {
	return c.postObject(ctx, "UpdateWorkspace", workspacePath(slug, "/update"), updates)
}

// DeleteWorkspace deletes a workspace. The server replies with the text
// "OK" rather than JSON.
func (c *Client) DeleteWorkspace(ctx context.Context, slug string) (*DeleteResult, error) {
	const op = "DeleteWorkspace"

	resp, err := c.send(ctx, op, http.MethodDelete, workspacePath(slug, ""), nil, c.headersWith(nil))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read response: %w", op, err)
	}

	return &DeleteResult{
		Success: string(text) == "OK",
		Message: string(text),
	}, nil
}

// GetWorkspaceSettings returns the workspace details, which carry its
// settings.
func (c *Client) GetWorkspaceSettings(ctx context.Context, slug string) (Object, error) {
	return c.getObject(ctx, "GetWorkspaceSettings", workspacePath(slug, ""))
}

// UpdateWorkspaceSettings posts settings to the workspace update endpoint.
func (c *Client) UpdateWorkspaceSettings(ctx context.Context, slug string, settings map[string]any) (Object, error) {
	return c.postObject(ctx, "UpdateWorkspaceSettings", workspacePath(slug, "/update"), settings)
}

// WorkspaceDocument is a document embedded in a workspace.
type WorkspaceDocument struct {
	DocID    string `json:"docId" yaml:"docId"`
	Filename string `json:"filename" yaml:"filename"`
	Docpath  string `json:"docpath" yaml:"docpath"`

	// Fields is the record as returned by the server.
	Fields Object `json:"-" yaml:"-"`
}

type workspaceDocument WorkspaceDocument

func (d *WorkspaceDocument) UnmarshalJSON(data []byte) error {
	return decodeRecord(data, (*workspaceDocument)(d), &d.Fields)
}

func (d WorkspaceDocument) MarshalJSON() ([]byte, error) {
	return json.Marshal(encodedRecord(workspaceDocument(d), d.Fields))
}

func (d WorkspaceDocument) MarshalYAML() (interface{}, error) {
	return encodedRecord(workspaceDocument(d), d.Fields), nil
}

// workspaceData is the subset of the workspace payload the client reads.
type workspaceData struct {
	Documents []WorkspaceDocument `json:"documents"`
}

// workspaceEnvelope decodes {"workspace": ...} where the value is either an
// object or a list of objects depending on the server version.
type workspaceEnvelope struct {
	Workspace json.RawMessage `json:"workspace"`
}

// data returns the workspace object, taking the first element when the
// server wrapped it in a list. It returns nil when there is nothing to read.
func (e *workspaceEnvelope) data() (*workspaceData, error) {
	raw := e.Workspace
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	if raw[0] == '[' {
		var list []workspaceData
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, err
		}
		if len(list) == 0 {
			return nil, nil
		}
		return &list[0], nil
	}

	var ws workspaceData
	if err := json.Unmarshal(raw, &ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

// workspaceDocuments fetches the workspace details and returns the embedded
// document list, which is empty when absent.
func (c *Client) workspaceDocuments(ctx context.Context, op, slug string) ([]WorkspaceDocument, error) {
	var env workspaceEnvelope
	if err := c.doJSON(ctx, op, http.MethodGet, workspacePath(slug, ""), nil, &env); err != nil {
		return nil, err
	}

	ws, err := env.data()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to decode workspace: %w", op, err)
	}
	if ws == nil || ws.Documents == nil {
		return []WorkspaceDocument{}, nil
	}
	return ws.Documents, nil
}
