package anythingllm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

const opUpload = "UploadDocument"

// DocumentUpload is a file to send to the upload endpoint.
type DocumentUpload struct {
	// Filename sent with the form part. Defaults to "document".
	Filename string
	Content  io.Reader
}

// UploadDocument uploads a file to the system documents, then attaches the
// resulting documents to the workspace.
func (c *Client) UploadDocument(ctx context.Context, slug string, doc DocumentUpload) (*IngestResponse, error) {
	return c.ingest(ctx, slug, func(ctx context.Context) (*IngestResponse, error) {
		return c.upload(ctx, doc)
	})
}

// upload posts doc as multipart form data. Only the Authorization header is
// sent; Content-Type carries the multipart boundary.
func (c *Client) upload(ctx context.Context, doc DocumentUpload) (*IngestResponse, error) {
	filename := doc.Filename
	if filename == "" {
		filename = "document"
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create form file: %w", opUpload, err)
	}
	if doc.Content != nil {
		if _, err := io.Copy(part, doc.Content); err != nil {
			return nil, fmt.Errorf("%s: failed to read document content: %w", opUpload, err)
		}
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("%s: failed to finalize form: %w", opUpload, err)
	}

	headers := make(http.Header)
	headers.Set("Authorization", "Bearer "+c.apiKey)
	headers.Set("Content-Type", form.FormDataContentType())

	resp, err := c.send(ctx, opUpload, http.MethodPost, "/document/upload", &buf, headers)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out IngestResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%s: failed to decode response: %w", opUpload, err)
	}
	return &out, nil
}

// DocumentList is the set of documents embedded in a workspace.
type DocumentList struct {
	Documents []WorkspaceDocument `json:"documents" yaml:"documents"`
}

// ListDocuments returns the documents embedded in a workspace. The API has
// no endpoint for this, so the workspace details are fetched and their
// document list extracted.
func (c *Client) ListDocuments(ctx context.Context, slug string) (*DocumentList, error) {
	docs, err := c.workspaceDocuments(ctx, "ListDocuments", slug)
	if err != nil {
		return nil, err
	}
	return &DocumentList{Documents: docs}, nil
}

// ListSystemDocuments lists every document known to the instance,
// regardless of workspace.
func (c *Client) ListSystemDocuments(ctx context.Context) (Object, error) {
	return c.getObject(ctx, "ListSystemDocuments", "/documents")
}

// DeleteDocument removes a document from a workspace. name may be the
// document's docId, its filename, its full docpath, or a fragment of the
// docpath. When no embedded document matches, name is used as the path.
func (c *Client) DeleteDocument(ctx context.Context, slug, name string) (Object, error) {
	const op = "DeleteDocument"

	docs, err := c.workspaceDocuments(ctx, op, slug)
	if err != nil {
		return nil, err
	}

	path := name
	if doc := matchDocument(docs, name); doc != nil {
		path = doc.Docpath
	}

	return c.postObject(ctx, op, workspacePath(slug, "/update-embeddings"),
		detachRequest{Deletes: []string{path}})
}

// matchDocument returns the first document whose docId, filename or docpath
// equals name, or whose docpath contains it.
func matchDocument(docs []WorkspaceDocument, name string) *WorkspaceDocument {
	for i := range docs {
		d := &docs[i]
		if d.DocID == name ||
			d.Filename == name ||
			d.Docpath == name ||
			(d.Docpath != "" && strings.Contains(d.Docpath, name)) {
			return d
		}
	}
	return nil
}

// vectorSearchRequest is the body of the vector-search endpoint.
type vectorSearchRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"topK"`
}

const defaultSearchLimit = 10

// SearchWorkspace runs a vector similarity search in the workspace. A limit
// of zero means 10.
func (c *Client) SearchWorkspace(ctx context.Context, slug, query string, limit int) (Object, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	return c.postObject(ctx, "SearchWorkspace", workspacePath(slug, "/vector-search"),
		vectorSearchRequest{Query: query, TopK: limit})
}

// GetDocumentVectors approximates a per-document vector listing with a
// broad search over the workspace. The API does not expose vectors for a
// single document, so documentID is not sent.
func (c *Client) GetDocumentVectors(ctx context.Context, slug, documentID string) (Object, error) {
	c.logger.Debug("document vectors are approximated by a workspace search",
		"workspace", slug,
		"document", documentID,
	)
	return c.postObject(ctx, "GetDocumentVectors", workspacePath(slug, "/vector-search"),
		vectorSearchRequest{Query: "", TopK: 100})
}
