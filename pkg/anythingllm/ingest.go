package anythingllm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// Document is a record created by one of the ingestion endpoints
// (upload, raw-text, upload-link).
type Document struct {
	// Location is the storage path used to attach the document to a
	// workspace.
	Location string `json:"location" yaml:"location"`

	// Fields is the record as returned by the server, including fields
	// such as title, docSource and pageContent.
	Fields Object `json:"-" yaml:"-"`
}

type document Document

func (d *Document) UnmarshalJSON(data []byte) error {
	return decodeRecord(data, (*document)(d), &d.Fields)
}

func (d Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(encodedRecord(document(d), d.Fields))
}

func (d Document) MarshalYAML() (interface{}, error) {
	return encodedRecord(document(d), d.Fields), nil
}

// IngestResponse is the body returned by the ingestion endpoints.
type IngestResponse struct {
	Success bool `json:"success" yaml:"success"`
	// Error is usually a string or null, but is passed through as sent.
	Error     any        `json:"error" yaml:"error"`
	Documents []Document `json:"documents" yaml:"documents"`

	// Fields is the body as returned by the server.
	Fields Object `json:"-" yaml:"-"`
}

type ingestResponse IngestResponse

func (r *IngestResponse) UnmarshalJSON(data []byte) error {
	return decodeRecord(data, (*ingestResponse)(r), &r.Fields)
}

func (r IngestResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(encodedRecord(ingestResponse(r), r.Fields))
}

func (r IngestResponse) MarshalYAML() (interface{}, error) {
	return encodedRecord(ingestResponse(r), r.Fields), nil
}

// IngestOutcome classifies an ingestion response for the attach step.
type IngestOutcome int

const (
	// IngestFailed means the server did not report success.
	IngestFailed IngestOutcome = iota
	// IngestEmpty means the server reported success without documents.
	IngestEmpty
	// IngestReady means there are documents to attach.
	IngestReady
)

func (o IngestOutcome) String() string {
	switch o {
	case IngestFailed:
		return "failed"
	case IngestEmpty:
		return "empty"
	case IngestReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Outcome returns how the attach step should treat this response.
func (r *IngestResponse) Outcome() IngestOutcome {
	switch {
	case r == nil || !r.Success:
		return IngestFailed
	case len(r.Documents) == 0:
		return IngestEmpty
	default:
		return IngestReady
	}
}

// Locations returns the location path of each document, in order.
func (r *IngestResponse) Locations() []string {
	paths := make([]string, 0, len(r.Documents))
	for _, doc := range r.Documents {
		paths = append(paths, doc.Location)
	}
	return paths
}

// attachRequest and detachRequest are the bodies of the update-embeddings
// endpoint.
type attachRequest struct {
	Adds []string `json:"adds"`
}

type detachRequest struct {
	Deletes []string `json:"deletes"`
}

// AddDocumentsToWorkspace attaches already ingested documents to a
// workspace by their location paths.
func (c *Client) AddDocumentsToWorkspace(ctx context.Context, slug string, paths []string) (Object, error) {
	if paths == nil {
		paths = []string{}
	}
	return c.postObject(ctx, "AddDocumentsToWorkspace", workspacePath(slug, "/update-embeddings"),
		attachRequest{Adds: paths})
}

// ingest runs step one of an ingestion workflow and, when it produced
// documents, attaches them to the workspace. The step-one response is
// returned unchanged. Errors from either step are returned as is.
func (c *Client) ingest(
	ctx context.Context,
	slug string,
	create func(ctx context.Context) (*IngestResponse, error),
) (*IngestResponse, error) {
	logger := c.logger.With(
		"workflow_id", uuid.NewString(),
		"workspace", slug,
	)

	resp, err := create(ctx)
	if err != nil {
		return nil, err
	}

	switch outcome := resp.Outcome(); outcome {
	case IngestReady:
		paths := resp.Locations()
		if _, err := c.AddDocumentsToWorkspace(ctx, slug, paths); err != nil {
			return nil, err
		}
		logger.Info("attached documents to workspace", "documents", len(paths))
	case IngestFailed, IngestEmpty:
		logger.Debug("skipping attach step", "outcome", outcome.String())
	}

	return resp, nil
}

// rawTextRequest is the body of the raw-text endpoint.
type rawTextRequest struct {
	TextContent string          `json:"textContent"`
	Metadata    rawTextMetadata `json:"metadata"`
}

type rawTextMetadata struct {
	Title     string `json:"title"`
	DocSource string `json:"docSource"`
}

// embeddedDocSource marks documents created by EmbedTextInWorkspace.
const embeddedDocSource = "mcp-embedded"

// EmbedTextResult collects the per-text ingestion responses, in input order.
type EmbedTextResult struct {
	Success   bool              `json:"success" yaml:"success"`
	Documents []*IngestResponse `json:"documents" yaml:"documents"`
}

// EmbedTextInWorkspace creates one document per text and attaches each to
// the workspace. Texts are processed one at a time; the first error stops
// processing and is returned.
func (c *Client) EmbedTextInWorkspace(ctx context.Context, slug string, texts []string) (*EmbedTextResult, error) {
	result := &EmbedTextResult{
		Success:   true,
		Documents: make([]*IngestResponse, 0, len(texts)),
	}

	for i, text := range texts {
		body := rawTextRequest{
			TextContent: text,
			Metadata: rawTextMetadata{
				Title:     embeddedTitle(c.now().UnixMilli(), i),
				DocSource: embeddedDocSource,
			},
		}

		resp, err := c.ingest(ctx, slug, func(ctx context.Context) (*IngestResponse, error) {
			var out IngestResponse
			if err := c.doJSON(ctx, "EmbedTextInWorkspace", http.MethodPost, "/document/raw-text", body, &out); err != nil {
				return nil, err
			}
			return &out, nil
		})
		if err != nil {
			return nil, err
		}
		result.Documents = append(result.Documents, resp)
	}

	return result, nil
}

func embeddedTitle(millis int64, index int) string {
	return fmt.Sprintf("embedded-text-%d-%d", millis, index)
}

// EmbedWebpage asks the server to scrape url, then attaches the resulting
// documents to the workspace.
func (c *Client) EmbedWebpage(ctx context.Context, slug, link string) (*IngestResponse, error) {
	return c.ingest(ctx, slug, func(ctx context.Context) (*IngestResponse, error) {
		var out IngestResponse
		body := map[string]string{"link": link}
		if err := c.doJSON(ctx, "EmbedWebpage", http.MethodPost, "/document/upload-link", body, &out); err != nil {
			return nil, err
		}
		return &out, nil
	})
}

// ProcessDocument ingests a document by URL. It is the same as EmbedWebpage.
func (c *Client) ProcessDocument(ctx context.Context, slug, documentURL string) (*IngestResponse, error) {
	return c.EmbedWebpage(ctx, slug, documentURL)
}
