// Package anythingllm is a client for the AnythingLLM developer API.
//
// # Overview
//
// Each Client method maps to one REST endpoint under /api/v1. A few methods
// compose two calls because the API requires it:
//
//   - UploadDocument, EmbedTextInWorkspace and EmbedWebpage first create
//     documents, then attach their locations to the workspace through
//     update-embeddings. The attach step only runs when the first call
//     reported success and returned documents.
//   - ListDocuments and DeleteDocument read the workspace details to find the
//     embedded documents.
//
// Agents are not a separate resource in AnythingLLM. The agent methods are
// workspace updates and workspace chats keyed by workspace slug.
//
// # Endpoints
//
// Workspaces:
//   - GET    /api/v1/workspaces
//   - GET    /api/v1/workspace/:slug
//   - POST   /api/v1/workspace/new
//   - POST   /api/v1/workspace/:slug/update
//   - DELETE /api/v1/workspace/:slug
//   - POST   /api/v1/workspace/:slug/update-embeddings
//
// Chat:
//   - POST /api/v1/workspace/:slug/chat
//   - POST /api/v1/workspace/:slug/stream-chat
//   - GET  /api/v1/workspace/:slug/chats
//   - POST /api/v1/workspace/:slug/vector-search
//
// Documents:
//   - GET  /api/v1/documents
//   - POST /api/v1/document/upload
//   - POST /api/v1/document/raw-text
//   - POST /api/v1/document/upload-link
//
// Admin:
//   - GET/POST  /api/v1/admin/system-preferences
//   - GET       /api/v1/admin/users
//   - POST      /api/v1/admin/users/new
//   - POST      /api/v1/admin/users/:id
//   - DELETE    /api/v1/admin/users/:id
//   - GET       /api/v1/admin/api-keys
//   - POST      /api/v1/admin/generate-api-key
//   - DELETE    /api/v1/admin/delete-api-key/:id
//
// System:
//   - GET /api/v1/system/env-dump
//   - GET /api/v1/system/system-vectors
//
// # Error Handling
//
// Any non-2xx response becomes an *APIError holding the status code and the
// raw body text. There are no retries. ClearWorkspaceChatHistory always
// returns ErrUnsupported and CreateAgent returns ErrWorkspaceRequired without
// a workspace slug; neither sends a request.
package anythingllm
