package document

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/anythingllm/internal/cmd/base"
	"github.com/hashicorp-forge/anythingllm/pkg/anythingllm"
)

// Commands returns the document command and its subcommands.
func Commands(b *base.Command) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"document": func() (cli.Command, error) {
			return &base.GroupCommand{
				Summary: "Manage workspace documents",
				Text: `Usage: anythingllm document <subcommand> [options] [args]

  This command groups subcommands for uploading, embedding, listing and
  searching documents.`,
			}, nil
		},
		"document upload": func() (cli.Command, error) {
			return &base.APICommand{
				Command: b,
				Name:    "document upload",
				Summary: "Upload a file and embed it in a workspace",
				Usage:   "<slug> <file>",
				MinArgs: 2,
				MaxArgs: 2,
				Call: func(ctx context.Context, client *anythingllm.Client, args []string) (interface{}, error) {
					return upload(ctx, b, client, args[0], args[1])
				},
			}, nil
		},
		"document list": func() (cli.Command, error) {
			return &base.APICommand{
				Command: b,
				Name:    "document list",
				Summary: "List documents",
				Usage:   "[<slug>]",
				Details: `With a workspace slug, lists the documents embedded in that
workspace. Without one, lists every document on the instance.`,
				MaxArgs: 1,
				Call: func(ctx context.Context, client *anythingllm.Client, args []string) (interface{}, error) {
					if len(args) == 0 {
						return client.ListSystemDocuments(ctx)
					}
					return client.ListDocuments(ctx, args[0])
				},
			}, nil
		},
		"document delete": func() (cli.Command, error) {
			return &base.APICommand{
				Command: b,
				Name:    "document delete",
				Summary: "Remove documents from a workspace",
				Usage:   "<slug> <name>...",
				Details: `Each name may be a document id, a filename, a full document path
or part of one.`,
				MinArgs: 2,
				MaxArgs: -1,
				Call: func(ctx context.Context, client *anythingllm.Client, args []string) (interface{}, error) {
					return deleteDocuments(ctx, client, args[0], args[1:])
				},
			}, nil
		},
		"document attach": func() (cli.Command, error) {
			return &base.APICommand{
				Command: b,
				Name:    "document attach",
				Summary: "Embed already uploaded documents in a workspace",
				Usage:   "<slug> <path>...",
				MinArgs: 2,
				MaxArgs: -1,
				Call: func(ctx context.Context, client *anythingllm.Client, args []string) (interface{}, error) {
					return client.AddDocumentsToWorkspace(ctx, args[0], args[1:])
				},
			}, nil
		},
		"document embed-text": func() (cli.Command, error) {
			return &base.APICommand{
				Command: b,
				Name:    "document embed-text",
				Summary: "Embed raw text in a workspace",
				Usage:   "<slug> <text>...",
				Details: "Each text argument becomes its own document.",
				MinArgs: 2,
				MaxArgs: -1,
				Call: func(ctx context.Context, client *anythingllm.Client, args []string) (interface{}, error) {
					return client.EmbedTextInWorkspace(ctx, args[0], args[1:])
				},
			}, nil
		},
		"document embed-link": func() (cli.Command, error) {
			return &base.APICommand{
				Command: b,
				Name:    "document embed-link",
				Summary: "Scrape a web page and embed it in a workspace",
				Usage:   "<slug> <url>",
				MinArgs: 2,
				MaxArgs: 2,
				Call: func(ctx context.Context, client *anythingllm.Client, args []string) (interface{}, error) {
					return client.EmbedWebpage(ctx, args[0], args[1])
				},
			}, nil
		},
		"document process": func() (cli.Command, error) {
			return &base.APICommand{
				Command: b,
				Name:    "document process",
				Summary: "Fetch a document by URL and embed it in a workspace",
				Usage:   "<slug> <url>",
				MinArgs: 2,
				MaxArgs: 2,
				Call: func(ctx context.Context, client *anythingllm.Client, args []string) (interface{}, error) {
					return client.ProcessDocument(ctx, args[0], args[1])
				},
			}, nil
		},
		"document search": func() (cli.Command, error) {
			var limit int
			return &base.APICommand{
				Command: b,
				Name:    "document search",
				Summary: "Run a vector search in a workspace",
				Usage:   "<slug> <query>",
				MinArgs: 2,
				MaxArgs: 2,
				SetFlags: func(f *base.FlagSet) {
					f.IntVar(&limit, "limit", 10, "Maximum number of results.")
				},
				Call: func(ctx context.Context, client *anythingllm.Client, args []string) (interface{}, error) {
					return client.SearchWorkspace(ctx, args[0], args[1], limit)
				},
			}, nil
		},
		"document vectors": func() (cli.Command, error) {
			return &base.APICommand{
				Command: b,
				Name:    "document vectors",
				Summary: "Show the stored vectors of a workspace",
				Usage:   "<slug> [<document-id>]",
				MinArgs: 1,
				MaxArgs: 2,
				Call: func(ctx context.Context, client *anythingllm.Client, args []string) (interface{}, error) {
					var id string
					if len(args) > 1 {
						id = args[1]
					}
					return client.GetDocumentVectors(ctx, args[0], id)
				},
			}, nil
		},
	}
}

func upload(ctx context.Context, b *base.Command, client *anythingllm.Client, slug, name string) (interface{}, error) {
	f, err := b.Fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	b.Log.Debug("uploading document", "file", name, "workspace", slug)
	return client.UploadDocument(ctx, slug, anythingllm.DocumentUpload{
		Filename: filepath.Base(name),
		Content:  f,
	})
}

func deleteDocuments(ctx context.Context, client *anythingllm.Client, slug string, names []string) (interface{}, error) {
	var result *multierror.Error
	deleted := []string{}
	for _, name := range names {
		if _, err := client.DeleteDocument(ctx, slug, name); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", name, err))
			continue
		}
		deleted = append(deleted, name)
	}
	return map[string]any{"deleted": deleted}, result.ErrorOrNil()
}
