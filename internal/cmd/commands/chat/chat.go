package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/anythingllm/internal/cmd/base"
	"github.com/hashicorp-forge/anythingllm/pkg/anythingllm"
)

// Commands returns the chat and history commands.
func Commands(b *base.Command) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"chat": func() (cli.Command, error) {
			var (
				mode   string
				stream bool
			)
			return &base.APICommand{
				Command: b,
				Name:    "chat",
				Summary: "Send a message to a workspace",
				Usage:   "<slug> <message>",
				Details: `With -stream, each chunk is printed as a JSON line as soon as it
arrives.`,
				MinArgs: 2,
				MaxArgs: 2,
				SetFlags: func(f *base.FlagSet) {
					f.StringVar(&mode, "mode", anythingllm.DefaultChatMode, "Chat mode, chat or query.")
					f.BoolVar(&stream, "stream", false, "Stream the response.")
				},
				Call: func(ctx context.Context, client *anythingllm.Client, args []string) (interface{}, error) {
					if !stream {
						return client.ChatWithWorkspace(ctx, args[0], args[1], mode)
					}
					return nil, streamChat(ctx, b.UI, client, args[0], args[1], mode)
				},
			}, nil
		},
		"history": func() (cli.Command, error) {
			var limit int
			return &base.APICommand{
				Command: b,
				Name:    "history",
				Summary: "Show the chat history of a workspace",
				Usage:   "<slug>",
				MinArgs: 1,
				MaxArgs: 1,
				SetFlags: func(f *base.FlagSet) {
					f.IntVar(&limit, "limit", 0, "Maximum number of messages, 0 for the server default.")
				},
				Call: func(ctx context.Context, client *anythingllm.Client, args []string) (interface{}, error) {
					return client.GetWorkspaceChatHistory(ctx, args[0], limit)
				},
			}, nil
		},
		"history clear": func() (cli.Command, error) {
			return &base.APICommand{
				Command: b,
				Name:    "history clear",
				Summary: "Clear the chat history of a workspace",
				Usage:   "<slug>",
				Details: "The v1 API cannot clear history; this always fails.",
				MinArgs: 1,
				MaxArgs: 1,
				Call: func(ctx context.Context, client *anythingllm.Client, args []string) (interface{}, error) {
					return nil, client.ClearWorkspaceChatHistory(ctx, args[0])
				},
			}, nil
		},
	}
}

func streamChat(ctx context.Context, ui cli.Ui, client *anythingllm.Client, slug, message, mode string) error {
	body, err := client.StreamChatWithWorkspace(ctx, slug, message, mode)
	if err != nil {
		return err
	}
	defer body.Close()

	r := anythingllm.NewChatStreamReader(body)
	for {
		chunk, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line, err := json.Marshal(chunk)
		if err != nil {
			return fmt.Errorf("error encoding chunk: %w", err)
		}
		ui.Output(string(line))

		if chunk.Close {
			return nil
		}
	}
}
