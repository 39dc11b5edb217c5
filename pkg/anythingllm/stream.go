package anythingllm

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// StreamChunk is one event of a streamed chat response.
type StreamChunk struct {
	UUID         string           `json:"uuid"`
	Type         string           `json:"type"`
	TextResponse string           `json:"textResponse"`
	Sources      []map[string]any `json:"sources"`
	Close        bool             `json:"close"`
	Error        any              `json:"error"`
}

// ChatStreamReader decodes the "data: {...}" lines of a stream-chat body.
type ChatStreamReader struct {
	scanner *bufio.Scanner
}

// NewChatStreamReader wraps the body returned by StreamChatWithWorkspace.
func NewChatStreamReader(r io.Reader) *ChatStreamReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 2*1024*1024)
	return &ChatStreamReader{scanner: scanner}
}

// Next returns the next chunk, or io.EOF once the stream is exhausted.
// Lines that are not data events are skipped.
func (s *ChatStreamReader) Next() (*StreamChunk, error) {
	for s.scanner.Scan() {
		line := strings.TrimSpace(s.scanner.Text())
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "" {
			continue
		}

		var chunk StreamChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			return nil, fmt.Errorf("failed to decode stream chunk: %w", err)
		}
		return &chunk, nil
	}
	if err := s.scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stream: %w", err)
	}
	return nil, io.EOF
}
