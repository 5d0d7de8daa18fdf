package model

import (
	"context"
	"fmt"

	"github.com/hupe1980/shopmesh/core"
)

// Request captures the normalized model input assembled by the assistant.
type Request struct {
	// Instructions is an optional system preamble (e.g. naming the resolved
	// identity). Providers map it to their native system slot.
	Instructions string `json:"instructions,omitempty"`
	// Messages is the truncated conversation history ending with the new
	// user turn.
	Messages []core.Message `json:"messages"`
}

// Response is the extracted model reply.
type Response struct {
	Text         string `json:"text"`
	FinishReason string `json:"finish_reason,omitempty"` // "stop", "length", etc.
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", etc.
}

// Model is the minimal interface required to drive reply generation.
type Model interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests & examples.
type MockModel struct {
	info      Info
	responses map[string]string
	err       error
}

// NewMockModel constructs a MockModel.
func NewMockModel(name, provider string) *MockModel {
	return &MockModel{
		info:      Info{Name: name, Provider: provider},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for an input prompt.
func (m *MockModel) AddResponse(prompt, response string) { m.responses[prompt] = response }

// FailWith makes every Generate call return err; used to exercise the
// degradation path.
func (m *MockModel) FailWith(err error) { m.err = err }

// Generate implements Model; replies to the last message text.
func (m *MockModel) Generate(ctx context.Context, req Request) (*Response, error) {
	if m.err != nil {
		return nil, m.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("no messages provided")
	}
	input := req.Messages[len(req.Messages)-1].Text
	full := m.responses[input]
	if full == "" {
		full = fmt.Sprintf("Mock response to: %s", input)
	}
	return &Response{Text: full, FinishReason: "stop"}, nil
}

// Info implements Model interface.
func (m *MockModel) Info() Info { return m.info }
