package model

import (
	"context"
	"errors"
	"testing"

	"github.com/hupe1980/shopmesh/core"
)

func TestMockModel_CannedAndDefaultResponses(t *testing.T) {
	m := NewMockModel("test", "mock")
	m.AddResponse("hello", "hi there")

	resp, err := m.Generate(context.Background(), Request{Messages: []core.Message{{Role: core.RoleUser, Text: "hello"}}})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.Text != "hi there" {
		t.Fatalf("Text = %q, want canned reply", resp.Text)
	}

	resp, err = m.Generate(context.Background(), Request{Messages: []core.Message{{Role: core.RoleUser, Text: "unknown"}}})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.Text != "Mock response to: unknown" {
		t.Fatalf("Text = %q, want default reply", resp.Text)
	}
}

func TestMockModel_EmptyMessages(t *testing.T) {
	m := NewMockModel("test", "mock")
	if _, err := m.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("empty request accepted")
	}
}

func TestMockModel_FailWith(t *testing.T) {
	m := NewMockModel("test", "mock")
	want := errors.New("provider down")
	m.FailWith(want)
	if _, err := m.Generate(context.Background(), Request{Messages: []core.Message{{Role: core.RoleUser, Text: "x"}}}); !errors.Is(err, want) {
		t.Fatalf("err = %v, want %v", err, want)
	}
}
