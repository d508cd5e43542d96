package router

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yungbote/learnhub/internal/config"
	"github.com/yungbote/learnhub/internal/inference/engine"
	"github.com/yungbote/learnhub/internal/inference/engine/offline"
)

func testConfig() *config.Config {
	return &config.Config{
		Assistant: config.AssistantConfig{Model: "offline"},
		Models: []config.ModelConfig{
			{ID: "offline", Engine: config.EngineConfig{Type: config.EngineOffline}},
			{ID: "mock", UpstreamModel: "echo", Engine: config.EngineConfig{Type: config.EngineMock}},
			{ID: "remote", Engine: config.EngineConfig{Type: "openai_http", BaseURL: "http://upstream"}},
		},
	}
}

func TestNewBuildsRoutes(t *testing.T) {
	r, err := New(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if diff := cmp.Diff([]string{"mock", "offline", "remote"}, r.ListModels()); diff != "" {
		t.Fatalf("models (-want +got):\n%s", diff)
	}

	route, ok := r.RouteForModel(" mock ")
	if !ok {
		t.Fatalf("mock route missing")
	}
	if route.UpstreamModel != "echo" {
		t.Fatalf("upstream=%q", route.UpstreamModel)
	}
	if remote, _ := r.RouteForModel("remote"); remote.UpstreamModel != "remote" {
		t.Fatalf("upstream default=%q", remote.UpstreamModel)
	}
}

func TestDefaultRouteAnswers(t *testing.T) {
	r, err := New(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := r.Default().Generate(context.Background(), []engine.Message{{Role: "user", Content: "hello"}})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out != offline.ReplyGreeting {
		t.Fatalf("out=%q", out)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cases := map[string]*config.Config{
		"duplicate": {Models: []config.ModelConfig{
			{ID: "a", Engine: config.EngineConfig{Type: "mock"}},
			{ID: "a", Engine: config.EngineConfig{Type: "mock"}},
		}},
		"unknown engine": {Models: []config.ModelConfig{{ID: "a", Engine: config.EngineConfig{Type: "vllm"}}}},
		"missing default": {
			Assistant: config.AssistantConfig{Model: "gone"},
			Models:    []config.ModelConfig{{ID: "a", Engine: config.EngineConfig{Type: "mock"}}},
		},
		"genai without key": {Models: []config.ModelConfig{{ID: "g", Engine: config.EngineConfig{Type: "genai"}}}},
	}
	for name, cfg := range cases {
		if _, err := New(context.Background(), cfg); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
