package anthropic_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"flashcards/internal/domain"
	"flashcards/internal/infra/anthropic"
)

func claudeServer(t *testing.T, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/messages" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		if r.Header.Get("x-api-key") != "test-key" {
			t.Errorf("x-api-key: got %q", r.Header.Get("x-api-key"))
		}

		var req struct {
			System   string `json:"system"`
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if !strings.Contains(req.System, "'EXIT'") {
			t.Errorf("system prompt missing EXIT instruction: %q", req.System)
		}
		if len(req.Messages) != 1 || !strings.Contains(req.Messages[0].Content, "'seven times five'") {
			t.Errorf("messages: got %+v", req.Messages)
		}

		response := map[string]any{
			"content": []map[string]string{
				{"text": text},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
}

func TestClaudeClient_Interpret(t *testing.T) {
	server := claudeServer(t, "35\n")
	defer server.Close()

	client := anthropic.NewClaudeClientWithURL("test-key", "claude-test", server.URL)

	reply, err := client.Interpret(context.Background(), "seven times five", 35)
	if err != nil {
		t.Fatalf("Interpret error: %v", err)
	}
	if reply != "35" {
		t.Errorf("reply: got %q, want 35", reply)
	}
}

func TestClaudeClient_InterpretExit(t *testing.T) {
	server := claudeServer(t, "EXIT")
	defer server.Close()

	client := anthropic.NewClaudeClientWithURL("test-key", "claude-test", server.URL)

	reply, err := client.Interpret(context.Background(), "seven times five", 35)
	if err != nil {
		t.Fatalf("Interpret error: %v", err)
	}
	if reply != domain.ReplyExit {
		t.Errorf("reply: got %q, want EXIT", reply)
	}
}

func TestClaudeClient_APIError(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, `{"error":"invalid key"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := anthropic.NewClaudeClientWithURL("test-key", "claude-test", server.URL)

	if _, err := client.Interpret(context.Background(), "five", 35); err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("calls: got %d, want 1", calls)
	}
}

func TestClaudeClient_MissingKey(t *testing.T) {
	client := anthropic.NewClaudeClientWithURL("", "claude-test", "http://127.0.0.1:0")

	if _, err := client.Interpret(context.Background(), "five", 35); !errors.Is(err, domain.ErrConfigurationMissing) {
		t.Errorf("got %v, want ErrConfigurationMissing", err)
	}
}
