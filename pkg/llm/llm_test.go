package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func completionBody(content string) string {
	return fmt.Sprintf(`{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gemini-1.5-flash",
  "choices": [
    {"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": %q}}
  ]
}`, content)
}

func TestOpenAIGenerateSendsPromptAsUserMessage(t *testing.T) {
	var hits atomic.Int32
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer chave-teste", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody("  50%\n")))
	}))
	defer srv.Close()

	gen := NewOpenAI(srv.URL+"/", "chave-teste", "gemini-1.5-flash")
	reply, err := gen.Generate(context.Background(), "Qual a porcentagem de passes?")

	require.NoError(t, err)
	assert.Equal(t, "50%", reply)
	assert.EqualValues(t, 1, hits.Load())
	assert.Equal(t, "gemini-1.5-flash", got.Model)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "Qual a porcentagem de passes?", got.Messages[0].Content)
}

func TestOpenAIGenerateDoesNotRetry(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded","type":"server_error"}}`))
	}))
	defer srv.Close()

	gen := NewOpenAI(srv.URL+"/", "chave-teste", "gemini-1.5-flash")
	_, err := gen.Generate(context.Background(), "prompt")

	require.Error(t, err)
	assert.EqualValues(t, 1, hits.Load())
}

func TestOpenAIGenerateEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","created":0,"model":"m","choices":[]}`))
	}))
	defer srv.Close()

	gen := NewOpenAI(srv.URL+"/", "chave-teste", "m")
	_, err := gen.Generate(context.Background(), "prompt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty completion choices")
}

func TestQueryErrorUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := error(&QueryError{Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "connection refused", err.Error())
}
