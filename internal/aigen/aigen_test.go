package aigen

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/paomind/internal/custom"
	"github.com/abhisek/paomind/internal/llm"
	"github.com/abhisek/paomind/internal/pao"
)

const fencedReply = "Here is your system:\n```json\n" + `[
  {"number": 0, "type": "person", "title": "Neo", "imageUrl": "https://example.com/neo.png"},
  {"number": 0, "type": "action", "title": "dodging"},
  {"number": 0, "type": "object", "title": "sunglasses"}
]` + "\n```\nEnjoy!"

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: fencedReply})
	g := New(mock, 16000, time.Minute)

	res, err := g.Generate(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Items, 3)
	assert.Equal(t, "Neo", res.Items[0].Title)
	assert.Equal(t, pao.Action, res.Items[1].Type)
	assert.Equal(t, "mock", res.Model)
	assert.Equal(t, "3 items (1 people, 1 actions, 1 objects)", res.Summary())

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Equal(t, 16000, req.MaxTokens)
	assert.Equal(t, custom.Prompt(), req.Messages[0].Content)
}

func TestGenerateRejectsUnusableReplies(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  error
	}{
		{"prose only", "Sorry, I can't help with that.", ErrNoArray},
		{"bad item", `[{"number": 120, "type": "person", "title": "X"}]`, custom.ErrInvalidJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(llm.NewMockProvider(llm.MockResponse{Text: tt.reply}), 100, 0)
			_, err := g.Generate(context.Background())
			var inv *llm.ErrInvalidResponse
			require.True(t, errors.As(err, &inv))
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.reply, inv.Text)
		})
	}
}

func TestGeneratePassesProviderErrors(t *testing.T) {
	g := New(llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("429")}}), 100, 0)
	_, err := g.Generate(context.Background())
	var rl *llm.ErrRateLimit
	assert.True(t, errors.As(err, &rl))
}

func TestGenerateWithRetryRecoversFromOutage(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
		llm.MockResponse{Text: fencedReply},
	)
	p := llm.WithRetry(mock, llm.RetryConfig{MaxAttempts: 2, InitialWait: time.Millisecond, MaxWait: time.Millisecond, Multiplier: 1})
	res, err := New(p, 100, 0).Generate(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.Items, 3)
}

func TestParse(t *testing.T) {
	items, err := Parse(strings.TrimSpace(fencedReply))
	require.NoError(t, err)
	assert.Len(t, items, 3)
	for _, it := range items {
		assert.Empty(t, it.ID)
	}
}
