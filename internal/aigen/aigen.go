// Package aigen asks a configured LLM provider to write a full PAO system and
// turns the reply into importable custom items.
package aigen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/paomind/internal/custom"
	"github.com/abhisek/paomind/internal/llm"
	"github.com/abhisek/paomind/internal/pao"
)

const systemPrompt = "You are a memory coach. Reply with a single JSON array and nothing else."

// ErrNoArray is returned when the reply holds no JSON array.
var ErrNoArray = errors.New("reply contains no JSON array")

// Generator sends the PAO prompt to a provider.
type Generator struct {
	provider  llm.Provider
	maxTokens int
	timeout   time.Duration
}

// New creates a Generator. A zero timeout means no deadline beyond ctx.
func New(p llm.Provider, maxTokens int, timeout time.Duration) *Generator {
	return &Generator{provider: p, maxTokens: maxTokens, timeout: timeout}
}

// Model reports the model behind the generator.
func (g *Generator) Model() string { return g.provider.ModelID() }

// Result is a parsed generation.
type Result struct {
	Items []pao.CustomItem
	Model string
}

// Count returns the number of generated items of kind k.
func (r Result) Count(k pao.Kind) int {
	n := 0
	for _, it := range r.Items {
		if it.Type == k {
			n++
		}
	}
	return n
}

// Summary describes the result per kind.
func (r Result) Summary() string {
	return fmt.Sprintf("%d items (%d people, %d actions, %d objects)",
		len(r.Items), r.Count(pao.Person), r.Count(pao.Action), r.Count(pao.Object))
}

// Generate requests a PAO system and parses the reply with the same rules as
// a pasted JSON import. Items carry no ids; the custom store assigns them.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	ctx = llm.WithPurpose(ctx, "pao-system")

	resp, err := g.provider.Generate(ctx, llm.UserPrompt(systemPrompt, custom.Prompt(), g.maxTokens))
	if err != nil {
		return nil, err
	}

	items, err := Parse(resp.Text)
	if err != nil {
		return nil, &llm.ErrInvalidResponse{Text: resp.Text, Err: err}
	}
	return &Result{Items: items, Model: resp.Model}, nil
}

// Parse extracts the JSON array from a chat reply, tolerating prose and code
// fences around it.
func Parse(text string) ([]pao.CustomItem, error) {
	arr, ok := custom.ExtractJSONArray(text)
	if !ok {
		return nil, ErrNoArray
	}
	return custom.ParseJSON([]byte(arr))
}
