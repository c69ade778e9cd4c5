package custom

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/paomind/internal/pao"
)

// ErrInvalidJSON is returned for input that is not a JSON array of items.
var ErrInvalidJSON = errors.New("invalid JSON import")

const itemsSchemaURL = "schema://paomind/custom-items.json"

// itemsSchema describes the JSON import format.
var itemsSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []any{"number", "type", "title"},
		"properties": map[string]any{
			"number":   map[string]any{"type": "integer", "minimum": 0, "maximum": 99},
			"type":     map[string]any{"enum": []any{"person", "action", "object"}},
			"title":    map[string]any{"type": "string", "minLength": 1},
			"imageUrl": map[string]any{"type": "string"},
		},
	},
}

var compiledItemsSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The compiler wants a plain decoded document.
	raw, err := json.Marshal(itemsSchema)
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(itemsSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(itemsSchemaURL)
})

type jsonItem struct {
	Number   int    `json:"number"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// ParseJSON decodes an array of {number, type, title, imageUrl?}. Anything
// that is not such an array, or that holds an invalid item, is rejected as
// a whole. Returned items carry no id.
func ParseJSON(data []byte) ([]pao.CustomItem, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: input is empty", ErrInvalidJSON)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if _, ok := doc.([]any); !ok {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrInvalidJSON)
	}

	schema, err := compiledItemsSchema()
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	var raw []jsonItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	items := make([]pao.CustomItem, 0, len(raw))
	for _, r := range raw {
		items = append(items, pao.CustomItem{
			Number:   r.Number,
			Type:     pao.Kind(r.Type),
			Title:    strings.TrimSpace(r.Title),
			ImageURL: strings.TrimSpace(r.ImageURL),
		})
	}
	return items, nil
}

// WriteJSON exports items in the import format.
func WriteJSON(w io.Writer, items []pao.CustomItem) error {
	if len(items) == 0 {
		return ErrNothingToExport
	}
	out := make([]jsonItem, 0, len(items))
	for _, it := range items {
		out = append(out, jsonItem{Number: it.Number, Type: string(it.Type), Title: it.Title, ImageURL: it.ImageURL})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// ExtractJSONArray returns the outermost [...] span of text, which lets a
// chat reply wrapped in prose or code fences be imported.
func ExtractJSONArray(text string) (string, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}
