package custom

import (
	"fmt"
	"strings"
)

type promptExample struct {
	number                 int
	person, action, object string
}

var promptExamples = []promptExample{
	{0, "Neo", "dodging", "sunglasses"},
	{1, "Einstein", "calculating", "chalkboard"},
}

// Prompt returns the instructions a user pastes into an external AI chat
// to have it produce a full 00-99 system in the JSON import format.
func Prompt() string {
	var b strings.Builder
	b.WriteString("Create a complete PAO (Person-Action-Object) memory system for numbers 00-99 in JSON format.\n\n")
	b.WriteString("Requirements:\n")
	b.WriteString("- Each number (00-99) needs exactly 3 entries: person, action, and object\n")
	b.WriteString("- Person: A memorable character/celebrity (capitalized name)\n")
	b.WriteString("- Action: A distinctive verb/action (lowercase)\n")
	b.WriteString("- Object: A concrete noun/item (lowercase)\n")
	b.WriteString("- Make associations vivid and easy to visualize\n")
	b.WriteString("- Use diverse, interesting characters and items\n\n")
	b.WriteString("Format as a JSON array:\n[\n")

	var entries []string
	for _, ex := range promptExamples {
		for _, e := range [][2]string{{"person", ex.person}, {"action", ex.action}, {"object", ex.object}} {
			entries = append(entries, fmt.Sprintf("  {\n    \"number\": %d,\n    \"type\": %q,\n    \"title\": %q,\n    \"imageUrl\": \"\"\n  }", ex.number, e[0], e[1]))
		}
	}
	b.WriteString(strings.Join(entries, ",\n"))
	b.WriteString(",\n  ...\n]\n\n")
	b.WriteString("Please generate the complete system now (all 300 entries).")
	return b.String()
}
