package custom

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/paomind/internal/pao"
)

type tuple struct {
	number int
	kind   pao.Kind
	title  string
	image  string
}

func tuples(items []pao.CustomItem) map[tuple]int {
	out := map[tuple]int{}
	for _, it := range items {
		out[tuple{it.Number, it.Type, it.Title, it.ImageURL}]++
	}
	return out
}

func TestCSVRoundTrip(t *testing.T) {
	items := []pao.CustomItem{
		{ID: "a", Number: 0, Type: pao.Person, Title: "Neo", ImageURL: "https://example.com/neo.png"},
		{ID: "b", Number: 7, Type: pao.Action, Title: `saying "hi", loudly`, ImageURL: "https://example.com/a?x=1,2"},
		{ID: "c", Number: 99, Type: pao.Object, Title: "line\nbreak", ImageURL: "https://example.com/c.png"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, items))
	assert.True(t, strings.HasPrefix(buf.String(), "Number,Type,Title,Image URL\n"))
	assert.Contains(t, buf.String(), `"saying ""hi"", loudly"`)

	got, report, err := ParseCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Imported)
	assert.Empty(t, report.Skipped)
	assert.Equal(t, tuples(items), tuples(got))
	for _, it := range got {
		assert.Empty(t, it.ID)
	}
}

func TestCSVRoundTripAfterJSONImport(t *testing.T) {
	parsed, err := ParseJSON([]byte(`[{"number":0,"type":"person","title":"Neo"},{"number":1,"type":"action","title":"dodging","imageUrl":""}]`))
	require.NoError(t, err)

	s := NewStore(nil, &recordingPersister{})
	_, err = s.Import(context.Background(), PrefixImported, parsed)
	require.NoError(t, err)
	for _, it := range s.All() {
		assert.Equal(t, pao.PlaceholderImage(it.Title), it.ImageURL)
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, s.All()))
	got, report, err := ParseCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Imported)
	assert.Empty(t, report.Skipped)
	assert.Equal(t, tuples(s.All()), tuples(got))
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, WriteCSV(&buf, nil), ErrNothingToExport)
}

func TestParseCSVReorderedHeaders(t *testing.T) {
	in := "image url,TITLE,Item Type,Number\nhttps://x/y.png,Chef,Person,03\n"
	got, _, err := ParseCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, pao.CustomItem{Number: 3, Type: pao.Person, Title: "Chef", ImageURL: "https://x/y.png"}, got[0])
}

func TestParseCSVPartialSuccess(t *testing.T) {
	in := strings.Join([]string{
		"Number,Type,Title,Image URL",
		"1,person,Archer,https://x/1.png",
		"100,person,Too big,https://x/2.png",
		"2,place,Nowhere,https://x/3.png",
		"3,object,,https://x/4.png",
		"4,object,Drum,",
		"5,action",
		"6,action,juggling,https://x/6.png",
	}, "\n")

	got, report, err := ParseCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 2, report.Imported)
	assert.Equal(t, []string{
		"Row 3: Invalid number (must be 0-99)",
		"Row 4: Invalid type (must be person, action, or object)",
		"Row 5: Title cannot be empty",
		"Row 6: Image URL cannot be empty",
		"Row 7: Insufficient columns",
	}, report.Skipped)
	assert.Equal(t, "Successfully imported 2 PAO items. 5 rows had errors and were skipped.", report.Summary())
}

func TestParseCSVMalformedRowSkipped(t *testing.T) {
	in := strings.Join([]string{
		"Number,Type,Title,Image URL",
		"1,person,Good,http://a",
		`2,person,Bad "quote",http://b`,
		"3,object,Fine,http://c",
	}, "\n")

	got, report, err := ParseCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 2, report.Imported)
	require.Len(t, got, 2)
	assert.Equal(t, "Good", got[0].Title)
	assert.Equal(t, "Fine", got[1].Title)
	require.Len(t, report.Skipped, 1)
	assert.True(t, strings.HasPrefix(report.Skipped[0], "Row 3: "), report.Skipped[0])
	assert.Contains(t, report.Skipped[0], `bare "`)
}

func TestParseCSVNoValidRows(t *testing.T) {
	var rows []string
	rows = append(rows, "Number,Type,Title,Image URL")
	for i := 0; i < 7; i++ {
		rows = append(rows, "abc,person,X,https://x")
	}
	_, report, err := ParseCSV(strings.NewReader(strings.Join(rows, "\n")))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoValidRows)

	var ie *ImportError
	require.True(t, errors.As(err, &ie))
	assert.Len(t, ie.Rows, 7)
	assert.Len(t, report.Skipped, 7)
	assert.Contains(t, err.Error(), "... and 2 more errors")
}

func TestParseCSVStructuralErrors(t *testing.T) {
	_, _, err := ParseCSV(strings.NewReader("Number,Type,Title,Image URL\n"))
	assert.Error(t, err)

	_, _, err = ParseCSV(strings.NewReader("Number,Title\n1,Archer\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required columns: Type, Image URL")
}
