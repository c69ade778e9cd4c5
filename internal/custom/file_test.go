package custom

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/paomind/internal/pao"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"csv": FormatCSV, " JSON ": FormatJSON, "txt": FormatText, "text": FormatText} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatForPath("/tmp/pao.JSON"))
	assert.Equal(t, FormatText, FormatForPath("pao.txt"))
	assert.Equal(t, FormatCSV, FormatForPath("pao.csv"))
	assert.Equal(t, FormatCSV, FormatForPath("pao"))
}

func TestExportImportFile(t *testing.T) {
	ctx := context.Background()
	items := []pao.CustomItem{
		{ID: "a", Number: 3, Type: pao.Person, Title: "Neo", ImageURL: "https://example.com/neo.png"},
		{ID: "b", Number: 3, Type: pao.Object, Title: "red pill", ImageURL: "https://example.com/pill.png"},
	}

	for _, f := range []Format{FormatCSV, FormatJSON, FormatText} {
		t.Run(string(f), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "pao."+string(f))
			require.NoError(t, ExportFile(path, f, items))

			s := NewStore(nil, &recordingPersister{})
			report, err := s.ImportFile(ctx, path, f)
			require.NoError(t, err)
			assert.Equal(t, 2, report.Imported)
			assert.Empty(t, report.Skipped)

			got := s.All()
			require.Len(t, got, 2)
			for _, it := range got {
				assert.True(t, strings.HasPrefix(it.ID, PrefixImported+"_"), it.ID)
			}
			title, ok := s.LookupKind(pao.Object, 3)
			assert.True(t, ok)
			assert.Equal(t, "red pill", title)
		})
	}
}

func TestExportFileNothingToExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	assert.ErrorIs(t, ExportFile(path, FormatCSV, nil), ErrNothingToExport)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestImportFileMissing(t *testing.T) {
	s := NewStore(nil, nil)
	_, err := s.ImportFile(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), FormatCSV)
	assert.Error(t, err)
	assert.Zero(t, s.Count())
}
