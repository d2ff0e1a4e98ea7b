package fetcher

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestZIP(t *testing.T, files map[string]string) string {
	t.Helper()
	zipPath := filepath.Join(t.TempDir(), "test.zip")
	f, err := os.Create(zipPath)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	w := zip.NewWriter(f)
	for name, content := range files {
		fw, err := w.Create(name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return zipPath
}

func TestReadZIP_CSV(t *testing.T) {
	zipPath := createTestZIP(t, map[string]string{
		"README.md":         "Phase 1 award recipients",
		"phase1/awards.csv": "\ufeffDepartment,Innovator\nNRC,Acme Inc.\nDFO,N/A\n",
	})

	tbl, err := ReadZIP(zipPath, testNA)
	require.NoError(t, err)
	assert.Equal(t, []string{"Department", "Innovator"}, tbl.Header)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "Acme Inc.", tbl.Rows[0][1].String)
	assert.False(t, tbl.Rows[1][1].Valid)
}

func TestReadZIP_XLSX(t *testing.T) {
	xlsxPath := createTestXLSX(t, map[string][][]string{
		"Sheet1": {{"Province"}, {"Ontario"}},
	})
	data, err := os.ReadFile(xlsxPath)
	require.NoError(t, err)
	zipPath := createTestZIP(t, map[string]string{"awards.xlsx": string(data)})

	tbl, err := ReadZIP(zipPath, testNA)
	require.NoError(t, err)
	assert.Equal(t, []string{"Province"}, tbl.Header)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "Ontario", tbl.Rows[0][0].String)
}

func TestReadZIP_NoExtract(t *testing.T) {
	zipPath := createTestZIP(t, map[string]string{"notes.md": "nothing here"})

	_, err := ReadZIP(zipPath, testNA)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected exactly 1 extract, got 0")
}

func TestReadZIP_MultipleExtracts(t *testing.T) {
	zipPath := createTestZIP(t, map[string]string{
		"a.csv": "x\n1\n",
		"b.csv": "y\n2\n",
	})

	_, err := ReadZIP(zipPath, testNA)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected exactly 1 extract, got 2")
}

func TestReadZIP_SkipsDirectories(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "nested.zip")
	f, err := os.Create(zipPath)
	require.NoError(t, err)

	w := zip.NewWriter(f)
	_, err = w.Create("data/")
	require.NoError(t, err)
	fw, err := w.Create("data/awards.csv")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("a,b\n1,2\n")) //nolint:errcheck
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	tbl, err := ReadZIP(zipPath, testNA)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tbl.Header)
}

func TestReadZIP_InvalidArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notazip.zip")
	require.NoError(t, writeTestFile(path, "this is not a zip"))

	_, err := ReadZIP(path, testNA)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zip: open archive")
}

func TestReadTable_ZIP(t *testing.T) {
	zipPath := createTestZIP(t, map[string]string{"awards.csv": "a\n1\n"})

	tbl, err := ReadTable(zipPath, testNA)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, tbl.Header)
}
