package fetcher

import (
	"archive/zip"
	"io"
	"path"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// ReadZIP reads the extract packed inside a ZIP archive. The archive must
// hold exactly one .csv, .txt or .xlsx entry; directories and other files
// (readme, licence) are ignored. Nothing is written to disk.
func ReadZIP(zipPath string, naValues []string) (*Table, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, eris.Wrap(err, "zip: open archive")
	}
	defer r.Close() //nolint:errcheck

	entry, err := extractEntry(r.File)
	if err != nil {
		return nil, err
	}

	rc, err := entry.Open()
	if err != nil {
		return nil, eris.Wrap(err, "zip: open entry")
	}
	defer rc.Close() //nolint:errcheck

	if entryExt(entry) != ".xlsx" {
		return ReadCSV(rc, naValues)
	}

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, eris.Wrap(err, "zip: read entry")
	}
	wb, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: open entry")
	}
	return readWorkbook(wb, naValues)
}

// extractEntry picks the single tabular file in the archive.
func extractEntry(files []*zip.File) (*zip.File, error) {
	var found []*zip.File
	for _, f := range files {
		if f.FileInfo().IsDir() {
			continue
		}
		switch entryExt(f) {
		case ".csv", ".txt", ".xlsx":
			found = append(found, f)
		}
	}

	if len(found) != 1 {
		return nil, eris.Errorf("zip: expected exactly 1 extract, got %d", len(found))
	}
	return found[0], nil
}

func entryExt(f *zip.File) string {
	return strings.ToLower(path.Ext(f.Name))
}
