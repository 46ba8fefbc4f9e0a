// Package loader reads inventory exports into opaque records. The
// surrounding page in the old panel re-fetched and re-supplied data;
// here the loader plays that role, feeding SetItems on start and on an
// explicit reload.
package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"partscope/internal/domain"
)

// Load reads the data file at path, dispatching on its extension.
// Supported formats are .xlsx (warehouse Excel export) and .json.
func Load(path string) ([]domain.Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return LoadExcel(path)
	case ".json":
		return LoadJSON(path)
	default:
		return nil, fmt.Errorf("unsupported data file %s: want .xlsx or .json", path)
	}
}
