package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"partscope/internal/domain"
	"partscope/internal/logging"
)

// LoadJSON reads a JSON array of flat objects. Non-string values are
// rendered to text; nulls and nested values become empty strings.
func LoadJSON(path string) ([]domain.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var raw []map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	records := make([]domain.Record, 0, len(raw))
	for _, entry := range raw {
		record := make(domain.Record, len(entry))
		for key, value := range entry {
			record[key] = stringify(value)
		}
		records = append(records, record)
	}

	logging.Info("loaded json data", "path", path, "records", len(records))
	return records, nil
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return ""
	}
}
