package domain

// Record represents one inventory row as supplied by the caller.
// Keys are the column names of the data source; values are kept
// exactly as loaded, un-normalized.
type Record map[string]string

// Field returns the value for a column, or "" when the column is missing.
// Missing or malformed values are treated as empty text, never an error.
func (r Record) Field(key string) string {
	if r == nil {
		return ""
	}
	return r[key]
}
