// Package index builds the in-memory search index over inventory
// records. The index is rebuilt wholesale on every dataset load; no
// entry survives a reload.
package index

import (
	"strings"

	"partscope/internal/domain"
	"partscope/internal/textnorm"
)

// Field holds one record column in normalized form
type Field struct {
	Key   string
	Text  string   // normalized field text
	Words []string // normalized words, no empty entries
}

// Item pairs a source record with its indexed fields, ordered
// [primary, secondary...]. The source record is never mutated.
type Item struct {
	Record domain.Record
	Fields []Field
}

// Build indexes every record under the configured field keys. Missing
// columns index as empty fields. Cost is linear in the total characters
// of the configured columns.
func Build(records []domain.Record, keys []string, opts textnorm.Options) []Item {
	items := make([]Item, 0, len(records))

	for _, record := range records {
		fields := make([]Field, 0, len(keys))
		for _, key := range keys {
			text := textnorm.Normalize(record.Field(key), opts)
			fields = append(fields, Field{
				Key:   key,
				Text:  text,
				Words: strings.Fields(text),
			})
		}
		items = append(items, Item{Record: record, Fields: fields})
	}

	return items
}
