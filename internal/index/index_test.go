package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partscope/internal/domain"
	"partscope/internal/textnorm"
)

func TestBuildFieldOrder(t *testing.T) {
	records := []domain.Record{
		{"code": "۱۲۳۴۵", "name": "سنسور اکسيژن", "brand": "MOBIS"},
	}

	items := Build(records, []string{"code", "name", "brand"}, textnorm.DefaultOptions())
	require.Len(t, items, 1)
	require.Len(t, items[0].Fields, 3)

	assert.Equal(t, "code", items[0].Fields[0].Key)
	assert.Equal(t, "name", items[0].Fields[1].Key)
	assert.Equal(t, "brand", items[0].Fields[2].Key)

	assert.Equal(t, "12345", items[0].Fields[0].Text)
	assert.Equal(t, "سنسور اکسیژن", items[0].Fields[1].Text)
	assert.Equal(t, []string{"سنسور", "اکسیژن"}, items[0].Fields[1].Words)
	assert.Equal(t, "mobis", items[0].Fields[2].Text)
}

func TestBuildMissingFieldIndexesEmpty(t *testing.T) {
	records := []domain.Record{
		{"code": "999"},
		nil,
	}

	items := Build(records, []string{"code", "name"}, textnorm.DefaultOptions())
	require.Len(t, items, 2)

	assert.Equal(t, "", items[0].Fields[1].Text)
	assert.Empty(t, items[0].Fields[1].Words)
	assert.Equal(t, "", items[1].Fields[0].Text)
}

func TestBuildNoEmptyWords(t *testing.T) {
	records := []domain.Record{
		{"name": "  لنت   ترمز  "},
	}

	items := Build(records, []string{"name"}, textnorm.DefaultOptions())
	require.Len(t, items, 1)

	for _, word := range items[0].Fields[0].Words {
		assert.NotEmpty(t, word)
	}
	assert.Equal(t, []string{"لنت", "ترمز"}, items[0].Fields[0].Words)
}

func TestBuildDoesNotMutateRecords(t *testing.T) {
	record := domain.Record{"code": "  ۱۲۳  "}
	items := Build([]domain.Record{record}, []string{"code"}, textnorm.DefaultOptions())

	assert.Equal(t, "  ۱۲۳  ", record["code"])
	assert.Equal(t, "123", items[0].Fields[0].Text)
}

func TestBuildEmptyDataset(t *testing.T) {
	items := Build(nil, []string{"code"}, textnorm.DefaultOptions())
	assert.Empty(t, items)
}
