package stock

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

const yamlStock = `items:
  - name: "+5 Dexterity Vest"
    sell_in: 10
    quality: 20
  - name: Sulfuras, Hand of Ragnaros
    sell_in: -1
    quality: 80
`

const jsonStock = `{"items":[{"name":"Aged Brie","sell_in":2,"quality":0}]}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		expected []Entry
	}{
		{
			name:    "yaml",
			file:    "stock.yaml",
			content: yamlStock,
			expected: []Entry{
				{Name: "+5 Dexterity Vest", SellIn: 10, Quality: 20},
				{Name: domain.ItemNameSulfuras, SellIn: -1, Quality: 80},
			},
		},
		{
			name:     "json",
			file:     "stock.json",
			content:  jsonStock,
			expected: []Entry{{Name: domain.ItemNameAgedBrie, SellIn: 2, Quality: 0}},
		},
		{
			name:     "json content in a yaml file",
			file:     "stock.yml",
			content:  jsonStock,
			expected: []Entry{{Name: domain.ItemNameAgedBrie, SellIn: 2, Quality: 0}},
		},
		{
			name:     "empty file",
			file:     "empty.yaml",
			content:  "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := LoadFile(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, entries)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	entries, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		errMsg  string
	}{
		{"bad json", "stock.json", "{", "failed to parse JSON data"},
		{"bad yaml", "stock.yaml", "items: [", "unmarshaling YAML"},
		{"missing name", "stock.yaml", "items:\n  - sell_in: 1\n    quality: 1\n", "required"},
		{"blank name", "stock.yaml", "items:\n  - name: \"  \"\n    sell_in: 1\n    quality: 1\n", "empty name"},
		{"negative quality", "stock.json", `{"items":[{"name":"Vest","sell_in":1,"quality":-3}]}`, "minimum"},
		{"wrong shape", "stock.yaml", "- Aged Brie\n", "schema validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestDefaultEntries(t *testing.T) {
	entries := DefaultEntries()
	require.Len(t, entries, 9)

	items := Items(entries)
	require.Len(t, items, 9)
	assert.Equal(t, "+5 Dexterity Vest", items[0].Name)
	assert.Equal(t, "Conjured Mana Cake", items[8].Name)

	// Each call yields independent items
	items[0].Quality = 0
	assert.Equal(t, 20, Items(DefaultEntries())[0].Quality)
}

func TestShippedStockFileMatchesDefaults(t *testing.T) {
	entries, err := LoadFile(filepath.Join("..", "..", "configs", "stock.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultEntries(), entries)
}
