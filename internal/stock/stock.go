package stock

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/logger"
	"github.com/osse101/GildedRose_Go/internal/validation"
)

var schemaValidator = validation.NewSchemaValidator()

// Entry is one line of a stock file
type Entry struct {
	Name    string `yaml:"name" json:"name"`
	SellIn  int    `yaml:"sell_in" json:"sell_in"`
	Quality int    `yaml:"quality" json:"quality"`
}

// File is the on-disk layout of a stock file
type File struct {
	Items []Entry `yaml:"items" json:"items"`
}

// LoadFile reads stock entries from a YAML or JSON file.
// A missing file yields no entries and no error.
func LoadFile(path string) ([]Entry, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn(LogMsgStockFileMissing, "path", path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat stock file: %w", err)
	}
	if info.Size() > MaxStockFileSize {
		return nil, fmt.Errorf("stock file too large: %d bytes (max %d)", info.Size(), MaxStockFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading stock file: %w", err)
	}

	entries, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Info(LogMsgStockLoaded, "path", path, "items", len(entries))
	return entries, nil
}

// Parse decodes stock data and checks it against the stock schema.
// ext selects JSON for ".json"; anything else is read as YAML.
func Parse(data []byte, ext string) ([]Entry, error) {
	jsonData := data
	if !strings.EqualFold(ext, ".json") {
		var doc interface{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("unmarshaling YAML: %w", err)
		}
		if doc == nil {
			return nil, nil
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("converting YAML: %w", err)
		}
		jsonData = converted
	}

	if err := schemaValidator.ValidateBytes(jsonData, validation.SchemaStock); err != nil {
		return nil, err
	}

	var file File
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("unmarshaling JSON: %w", err)
	}
	for i, e := range file.Items {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("stock entry at index %d has empty name", i)
		}
	}
	return file.Items, nil
}

// Items converts entries into fresh items
func Items(entries []Entry) []*domain.Item {
	items := make([]*domain.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, domain.NewItem(e.Name, e.SellIn, e.Quality))
	}
	return items
}

// DefaultEntries returns the classic shop fixture
func DefaultEntries() []Entry {
	return []Entry{
		{Name: "+5 Dexterity Vest", SellIn: 10, Quality: 20},
		{Name: domain.ItemNameAgedBrie, SellIn: 2, Quality: 0},
		{Name: "Elixir of the Mongoose", SellIn: 5, Quality: 7},
		{Name: domain.ItemNameSulfuras, SellIn: 0, Quality: 80},
		{Name: domain.ItemNameSulfuras, SellIn: -1, Quality: 80},
		{Name: domain.ItemNameBackstagePass, SellIn: 15, Quality: 20},
		{Name: domain.ItemNameBackstagePass, SellIn: 10, Quality: 49},
		{Name: domain.ItemNameBackstagePass, SellIn: 5, Quality: 49},
		{Name: "Conjured Mana Cake", SellIn: 3, Quality: 6},
	}
}
