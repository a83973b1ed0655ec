package domain

import (
	"encoding/json"
	"fmt"

	"golang.org/x/text/cases"
)

// Category selects which aging rule applies to an item
type Category int

const (
	CategoryNormal Category = iota
	CategoryAgedBrie
	CategoryBackstagePass
	CategoryLegendary
	CategoryConjured
)

// Item names recognised by the aging rules
const (
	ItemNameAgedBrie      = "Aged Brie"
	ItemNameBackstagePass = "Backstage passes to a TAFKAL80ETC concert"
	ItemNameSulfuras      = "Sulfuras, Hand of Ragnaros"
	ItemPrefixConjured    = "Conjured"
)

var categoryKeys = map[Category]string{
	CategoryNormal:        "normal",
	CategoryAgedBrie:      "aged_brie",
	CategoryBackstagePass: "backstage_pass",
	CategoryLegendary:     "legendary",
	CategoryConjured:      "conjured",
}

// Categories lists every category in declaration order
func Categories() []Category {
	return []Category{
		CategoryNormal,
		CategoryAgedBrie,
		CategoryBackstagePass,
		CategoryLegendary,
		CategoryConjured,
	}
}

func (c Category) String() string {
	if key, ok := categoryKeys[c]; ok {
		return key
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// MarshalJSON encodes the category as its key
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a category key
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory resolves a category key, ignoring case
func ParseCategory(s string) (Category, error) {
	folder := cases.Fold()
	needle := folder.String(s)
	for _, c := range Categories() {
		if folder.String(categoryKeys[c]) == needle {
			return c, nil
		}
	}
	return CategoryNormal, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
