package classify

import (
	"strings"
)

// Classifier maps file extensions to category labels using an ordered
// category table. The zero value is not usable; construct with New.
type Classifier struct {
	table []Category
}

// New creates a classifier over the given table. Pass DefaultTable for
// the built-in categories.
func New(table []Category) *Classifier {
	return &Classifier{table: table}
}

// CategoryOf returns the label of the first category in table order
// whose extension set contains ext. Comparison is case-insensitive.
// Unmatched extensions fall into the catch-all label. Never fails.
func (c *Classifier) CategoryOf(ext string) string {
	ext = strings.ToLower(ext)
	for _, category := range c.table {
		for _, candidate := range category.Extensions {
			if candidate == ext {
				return category.Label
			}
		}
	}
	return CatchAll
}

// Table returns the classifier's category table. The caller must treat
// it as read-only.
func (c *Classifier) Table() []Category {
	return c.table
}
