package catalog

import (
	"fmt"
	"slices"

	"github.com/actuallystonmai/course-finder/internal/domain"
)

// Catalog is the fixed category table. It is built once and never mutated;
// every accessor hands out a copy.
type Catalog struct {
	courses map[domain.Category][]domain.Course
}

// New copies the given table into a Catalog. Unknown categories and
// incomplete course records are rejected.
func New(table map[domain.Category][]domain.Course) (*Catalog, error) {
	courses := make(map[domain.Category][]domain.Course, len(table))
	for key, list := range table {
		category, err := domain.ParseCategory(string(key))
		if err != nil {
			return nil, fmt.Errorf("catalog category %q: %w", key, err)
		}
		for i, c := range list {
			if !c.Complete() {
				return nil, fmt.Errorf("catalog %s[%d] %q: incomplete course record", category, i, c.Title)
			}
		}
		courses[category] = append(courses[category], list...)
	}
	return &Catalog{courses: courses}, nil
}

// Courses returns the ordered list for a category.
func (c *Catalog) Courses(category domain.Category) ([]domain.Course, error) {
	list := c.courses[category]
	if len(list) == 0 {
		return nil, fmt.Errorf("lookup %s: %w", category, domain.ErrEmptyCategory)
	}
	return slices.Clone(list), nil
}

// Table returns a copy of the whole table.
func (c *Catalog) Table() map[domain.Category][]domain.Course {
	out := make(map[domain.Category][]domain.Course, len(c.courses))
	for category, list := range c.courses {
		out[category] = slices.Clone(list)
	}
	return out
}

// Missing lists the categories with no courses, in display order.
func (c *Catalog) Missing() []domain.Category {
	var missing []domain.Category
	for _, category := range domain.Categories() {
		if len(c.courses[category]) == 0 {
			missing = append(missing, category)
		}
	}
	return missing
}

// WithFallback returns a catalog where every category missing from c is
// filled from fallback.
func (c *Catalog) WithFallback(fallback *Catalog) *Catalog {
	merged := c.Table()
	for _, category := range c.Missing() {
		if list := fallback.courses[category]; len(list) > 0 {
			merged[category] = slices.Clone(list)
		}
	}
	return &Catalog{courses: merged}
}
