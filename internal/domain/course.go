package domain

import "strings"

type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

type Category string

const (
	CategoryProgramming Category = "programming"
	CategoryDesign      Category = "design"
	CategoryBusiness    Category = "business"
	CategoryData        Category = "data"
	CategoryGeneral     Category = "general"
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{
		CategoryProgramming,
		CategoryDesign,
		CategoryBusiness,
		CategoryData,
		CategoryGeneral,
	}
}

// ParseCategory resolves a category key, ignoring case and surrounding space.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories() {
		if c == known {
			return c, nil
		}
	}
	return "", ErrUnknownCategory
}

// Course is one recommended video. Values are never mutated after construction.
type Course struct {
	Title       string `json:"title"`
	Channel     string `json:"channel"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Duration    string `json:"duration"`
	Level       Level  `json:"level"`
}

// Complete reports whether every field is populated and the level is known.
func (c Course) Complete() bool {
	return c.Title != "" && c.Channel != "" && c.Description != "" &&
		c.URL != "" && c.Duration != "" && c.Level.Valid()
}
