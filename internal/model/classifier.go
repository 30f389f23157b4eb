package model

import (
	"strings"

	"github.com/actuallystonmai/course-finder/internal/domain"
	"golang.org/x/text/unicode/norm"
)

type keywordGroup struct {
	category domain.Category
	keywords []string
}

// Groups overlap, so order matters: "data structure" has to route to
// programming before the data group gets a chance to see "data".
var keywordGroups = []keywordGroup{
	{
		category: domain.CategoryProgramming,
		keywords: []string{"data structure", "algorithm", "dsa", "leetcode"},
	},
	{
		category: domain.CategoryProgramming,
		keywords: []string{
			"program", "code", "coding", "software", "web", "javascript",
			"python", "react", "java", "c++", "development",
		},
	},
	{
		category: domain.CategoryDesign,
		keywords: []string{"design", "ui", "ux", "graphic", "figma"},
	},
	{
		category: domain.CategoryBusiness,
		keywords: []string{"business", "marketing", "entrepreneur"},
	},
	{
		category: domain.CategoryData,
		keywords: []string{"data science", "data analysis", "analytics", "sql", "machine learning", "ai"},
	},
}

// Classify maps free-text interests to a category by plain substring
// containment. The first matching group wins; anything else is general.
func Classify(interest string) domain.Category {
	text := strings.ToLower(norm.NFKC.String(interest))

	for _, group := range keywordGroups {
		if containsAny(text, group.keywords) {
			return group.category
		}
	}
	return domain.CategoryGeneral
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
