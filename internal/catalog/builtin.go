package catalog

import "github.com/actuallystonmai/course-finder/internal/domain"

var builtin = mustBuiltin()

// Builtin returns the curated catalog compiled into the binary.
func Builtin() *Catalog {
	return builtin
}

func mustBuiltin() *Catalog {
	c, err := New(builtinTable())
	if err != nil {
		panic(err)
	}
	return c
}

func builtinTable() map[domain.Category][]domain.Course {
	return map[domain.Category][]domain.Course{
		domain.CategoryProgramming: {
			{
				Title:       "Python for Beginners - Full Course",
				Channel:     "freeCodeCamp.org",
				Description: "Learn Python programming from scratch with hands-on projects",
				URL:         "https://www.youtube.com/watch?v=rfscVS0vtbw",
				Duration:    "4h 26m",
				Level:       domain.LevelBeginner,
			},
			{
				Title:       "JavaScript Full Course",
				Channel:     "Bro Code",
				Description: "Complete JavaScript tutorial covering all fundamentals",
				URL:         "https://www.youtube.com/watch?v=lfmg-EJ8gm4",
				Duration:    "8h 5m",
				Level:       domain.LevelBeginner,
			},
			{
				Title:       "React Course - Beginner's Tutorial",
				Channel:     "freeCodeCamp.org",
				Description: "Build modern web applications with React",
				URL:         "https://www.youtube.com/watch?v=bMknfKXIFA8",
				Duration:    "11h 55m",
				Level:       domain.LevelIntermediate,
			},
			{
				Title:       "Data Structures and Algorithms Full Course",
				Channel:     "freeCodeCamp.org",
				Description: "Master DSA concepts with practical implementations",
				URL:         "https://www.youtube.com/watch?v=8hly31xKli0",
				Duration:    "5h",
				Level:       domain.LevelIntermediate,
			},
			{
				Title:       "Data Structures Easy to Advanced Course",
				Channel:     "freeCodeCamp.org",
				Description: "Complete guide to data structures from basics to advanced",
				URL:         "https://www.youtube.com/watch?v=RBSGKlAvoiM",
				Duration:    "9h 53m",
				Level:       domain.LevelIntermediate,
			},
		},
		domain.CategoryDesign: {
			{
				Title:       "Figma UI Design Tutorial",
				Channel:     "DesignCourse",
				Description: "Master Figma for UI/UX design from basics to advanced",
				URL:         "https://www.youtube.com/watch?v=FTFaQWZBqQ8",
				Duration:    "2h 15m",
				Level:       domain.LevelBeginner,
			},
			{
				Title:       "Adobe Illustrator Full Course",
				Channel:     "Envato Tuts+",
				Description: "Complete guide to vector graphics and illustration",
				URL:         "https://www.youtube.com/watch?v=Ib8UBwu3yGA",
				Duration:    "3h 30m",
				Level:       domain.LevelBeginner,
			},
		},
		domain.CategoryBusiness: {
			{
				Title:       "Digital Marketing Full Course",
				Channel:     "Simplilearn",
				Description: "Learn SEO, social media, email marketing and more",
				URL:         "https://www.youtube.com/watch?v=nU-IIXBWlS4",
				Duration:    "11h",
				Level:       domain.LevelBeginner,
			},
			{
				Title:       "Business Strategy Course",
				Channel:     "Corporate Finance Institute",
				Description: "Strategic planning and business development fundamentals",
				URL:         "https://www.youtube.com/watch?v=8DJccJb5N_k",
				Duration:    "2h 45m",
				Level:       domain.LevelIntermediate,
			},
		},
		domain.CategoryData: {
			{
				Title:       "Data Analysis with Python",
				Channel:     "freeCodeCamp.org",
				Description: "Learn data analysis using Python, NumPy, and Pandas",
				URL:         "https://www.youtube.com/watch?v=r-uOLxNrNk8",
				Duration:    "10h",
				Level:       domain.LevelIntermediate,
			},
			{
				Title:       "SQL Tutorial - Full Course",
				Channel:     "freeCodeCamp.org",
				Description: "Complete SQL course for beginners",
				URL:         "https://www.youtube.com/watch?v=HXV3zeQKqGY",
				Duration:    "4h 20m",
				Level:       domain.LevelBeginner,
			},
		},
		domain.CategoryGeneral: {
			{
				Title:       "CS50's Introduction to Computer Science",
				Channel:     "CS50",
				Description: "Harvard's introduction to computer science",
				URL:         "https://www.youtube.com/watch?v=8mAITcNt710",
				Duration:    "25h",
				Level:       domain.LevelBeginner,
			},
			{
				Title:       "Excel Full Course",
				Channel:     "freeCodeCamp.org",
				Description: "Master Microsoft Excel from basics to advanced",
				URL:         "https://www.youtube.com/watch?v=Vl0H-qTclOg",
				Duration:    "7h 5m",
				Level:       domain.LevelBeginner,
			},
			{
				Title:       "Photoshop Tutorial for Beginners",
				Channel:     "Envato Tuts+",
				Description: "Complete Photoshop course covering all tools",
				URL:         "https://www.youtube.com/watch?v=IyR_uYsRdPs",
				Duration:    "4h 30m",
				Level:       domain.LevelBeginner,
			},
		},
	}
}
