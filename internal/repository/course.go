package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/actuallystonmai/course-finder/internal/domain"
)

type courseRow struct {
	Category string
	Position int
	domain.Course
}

// LoadCatalog reads the curated course table, ordered per category.
func (r *Repository) LoadCatalog(ctx context.Context) (map[domain.Category][]domain.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT category, position, title, channel, description, url, duration, level
		FROM courses
		ORDER BY category, position`,
	)
	if err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}
	defer rows.Close()

	var items []courseRow
	for rows.Next() {
		var row courseRow
		var level string
		err := rows.Scan(&row.Category, &row.Position, &row.Title, &row.Channel,
			&row.Description, &row.URL, &row.Duration, &level)
		if err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		row.Level = domain.Level(level)
		items = append(items, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over courses: %w", err)
	}
	return groupRows(items)
}

// CountCourses returns the number of curated courses stored.
func (r *Repository) CountCourses(ctx context.Context) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM courses`,
	).Scan(&total)

	if err != nil {
		return 0, fmt.Errorf("count courses: %w", err)
	}
	return total, nil
}

func groupRows(items []courseRow) (map[domain.Category][]domain.Course, error) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Position < items[j].Position
	})

	table := make(map[domain.Category][]domain.Course)
	for _, item := range items {
		category, err := domain.ParseCategory(item.Category)
		if err != nil {
			return nil, fmt.Errorf("course %q: %w", item.Title, err)
		}
		if !item.Level.Valid() {
			return nil, fmt.Errorf("course %q: invalid level %q", item.Title, item.Level)
		}
		table[category] = append(table[category], item.Course)
	}
	return table, nil
}
