package seeds

import (
	"context"
	"fmt"
	"strings"

	"github.com/actuallystonmai/course-finder/internal/domain"
	"github.com/actuallystonmai/course-finder/internal/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

const columnsPerRow = 8

// Setup replaces the stored course table with the given one.
func Setup(ctx context.Context, pool *pgxpool.Pool, table map[domain.Category][]domain.Course, log *logger.Logger) error {
	log = log.Component("seed")

	// Truncate existing data before insert
	log.Info("truncating existing courses")
	if _, err := pool.Exec(ctx, `TRUNCATE courses RESTART IDENTITY`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	query, args := buildInsert(table)
	if len(args) == 0 {
		return nil
	}

	log.Info("inserting courses", "count", len(args)/columnsPerRow)
	if _, err := pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("seed courses: %w", err)
	}

	log.Info("seeding complete")
	return nil
}

// buildInsert renders one multi-row INSERT, walking categories in display
// order so positions are stable.
func buildInsert(table map[domain.Category][]domain.Course) (string, []any) {
	rows := []string{}
	args := []any{}

	for _, category := range domain.Categories() {
		for pos, c := range table[category] {
			base := len(args)
			placeholders := make([]string, columnsPerRow)
			for i := range placeholders {
				placeholders[i] = fmt.Sprintf("$%d", base+i+1)
			}
			rows = append(rows, "("+strings.Join(placeholders, ", ")+")")
			args = append(args, string(category), pos+1, c.Title, c.Channel,
				c.Description, c.URL, c.Duration, string(c.Level))
		}
	}

	if len(rows) == 0 {
		return "", nil
	}

	query := "INSERT INTO courses (category, position, title, channel, description, url, duration, level) VALUES " +
		strings.Join(rows, ", ")
	return query, args
}
