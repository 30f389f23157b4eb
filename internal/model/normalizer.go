package model

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/actuallystonmai/course-finder/internal/domain"
)

const (
	NotAvailable         = "N/A"
	DescriptionMaxLength = 150
	ellipsis             = "..."
	watchURLPrefix       = "https://www.youtube.com/watch?v="

	UntitledVideo  = "Untitled video"
	UnknownChannel = "Unknown channel"
)

var durationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

var (
	beginnerKeywords = []string{"beginner", "introduction", "basics"}
	advancedKeywords = []string{"advanced", "expert", "master"}
)

// ParseDuration turns an ISO-8601 video duration such as PT1H30M5S into
// "1h 30m". Seconds are dropped. Tokens without an hour or minute part
// come back as N/A.
func ParseDuration(token string) string {
	match := durationPattern.FindStringSubmatch(token)
	if match == nil {
		return NotAvailable
	}

	hours, minutes := match[1], match[2]
	switch {
	case hours != "":
		if minutes == "" {
			minutes = "0"
		}
		return fmt.Sprintf("%sh %sm", hours, minutes)
	case minutes != "":
		return minutes + "m"
	default:
		return NotAvailable
	}
}

// DetermineLevel infers a difficulty label from title and description.
// The beginner check runs first, so text naming both resolves to Beginner.
func DetermineLevel(title, description string) domain.Level {
	text := strings.ToLower(title + " " + description)

	if containsAny(text, beginnerKeywords) {
		return domain.LevelBeginner
	}
	if containsAny(text, advancedKeywords) {
		return domain.LevelAdvanced
	}
	return domain.LevelIntermediate
}

// TruncateDescription keeps at most DescriptionMaxLength runes and always
// appends the ellipsis marker.
func TruncateDescription(description string) string {
	runes := []rune(description)
	if len(runes) > DescriptionMaxLength {
		runes = runes[:DescriptionMaxLength]
	}
	return string(runes) + ellipsis
}

func WatchURL(videoID string) string {
	return watchURLPrefix + videoID
}

// VideoMetadata is the subset of an upstream video record needed to build a Course.
type VideoMetadata struct {
	ID          string
	Title       string
	Channel     string
	Description string
	Duration    string
}

// NormalizeVideo builds a Course from raw upstream metadata. Missing title or
// channel fall back to placeholders so the result is always Complete.
func NormalizeVideo(v VideoMetadata) domain.Course {
	return domain.Course{
		Title:       orDefault(v.Title, UntitledVideo),
		Channel:     orDefault(v.Channel, UnknownChannel),
		Description: TruncateDescription(v.Description),
		URL:         WatchURL(v.ID),
		Duration:    ParseDuration(v.Duration),
		Level:       DetermineLevel(v.Title, v.Description),
	}
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
