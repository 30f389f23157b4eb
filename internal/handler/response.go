package handler

import "github.com/actuallystonmai/course-finder/internal/domain"

type RecommendationResponse struct {
	Interest string                    `json:"interest,omitempty"`
	Category domain.Category           `json:"category,omitempty"`
	Source   domain.Source             `json:"source"`
	Courses  []domain.Course           `json:"courses"`
	Notice   string                    `json:"notice,omitempty"`
	Metadata domain.RecommendationMeta `json:"metadata"`
}

type CategoriesResponse struct {
	Categories []domain.Category `json:"categories"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Mode   string `json:"mode"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
