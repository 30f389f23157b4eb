package domain

type Source string

const (
	SourceStatic   Source = "static"
	SourceExternal Source = "external"
	SourcePopular  Source = "popular"
)

// Recommendation is one result set. Notice carries a transient, user-facing
// message when the external search failed and a fallback list was served.
type Recommendation struct {
	Category Category `json:"category,omitempty"`
	Source   Source   `json:"source"`
	Courses  []Course `json:"courses"`
	Notice   string   `json:"notice,omitempty"`
}

type RecommendationMeta struct {
	GeneratedAt string `json:"generated_at"`
	TotalCount  int    `json:"total_count"`
}
