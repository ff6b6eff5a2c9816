package models

// CategoryAll is the sentinel meaning "no category restriction".
const CategoryAll = "All"

// FilterParams is the per-request filter selection for a project
// listing. Empty sets mean "no restriction"; all predicates are
// conjunctive.
type FilterParams struct {
	Query      string   `json:"query"`
	Industries []string `json:"industries"`
	Stacks     []string `json:"stacks"`
	Category   string   `json:"category"`
}

// FacetOptions are the selectable filter values derived from the
// platform-narrowed catalog: sorted unique non-empty values only, so
// the lists shrink and grow consistently with the active persona.
type FacetOptions struct {
	Industries []string `json:"industries"`
	Stacks     []string `json:"stacks"`
	Categories []string `json:"categories"`
}

// PlatformState is the session's resolved platform persona plus the
// canonical query-string value clients mirror into the page URL
// (history replace, no scroll).
type PlatformState struct {
	Platform Platform `json:"platform"`
	Source   string   `json:"source" example:"query"`
	URLQuery string   `json:"url_query" example:"platform=shopify"`
}
