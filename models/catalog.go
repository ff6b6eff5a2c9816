package models

import "strings"

// Platform is the two-valued persona the whole site is skinned by.
// PlatformAll exists only as a catalog affinity tag, never as a
// selected state.
type Platform string

const (
	PlatformShopify   Platform = "shopify"
	PlatformWordPress Platform = "wordpress"
	PlatformAll       Platform = "all"
)

// ParsePlatform validates a selectable platform value. "all" is not
// selectable and parses as invalid.
func ParsePlatform(s string) (Platform, bool) {
	switch Platform(strings.ToLower(strings.TrimSpace(s))) {
	case PlatformShopify:
		return PlatformShopify, true
	case PlatformWordPress:
		return PlatformWordPress, true
	default:
		return "", false
	}
}

// Other flips between the two selectable personas.
func (p Platform) Other() Platform {
	if p == PlatformShopify {
		return PlatformWordPress
	}
	return PlatformShopify
}

// Label is the canonical human-readable platform name used in
// outbound lead payloads.
func (p Platform) Label() string {
	if p == PlatformWordPress {
		return "WordPress"
	}
	return "Shopify"
}

// Matches reports whether a catalog affinity tag admits the selected
// platform.
func (p Platform) Matches(selected Platform) bool {
	return p == selected || p == PlatformAll
}

// Stat is a short label/value pair shown on project cards.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Project is an immutable catalog record, defined at process start.
type Project struct {
	ID           string   `json:"id"`
	IsFeatured   bool     `json:"is_featured,omitempty"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Platform     Platform `json:"platform"`
	Difficulty   string   `json:"difficulty,omitempty"`
	Industry     string   `json:"industry"`
	Image        string   `json:"image"`
	Gallery      []string `json:"gallery,omitempty"`
	Stack        []string `json:"stack"`
	Duration     string   `json:"duration,omitempty"`
	ClientRegion string   `json:"client_region,omitempty"`
	ProjectType  string   `json:"project_type,omitempty"`
	LiveURL      string   `json:"live_url,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
	Stats        []Stat   `json:"stats,omitempty"`
}

// Service is an immutable catalog record describing an offered service.
type Service struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Platform    Platform `json:"platform"`
	Points      []string `json:"points"`
}

type Testimonial struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Role     string   `json:"role"`
	Company  string   `json:"company"`
	Content  string   `json:"content"`
	Avatar   string   `json:"avatar"`
	Rating   int      `json:"rating"`
	Platform Platform `json:"platform,omitempty"`
}
