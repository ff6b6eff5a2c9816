package catalog

import (
	"sort"
	"strings"

	"github.com/alexchen-dev/portfolio-backend/models"
)

// Speed-category special case: the "Speed" category also matches
// projects carrying the "Performance" stack tag, even when the
// category field itself does not mention it. This is a literal rule,
// not a general category/tag mapping.
const (
	speedCategory  = "Speed"
	performanceTag = "Performance"
)

// FilterProjects computes the visible subset for (platform, params).
// All predicates are conjunctive, the input is never mutated, and the
// output preserves catalog order. Absent optional fields are treated
// as empty, never as errors.
func FilterProjects(projects []models.Project, platform models.Platform, params models.FilterParams) []models.Project {
	query := strings.ToLower(strings.TrimSpace(params.Query))

	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if !p.Platform.Matches(platform) {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		if !matchesCategory(p, params.Category) {
			continue
		}
		if len(params.Industries) > 0 && !containsString(params.Industries, p.Industry) {
			continue
		}
		if len(params.Stacks) > 0 && !intersects(p.Stack, params.Stacks) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterServices narrows services to the active persona.
func FilterServices(services []models.Service, platform models.Platform) []models.Service {
	out := make([]models.Service, 0, len(services))
	for _, s := range services {
		if s.Platform.Matches(platform) {
			out = append(out, s)
		}
	}
	return out
}

func matchesQuery(p models.Project, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), query) {
		return true
	}
	for _, tag := range p.Stack {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func matchesCategory(p models.Project, category string) bool {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, models.CategoryAll) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Category), strings.ToLower(category)) {
		return true
	}
	if strings.EqualFold(category, speedCategory) {
		for _, tag := range p.Stack {
			if strings.EqualFold(tag, performanceTag) {
				return true
			}
		}
	}
	return false
}

// FacetOptions derives the selectable facet values from the
// platform-narrowed catalog: sorted unique non-empty values only.
func FacetOptions(projects []models.Project, platform models.Platform) models.FacetOptions {
	industries := map[string]struct{}{}
	stacks := map[string]struct{}{}
	categories := map[string]struct{}{}

	for _, p := range projects {
		if !p.Platform.Matches(platform) {
			continue
		}
		if p.Industry != "" {
			industries[p.Industry] = struct{}{}
		}
		if p.Category != "" {
			categories[p.Category] = struct{}{}
		}
		for _, tag := range p.Stack {
			if tag != "" {
				stacks[tag] = struct{}{}
			}
		}
	}

	return models.FacetOptions{
		Industries: sortedKeys(industries),
		Stacks:     sortedKeys(stacks),
		Categories: sortedKeys(categories),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, v := range a {
		if containsString(b, v) {
			return true
		}
	}
	return false
}
