package project_controller

import (
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/alexchen-dev/portfolio-backend/models"
)

// parseFilters reads the catalog filter params from the query string.
// Repeatable params (industry, stack) accept both repeated keys and
// comma-separated values.
func parseFilters(c *gin.Context) models.FilterParams {
	return models.FilterParams{
		Query:      c.Query("q"),
		Category:   c.Query("category"),
		Industries: parseMulti(c.QueryArray("industry")),
		Stacks:     parseMulti(c.QueryArray("stack")),
	}
}

func parseMulti(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// filterKey is a stable identity for one platform+filter combination.
// The reveal window resets whenever the key changes, so a new result
// set never inherits the previous set's growth.
func filterKey(platform models.Platform, params models.FilterParams) string {
	industries := append([]string(nil), params.Industries...)
	stacks := append([]string(nil), params.Stacks...)
	sort.Strings(industries)
	sort.Strings(stacks)

	var b strings.Builder
	b.WriteString(string(platform))
	b.WriteString("|q=")
	b.WriteString(strings.ToLower(strings.TrimSpace(params.Query)))
	b.WriteString("|c=")
	b.WriteString(params.Category)
	b.WriteString("|i=")
	b.WriteString(strings.Join(industries, ","))
	b.WriteString("|s=")
	b.WriteString(strings.Join(stacks, ","))
	return b.String()
}
