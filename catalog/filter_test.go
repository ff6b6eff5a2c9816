package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexchen-dev/portfolio-backend/models"
)

func testProjects() []models.Project {
	return []models.Project{
		{
			ID: "s1", Title: "Vilasha", Description: "Premium fashion storefront",
			Category: "Themes", Platform: models.PlatformShopify,
			Industry: "Fashion & Apparel", Stack: []string{"Shopify", "Liquid", "SEO"},
		},
		{
			ID: "s2", Title: "MaleIQ Funnel", Description: "PageFly landing page",
			Category: "Page Builders", Platform: models.PlatformShopify,
			Industry: "Health & Wellness", Stack: []string{"Shopify", "PageFly", "CRO"},
		},
		{
			ID: "s3", Title: "Speedster", Description: "Performance tuning pass",
			Category: "Themes", Platform: models.PlatformShopify,
			Industry: "Automotive", Stack: []string{"Shopify", "Performance"},
		},
		{
			ID: "w1", Title: "TechFlow Blog", Description: "WordPress news portal",
			Category: "WordPress", Platform: models.PlatformWordPress,
			Industry: "Technology", Stack: []string{"WordPress", "Elementor", "PHP"},
		},
		{
			ID: "a1", Title: "Everywhere", Description: "Shown on both personas",
			Category: "Custom Coded", Platform: models.PlatformAll,
			Industry: "Technology", Stack: []string{"JavaScript"},
		},
	}
}

func ids(projects []models.Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
}

func TestFilterProjects_PlatformNarrowing(t *testing.T) {
	projects := testProjects()

	t.Run("shopify sees shopify and all-affinity projects", func(t *testing.T) {
		got := FilterProjects(projects, models.PlatformShopify, models.FilterParams{})
		assert.Equal(t, []string{"s1", "s2", "s3", "a1"}, ids(got))
	})

	t.Run("wordpress sees wordpress and all-affinity projects", func(t *testing.T) {
		got := FilterProjects(projects, models.PlatformWordPress, models.FilterParams{})
		assert.Equal(t, []string{"w1", "a1"}, ids(got))
	})

	t.Run("no project appears on both personas unless all-affinity", func(t *testing.T) {
		shopify := ids(FilterProjects(projects, models.PlatformShopify, models.FilterParams{}))
		wordpress := ids(FilterProjects(projects, models.PlatformWordPress, models.FilterParams{}))
		for _, id := range shopify {
			if id == "a1" {
				continue
			}
			assert.NotContains(t, wordpress, id)
		}
	})
}

func TestFilterProjects_Query(t *testing.T) {
	projects := testProjects()

	t.Run("matches title case-insensitively", func(t *testing.T) {
		got := FilterProjects(projects, models.PlatformShopify, models.FilterParams{Query: "vILaSha"})
		assert.Equal(t, []string{"s1"}, ids(got))
	})

	t.Run("matches description substring", func(t *testing.T) {
		got := FilterProjects(projects, models.PlatformShopify, models.FilterParams{Query: "landing"})
		assert.Equal(t, []string{"s2"}, ids(got))
	})

	t.Run("matches stack tags", func(t *testing.T) {
		got := FilterProjects(projects, models.PlatformShopify, models.FilterParams{Query: "pagefly"})
		assert.Equal(t, []string{"s2"}, ids(got))
	})

	t.Run("whitespace-only query matches everything", func(t *testing.T) {
		got := FilterProjects(projects, models.PlatformShopify, models.FilterParams{Query: "   "})
		assert.Len(t, got, 4)
	})
}

func TestFilterProjects_Category(t *testing.T) {
	projects := testProjects()

	t.Run("All sentinel disables category filtering", func(t *testing.T) {
		got := FilterProjects(projects, models.PlatformShopify, models.FilterParams{Category: models.CategoryAll})
		assert.Len(t, got, 4)
	})

	t.Run("contains match on category", func(t *testing.T) {
		got := FilterProjects(projects, models.PlatformShopify, models.FilterParams{Category: "Themes"})
		assert.Equal(t, []string{"s1", "s3"}, ids(got))
	})

	t.Run("Speed category matches projects with a Performance stack tag", func(t *testing.T) {
		got := FilterProjects(projects, models.PlatformShopify, models.FilterParams{Category: "Speed"})
		assert.Equal(t, []string{"s3"}, ids(got))
	})
}

func TestFilterProjects_Conjunction(t *testing.T) {
	projects := testProjects()

	t.Run("all active filters must hold", func(t *testing.T) {
		got := FilterProjects(projects, models.PlatformShopify, models.FilterParams{
			Query:      "shopify",
			Category:   "Themes",
			Industries: []string{"Fashion & Apparel"},
		})
		assert.Equal(t, []string{"s1"}, ids(got))
	})

	t.Run("adding a filter never grows the result", func(t *testing.T) {
		base := FilterProjects(projects, models.PlatformShopify, models.FilterParams{Query: "shopify"})
		narrowed := FilterProjects(projects, models.PlatformShopify, models.FilterParams{
			Query:      "shopify",
			Industries: []string{"Automotive"},
		})
		assert.LessOrEqual(t, len(narrowed), len(base))
		for _, id := range ids(narrowed) {
			assert.Contains(t, ids(base), id)
		}
	})

	t.Run("stack filter is set intersection", func(t *testing.T) {
		got := FilterProjects(projects, models.PlatformShopify, models.FilterParams{
			Stacks: []string{"PageFly", "Liquid"},
		})
		assert.Equal(t, []string{"s1", "s2"}, ids(got))
	})
}

func TestFilterProjects_OrderAndIdempotence(t *testing.T) {
	projects := testProjects()

	t.Run("catalog order is preserved", func(t *testing.T) {
		got := FilterProjects(projects, models.PlatformShopify, models.FilterParams{})
		require.Len(t, got, 4)
		assert.Equal(t, []string{"s1", "s2", "s3", "a1"}, ids(got))
	})

	t.Run("filtering an already filtered list is stable", func(t *testing.T) {
		params := models.FilterParams{Category: "Themes"}
		once := FilterProjects(projects, models.PlatformShopify, params)
		twice := FilterProjects(once, models.PlatformShopify, params)
		assert.Equal(t, ids(once), ids(twice))
	})
}

func TestFilterProjects_MissingFields(t *testing.T) {
	sparse := []models.Project{
		{ID: "x1", Title: "Bare", Platform: models.PlatformShopify},
	}

	t.Run("projects without optional fields never panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			FilterProjects(sparse, models.PlatformShopify, models.FilterParams{
				Query:      "bare",
				Category:   "Themes",
				Industries: []string{"Fashion & Apparel"},
				Stacks:     []string{"Shopify"},
			})
		})
	})

	t.Run("empty industry excludes under industry filter", func(t *testing.T) {
		got := FilterProjects(sparse, models.PlatformShopify, models.FilterParams{
			Industries: []string{"Fashion & Apparel"},
		})
		assert.Empty(t, got)
	})
}

func TestFilterServices(t *testing.T) {
	services := []models.Service{
		{ID: "svc-s", Platform: models.PlatformShopify},
		{ID: "svc-w", Platform: models.PlatformWordPress},
		{ID: "svc-a", Platform: models.PlatformAll},
	}

	got := FilterServices(services, models.PlatformWordPress)
	assert.Equal(t, 2, len(got))
	assert.Equal(t, "svc-w", got[0].ID)
	assert.Equal(t, "svc-a", got[1].ID)
}

func TestFacetOptions(t *testing.T) {
	projects := testProjects()

	t.Run("facets are sorted and de-duplicated", func(t *testing.T) {
		facets := FacetOptions(projects, models.PlatformShopify)
		assert.Equal(t, []string{"Automotive", "Fashion & Apparel", "Health & Wellness", "Technology"}, facets.Industries)
		assert.Contains(t, facets.Stacks, "Shopify")
		assert.Contains(t, facets.Categories, "Themes")
	})

	t.Run("facets come from the platform-narrowed catalog only", func(t *testing.T) {
		facets := FacetOptions(projects, models.PlatformShopify)
		assert.NotContains(t, facets.Stacks, "Elementor")
		assert.NotContains(t, facets.Categories, "WordPress")
	})

	t.Run("empty values are dropped", func(t *testing.T) {
		withEmpty := append(projects, models.Project{ID: "e1", Platform: models.PlatformShopify})
		facets := FacetOptions(withEmpty, models.PlatformShopify)
		assert.NotContains(t, facets.Industries, "")
		assert.NotContains(t, facets.Categories, "")
	})
}

func TestEmbeddedCatalog(t *testing.T) {
	store := Default()

	t.Run("every project parses to a known platform", func(t *testing.T) {
		for _, p := range store.Projects() {
			valid := p.Platform == models.PlatformShopify ||
				p.Platform == models.PlatformWordPress ||
				p.Platform == models.PlatformAll
			assert.True(t, valid, "project %s has platform %q", p.ID, p.Platform)
		}
	})

	t.Run("project lookup by id", func(t *testing.T) {
		p, ok := store.ProjectByID("wp-1")
		require.True(t, ok)
		assert.Equal(t, models.PlatformWordPress, p.Platform)

		_, ok = store.ProjectByID("nope")
		assert.False(t, ok)
	})

	t.Run("both personas have services", func(t *testing.T) {
		assert.NotEmpty(t, FilterServices(store.Services(), models.PlatformShopify))
		assert.NotEmpty(t, FilterServices(store.Services(), models.PlatformWordPress))
	})
}
