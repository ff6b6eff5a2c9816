package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexchen-dev/portfolio-backend/models"
)

func TestResolve(t *testing.T) {
	t.Run("every platform resolves to a complete bundle", func(t *testing.T) {
		for _, platform := range []models.Platform{models.PlatformShopify, models.PlatformWordPress} {
			bundle := Resolve(platform)
			assert.Equal(t, platform, bundle.Platform)
			assert.NotEmpty(t, bundle.Hero.TitleHighlight)
			assert.NotEmpty(t, bundle.About.Intro)
			assert.NotEmpty(t, bundle.FAQs)
			assert.NotEmpty(t, bundle.ProjectOptions)
			assert.NotEmpty(t, bundle.Features)
			assert.NotEmpty(t, bundle.Timelines)
			assert.NotEmpty(t, bundle.Theme.AccentHex)
		}
	})

	t.Run("unknown platform falls back to shopify", func(t *testing.T) {
		bundle := Resolve(models.Platform("wix"))
		assert.Equal(t, models.PlatformShopify, bundle.Platform)
	})

	t.Run("personas never share project options", func(t *testing.T) {
		shopify := Resolve(models.PlatformShopify)
		wordpress := Resolve(models.PlatformWordPress)
		for _, s := range shopify.ProjectOptions {
			for _, w := range wordpress.ProjectOptions {
				assert.NotEqual(t, s.ID, w.ID)
			}
		}
	})

	t.Run("resolution is pure", func(t *testing.T) {
		a := Resolve(models.PlatformWordPress)
		b := Resolve(models.PlatformWordPress)
		assert.Equal(t, a, b)
	})
}

func TestProjectOption(t *testing.T) {
	t.Run("finds platform-scoped options", func(t *testing.T) {
		opt, ok := ProjectOption(models.PlatformShopify, "theme")
		require.True(t, ok)
		assert.Equal(t, "Theme Build / Customization", opt.Title)
	})

	t.Run("options do not leak across personas", func(t *testing.T) {
		_, ok := ProjectOption(models.PlatformWordPress, "theme")
		assert.False(t, ok)

		_, ok = ProjectOption(models.PlatformShopify, "wp-theme")
		assert.False(t, ok)
	})

	t.Run("unknown id misses", func(t *testing.T) {
		_, ok := ProjectOption(models.PlatformShopify, "")
		assert.False(t, ok)
	})
}
