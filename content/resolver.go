// Package content resolves the themed site copy for a platform persona.
// Resolution is a total, pure lookup. Every selectable platform maps to
// a complete bundle, so callers never merge or fall back across
// personas.
package content

import "github.com/alexchen-dev/portfolio-backend/models"

// Resolve returns the full content bundle for the given platform. An
// unrecognized platform resolves to the Shopify bundle, matching the
// site default.
func Resolve(platform models.Platform) models.ContentBundle {
	if platform == models.PlatformWordPress {
		return wordpressBundle
	}
	return shopifyBundle
}

// Testimonials are shared across personas.
var shopifyBundle = models.ContentBundle{
	Platform: models.PlatformShopify,
	Theme: models.Theme{
		Accent:      "emerald",
		AccentHex:   "#10b981",
		GradientTo:  "violet",
		BadgeColor:  "green",
		ButtonColor: "indigo",
	},
	Hero: models.HeroContent{
		Badge:          "Accepting Shopify Plus Projects",
		TitleStart:     "Scaling Brands on",
		TitleHighlight: "Shopify.",
		Description:    "Expert Shopify Development for high-growth e-commerce brands. I build custom themes, private apps, and headless storefronts that convert visitors into loyal customers.",
		StatLabel:      "Stores Launched",
		CTA:            "Scale Your Store",
	},
	About: models.AboutContent{
		Specialization: "Shopify Plus Expert",
		ROILabel:       "Client ROI",
		ROIValue:       "Average +25% CVR",
		TitleStart:     "Building commerce that",
		TitleHighlight: "powers the future.",
		Intro:          "I'm a Shopify-focused engineer with a deep passion for e-commerce growth. For over 8 years, I've helped brands move from basic storefronts to high-performance, conversion-optimized machines.",
		Bio: []string{
			"My expertise lies at the intersection of technical excellence and business results. I architect systems that handle millions in revenue, from custom Shopify Plus scripts to headless storefronts.",
			"From boutique brands to multinational corporations, my goal is always frictionless shopping experiences.",
		},
		Recognitions: []models.Recognition{
			{Type: "Official Partner", Title: "Shopify Plus Partner", Description: "Certified excellence in Plus store management."},
			{Type: "Speaker", Title: "Shopify Unite 2023", Description: "Presented on Headless Storefront Performance."},
		},
		Experience: []models.ExperienceEntry{
			{Year: "2020 - Present", Title: "Lead Shopify Architect", Company: "Commerce Growth Agency"},
			{Year: "2016 - 2020", Title: "Independent Shopify Dev", Company: "Freelance Portfolio"},
		},
	},
	FAQs: []models.FAQ{
		{Question: "How fast can you start?", Answer: "Small tasks: 24-48 hours. Full builds: Scheduled after scope review."},
		{Question: "Do you work with PageFly?", Answer: "Yes. I build pixel-perfect layouts from Figma to PageFly/GemPages."},
		{Question: "Do you do SEO?", Answer: "Yes. I handle technical SEO (Liquid, Schema, Meta) and speed."},
	},
	ProjectOptions: []models.ProjectOption{
		{ID: "theme", Title: "Theme Build / Customization", Description: "OS 2.0 sections, Liquid edits, PDP and collection improvements.", Price: "From $500", Icon: "Monitor"},
		{ID: "builder", Title: "Landing Page (PageFly)", Description: "Figma to PageFly/GemPages with responsive QA and clean flow.", Price: "From $250", Icon: "ShoppingBag"},
		{ID: "bugfix", Title: "Bug Fixing + QA", Description: "Fix layout breaks, app conflicts, and template bugs safely.", Price: "$35 / hour", Icon: "Smartphone"},
		{ID: "audit", Title: "Speed + CRO Audit", Description: "Performance, SEO hygiene, and conversion review.", Price: "$150 flat", Icon: "HelpCircle"},
	},
	Features: []models.FeatureOption{
		{ID: "custom-sections", Label: "Custom Liquid sections"},
		{ID: "builder-page", Label: "PageFly / GemPages build"},
		{ID: "pdp-ux", Label: "PDP UX Improvements"},
		{ID: "speed", Label: "Speed optimization (CWV)"},
		{ID: "seo", Label: "SEO fixes (Liquid/Meta)"},
		{ID: "apps", Label: "App integration"},
	},
	Timelines: timelineSlots,
}

var wordpressBundle = models.ContentBundle{
	Platform: models.PlatformWordPress,
	Theme: models.Theme{
		Accent:      "blue",
		AccentHex:   "#2563eb",
		GradientTo:  "cyan",
		BadgeColor:  "blue",
		ButtonColor: "blue",
	},
	Hero: models.HeroContent{
		Badge:          "Accepting Custom WP Projects",
		TitleStart:     "Digital Experiences on",
		TitleHighlight: "WordPress.",
		Description:    "High-performance WordPress development for businesses and publishers. I build custom themes, plugins, and headless setups that are fast, secure, and easy to manage.",
		StatLabel:      "Sites Launched",
		CTA:            "Start Your Build",
	},
	About: models.AboutContent{
		Specialization: "Custom WP Expert",
		ROILabel:       "Performance",
		ROIValue:       "99/100 Speed Scores",
		TitleStart:     "Crafting digital experiences",
		TitleHighlight: "that scale globally.",
		Intro:          "I'm a WordPress-focused engineer building secure and scalable content platforms.",
		Bio: []string{
			"From custom PHP themes to headless WP with Next.js and WPGraphQL.",
			"Every project is optimized for performance, security, and maintainability.",
		},
		Recognitions: []models.Recognition{
			{Type: "Certified Expert", Title: "Codeable Expert", Description: "Top 2% of WordPress developers globally."},
			{Type: "Contributor", Title: "WordPress Core", Description: "Open-source contributor."},
		},
		Experience: []models.ExperienceEntry{
			{Year: "2020 - Present", Title: "Lead WP Architect", Company: "Digital Enterprise Solutions"},
			{Year: "2016 - 2020", Title: "Senior PHP Developer", Company: "Creative Web Agency"},
		},
	},
	FAQs: []models.FAQ{
		{Question: "Do you use Elementor?", Answer: "Yes, I can build custom Elementor widgets or full themes."},
		{Question: "Can you fix a hacked site?", Answer: "Yes, I perform malware removal and security hardening."},
		{Question: "Do you build Headless WP?", Answer: "Yes, using Next.js or Gatsby with WordPress as the CMS."},
	},
	ProjectOptions: []models.ProjectOption{
		{ID: "wp-theme", Title: "Custom Theme Dev", Description: "Bespoke WordPress themes built from scratch or starter themes.", Price: "From $800", Icon: "Layout"},
		{ID: "wp-plugin", Title: "Plugin / Functionality", Description: "Custom plugins, API integrations, and PHP logic.", Price: "From $400", Icon: "Database"},
		{ID: "wp-fix", Title: "Maintenance & Fixes", Description: "Security patches, updates, and fixing broken layouts.", Price: "$40 / hour", Icon: "Shield"},
		{ID: "wp-speed", Title: "Speed Optimization", Description: "Caching setup, image optimization, and database cleanup.", Price: "$200 flat", Icon: "Code2"},
	},
	Features: []models.FeatureOption{
		{ID: "custom-post", Label: "Custom Post Types (CPT)"},
		{ID: "elementor", Label: "Elementor / Divi Widget"},
		{ID: "acf", Label: "ACF Implementation"},
		{ID: "security", Label: "Security Hardening"},
		{ID: "migration", Label: "Migration to WP"},
		{ID: "api", Label: "3rd Party API Setup"},
	},
	Timelines: timelineSlots,
}

var timelineSlots = []models.TimelineSlot{
	{ID: "asap", Label: "ASAP"},
	{ID: "1-week", Label: "Within 1 week"},
	{ID: "2-3-weeks", Label: "2-3 weeks"},
	{ID: "1-month", Label: "Within 1 month"},
	{ID: "flexible", Label: "Flexible"},
}

// ProjectOption returns the Step 1 option with the given id for the
// platform, if any.
func ProjectOption(platform models.Platform, id string) (models.ProjectOption, bool) {
	for _, opt := range Resolve(platform).ProjectOptions {
		if opt.ID == id {
			return opt, true
		}
	}
	return models.ProjectOption{}, false
}
