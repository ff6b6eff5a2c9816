package catalog

import "github.com/alexchen-dev/portfolio-backend/models"

var serviceData = []models.Service{
	{
		ID:          "themes",
		Title:       "Custom Theme and Section Development",
		Description: "Custom Online Store 2.0 sections and theme improvements built in Liquid with clean, maintainable code and strong performance.",
		Icon:        "Monitor",
		Platform:    models.PlatformShopify,
		Points: []string{
			"Custom OS 2.0 sections",
			"Pixel-accurate implementation",
			"Clean, maintainable Liquid",
			"Mobile-first responsive layouts",
		},
	},
	{
		ID:          "pagebuilders",
		Title:       "Page Builder Landing Pages",
		Description: "High-converting landing pages built in PageFly, GemPages, Replo, or LayoutHub, matched to your brand and optimized for mobile.",
		Icon:        "Layers",
		Platform:    models.PlatformShopify,
		Points: []string{
			"PageFly builds and fixes",
			"GemPages product and funnel pages",
			"Replo premium layouts",
			"LayoutHub quick builds",
		},
	},
	{
		ID:          "figma",
		Title:       "Figma to Shopify Implementation",
		Description: "Figma designs converted into Shopify sections or page builder templates with consistent spacing, typography, and responsive behavior.",
		Icon:        "PenTool",
		Platform:    models.PlatformShopify,
		Points: []string{
			"Figma to Liquid sections",
			"Figma to PageFly or GemPages",
			"Reusable blocks and components",
			"Cross-device QA",
		},
	},
	{
		ID:          "speed",
		Title:       "Shopify Speed Optimization",
		Description: "Speed improvements focused on Lighthouse metrics, Core Web Vitals, and real storefront usability without breaking the design.",
		Icon:        "Gauge",
		Platform:    models.PlatformShopify,
		Points: []string{
			"Lighthouse and CWV audit",
			"Image and script optimization",
			"Theme bloat cleanup",
			"Faster mobile load time",
		},
	},
	{
		ID:          "email",
		Title:       "Shopify Email Template Design",
		Description: "Clean, branded Shopify Email templates for campaigns and automations, built to render well across major inboxes.",
		Icon:        "Mail",
		Platform:    models.PlatformShopify,
		Points: []string{
			"Branded template system",
			"Campaign and automation layouts",
			"Mobile-friendly email design",
			"Reliable rendering and testing",
		},
	},
	{
		ID:          "cro",
		Title:       "Storefront Conversion Improvements",
		Description: "Practical UI improvements that reduce friction and improve add-to-cart flow, product clarity, and mobile usability.",
		Icon:        "TrendingUp",
		Platform:    models.PlatformShopify,
		Points: []string{
			"PDP and collection page UX",
			"Cart drawer and mini-cart tuning",
			"Trust blocks and offer sections",
			"Layout and spacing fixes",
		},
	},
	{
		ID:          "migration",
		Title:       "Theme Migration and Rebuild Support",
		Description: "Safe storefront migration help for theme upgrades, Online Store 2.0 rebuilds, and builder-to-theme transitions.",
		Icon:        "Repeat",
		Platform:    models.PlatformShopify,
		Points: []string{
			"Theme upgrade support",
			"OS 2.0 section rebuilding",
			"Template and redirect checks",
			"Post-migration QA",
		},
	},
	{
		ID:          "support",
		Title:       "Ongoing Store Support",
		Description: "Ongoing fixes, new sections, landing pages, and monthly improvements for active Shopify stores.",
		Icon:        "LifeBuoy",
		Platform:    models.PlatformShopify,
		Points: []string{
			"Bug fixing and maintenance",
			"New sections every month",
			"Landing page iterations",
			"Priority turnaround for retainer clients",
		},
	},
	{
		ID:          "wp-dev",
		Title:       "Custom WordPress Development",
		Description: "High-performance WordPress sites built with custom themes or Elementor/Divi.",
		Icon:        "Globe",
		Platform:    models.PlatformWordPress,
		Points: []string{
			"Custom Theme Development",
			"Plugin Customization",
			"Speed Optimization",
			"Security Hardening",
		},
	},
}
