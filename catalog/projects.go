package catalog

import "github.com/alexchen-dev/portfolio-backend/models"

var projectData = []models.Project{
	{
		ID:          "1",
		IsFeatured:  true,
		Title:       "Vilasha",
		Description: "Premium fashion storefront focused on merchandising, clean navigation, and conversion-first product pages.",
		Category:    "Themes",
		Platform:    models.PlatformShopify,
		Difficulty:  "Intermediate",
		Industry:    "Fashion & Apparel",
		Image:       "https://images.unsplash.com/photo-1441986300917-64674bd600d8?auto=format&fit=crop&q=80&w=1600",
		Gallery: []string{
			"https://images.unsplash.com/photo-1441986300917-64674bd600d8?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1503342217505-b0a15ec3261c?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1483985988355-763728e1935b?auto=format&fit=crop&q=80&w=1600",
		},
		Stack:        []string{"Shopify", "Liquid", "Tailwind", "JavaScript", "SEO"},
		Duration:     "Ongoing",
		ClientRegion: "India",
		ProjectType:  "Theme Build",
		LiveURL:      "https://vilasha.in/",
		Highlights:   []string{"Homepage merchandising tuning", "PDP sizing & trust blocks", "Mobile performance cleanup"},
		Stats: []models.Stat{
			{Label: "Industry", Value: "Fashion"},
			{Label: "Focus", Value: "Conversion"},
			{Label: "Work", Value: "Theme"},
		},
	},
	{
		ID:          "2",
		Title:       "MaleIQ Wellness Funnel",
		Description: "PageFly landing page for a wellness brand, optimized for long-form persuasion and mobile reading.",
		Category:    "Page Builders",
		Platform:    models.PlatformShopify,
		Difficulty:  "Advanced",
		Industry:    "Health & Wellness",
		Image:       "https://images.unsplash.com/photo-1576091160399-112ba8d25d1d?auto=format&fit=crop&q=80&w=1600",
		Gallery: []string{
			"https://images.unsplash.com/photo-1576091160399-112ba8d25d1d?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1550572017-4fcdbb560447?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?auto=format&fit=crop&q=80&w=1600",
		},
		Stack:        []string{"Shopify", "PageFly", "Custom CSS", "CRO"},
		Duration:     "Ongoing",
		ClientRegion: "International",
		ProjectType:  "Landing Page",
		LiveURL:      "https://maleiq.com/products/erectile-dysfunction-treatments",
		Highlights:   []string{"Long-form layout structure", "Mobile typography tuning", "Checkout handoff optimization"},
		Stats: []models.Stat{
			{Label: "Builder", Value: "PageFly"},
			{Label: "Goal", Value: "Higher CVR"},
			{Label: "Focus", Value: "Mobile"},
		},
	},
	{
		ID:          "3",
		Title:       "Able Trailers",
		Description: "Automotive storefront with structured collections, parts-style navigation, and catalog-first usability.",
		Category:    "Themes",
		Platform:    models.PlatformShopify,
		Difficulty:  "Intermediate",
		Industry:    "Automotive",
		Image:       "https://images.unsplash.com/photo-1519641471654-76ce0107ad1b?auto=format&fit=crop&q=80&w=1600",
		Gallery: []string{
			"https://images.unsplash.com/photo-1519641471654-76ce0107ad1b?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1486262715619-01b80258e0a5?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1494976388531-d1058494cdd8?auto=format&fit=crop&q=80&w=1600",
		},
		Stack:        []string{"Shopify", "Liquid", "Navigation UX", "SEO"},
		Duration:     "Ongoing",
		ClientRegion: "Australia",
		ProjectType:  "Theme Build",
		LiveURL:      "https://abletrailers.com.au/",
		Highlights:   []string{"Catalog structure cleanup", "Parts-style navigation", "SEO hygiene"},
		Stats: []models.Stat{
			{Label: "Industry", Value: "Auto"},
			{Label: "Focus", Value: "Catalog"},
			{Label: "Work", Value: "Theme"},
		},
	},
	{
		ID:          "4",
		Title:       "Senteurs Bauloises",
		Description: "Bug fixes and theme stabilization for a fragrance store, keeping design consistent across templates.",
		Category:    "Bug Fixing",
		Platform:    models.PlatformShopify,
		Difficulty:  "Intermediate",
		Industry:    "Beauty & Skincare",
		Image:       "https://images.unsplash.com/photo-1596462502278-27bfdd403cc2?auto=format&fit=crop&q=80&w=1600",
		Gallery: []string{
			"https://images.unsplash.com/photo-1596462502278-27bfdd403cc2?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1615397349754-cfa2066a298e?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1523293182086-7651a899d37f?auto=format&fit=crop&q=80&w=1600",
		},
		Stack:        []string{"Shopify", "Liquid", "Debugging", "QA"},
		Duration:     "Ongoing",
		ClientRegion: "France",
		ProjectType:  "Bug Fixing",
		LiveURL:      "https://senteursbauloises.fr/",
		Highlights:   []string{"Template logic fixes", "Mobile responsiveness patch", "Cart flow stabilization"},
		Stats: []models.Stat{
			{Label: "Work", Value: "Fixes"},
			{Label: "Focus", Value: "Stability"},
			{Label: "Industry", Value: "Beauty"},
		},
	},
	{
		ID:          "5",
		Title:       "Posh Whimsy Sales Page",
		Description: "Figma-to-PageFly build with pixel-perfect spacing and responsive behavior.",
		Category:    "Figma to Shopify",
		Platform:    models.PlatformShopify,
		Difficulty:  "Intermediate",
		Industry:    "Fashion & Apparel",
		Image:       "https://images.unsplash.com/photo-1520975958225-8f12f4a02f6b?auto=format&fit=crop&q=80&w=1600",
		Gallery: []string{
			"https://images.unsplash.com/photo-1520975958225-8f12f4a02f6b?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1534528741775-53994a69daeb?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1506152983158-b4a74a01c721?auto=format&fit=crop&q=80&w=1600",
		},
		Stack:        []string{"PageFly", "Figma", "CSS", "Responsive"},
		Duration:     "Ongoing",
		ClientRegion: "International",
		ProjectType:  "Landing Page",
		LiveURL:      "https://poshwhimsy.store/pages/salespage",
		Highlights:   []string{"Pixel-perfect Figma match", "Mobile stacking logic", "Reusable blocks"},
		Stats: []models.Stat{
			{Label: "Source", Value: "Figma"},
			{Label: "Tool", Value: "PageFly"},
			{Label: "Focus", Value: "Design"},
		},
	},
	{
		ID:          "6",
		Title:       "PrintPeak Storefront",
		Description: "Tech product store improvements focusing on specs, trust signals, and clarity.",
		Category:    "Themes",
		Platform:    models.PlatformShopify,
		Difficulty:  "Intermediate",
		Industry:    "Technology",
		Image:       "https://images.unsplash.com/photo-1518770660439-4636190af475?auto=format&fit=crop&q=80&w=1600",
		Gallery: []string{
			"https://images.unsplash.com/photo-1518770660439-4636190af475?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1550751827-4bd374c3f58b?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1593640408182-31c70c8268f5?auto=format&fit=crop&q=80&w=1600",
		},
		Stack:        []string{"Shopify", "Liquid", "UX", "Metafields"},
		Duration:     "Ongoing",
		ClientRegion: "International",
		ProjectType:  "Theme Build",
		LiveURL:      "https://printpeak.store/products/test-printer",
		Highlights:   []string{"Spec-first PDP layout", "Trust badge placement", "Mobile hierarchy"},
		Stats: []models.Stat{
			{Label: "Industry", Value: "Tech"},
			{Label: "Focus", Value: "Specs"},
			{Label: "Work", Value: "UX"},
		},
	},
	{
		ID:          "7",
		Title:       "The Metal Foundry",
		Description: "Custom memorial plaque product page with extensive personalization options.",
		Category:    "Custom Coded",
		Platform:    models.PlatformShopify,
		Difficulty:  "Advanced",
		Industry:    "Home & Garden",
		Image:       "https://images.unsplash.com/photo-1628147309830-10900b84d436?auto=format&fit=crop&q=80&w=1600",
		Gallery: []string{
			"https://images.unsplash.com/photo-1628147309830-10900b84d436?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1618220179428-22790b461013?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1616486338812-3dadae4b4ace?auto=format&fit=crop&q=80&w=1600",
		},
		Stack:        []string{"Liquid", "JavaScript", "Custom Fields", "Personalization"},
		Duration:     "Completed",
		ClientRegion: "UK",
		ProjectType:  "Custom Dev",
		LiveURL:      "https://www.themetalfoundry.uk/products/memorials-memorial-plaques-personalised-memorial-brass-plaque-cat",
		Highlights:   []string{"Complex personalization inputs", "Live preview logic", "Custom cart attributes"},
		Stats: []models.Stat{
			{Label: "Type", Value: "Custom"},
			{Label: "Feature", Value: "Personalization"},
			{Label: "Industry", Value: "Decor"},
		},
	},
	{
		ID:          "8",
		Title:       "Atlantic Fine Furniture",
		Description: "High-end furniture store with a focus on catalog presentation and imagery.",
		Category:    "Custom Coded",
		Platform:    models.PlatformShopify,
		Difficulty:  "Intermediate",
		Industry:    "Furniture",
		Image:       "https://images.unsplash.com/photo-1616486338812-3dadae4b4ace?auto=format&fit=crop&q=80&w=1600",
		Gallery: []string{
			"https://images.unsplash.com/photo-1616486338812-3dadae4b4ace?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1556228453-efd6c1ff04f6?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1524758631624-e2822e304c36?auto=format&fit=crop&q=80&w=1600",
		},
		Stack:       []string{"Shopify", "Liquid", "CSS", "Mega Menu"},
		Duration:    "Completed",
		ProjectType: "Store Build",
		LiveURL:     "https://atlanticfinefurniture.com/",
		Highlights:  []string{"Clean catalog grid", "Fast image loading", "Custom navigation"},
		Stats: []models.Stat{
			{Label: "Type", Value: "Store"},
			{Label: "Industry", Value: "Furniture"},
			{Label: "Style", Value: "Minimal"},
		},
	},
	{
		ID:          "9",
		Title:       "BabyBub (Shopify Plus)",
		Description: "High-volume store for maternity products. Optimized for scale and conversion.",
		Category:    "Shopify Plus",
		Platform:    models.PlatformShopify,
		Difficulty:  "Advanced",
		Industry:    "Maternity & Baby",
		Image:       "https://images.unsplash.com/photo-1519689680058-324335c77eba?auto=format&fit=crop&q=80&w=1600",
		Gallery: []string{
			"https://images.unsplash.com/photo-1519689680058-324335c77eba?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1555252333-9f8e92e65df4?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1515488042361-ee00e0ddd4e4?auto=format&fit=crop&q=80&w=1600",
		},
		Stack:       []string{"Shopify Plus", "Liquid", "Scripts", "Checkout Ext."},
		Duration:    "Recent",
		ProjectType: "Plus Store",
		LiveURL:     "https://www.babybub.com/",
		Highlights:  []string{"High-volume optimization", "Custom checkout tweaks", "Upsell integration"},
		Stats: []models.Stat{
			{Label: "Plan", Value: "Plus"},
			{Label: "Industry", Value: "Baby"},
			{Label: "Focus", Value: "Scale"},
		},
	},
	{
		ID:          "10",
		Title:       "YourDayly Gut Health",
		Description: "GemPages landing page focused on health benefits and subscription conversion.",
		Category:    "Page Builders",
		Platform:    models.PlatformShopify,
		Difficulty:  "Intermediate",
		Industry:    "Health & Wellness",
		Image:       "https://images.unsplash.com/photo-1505751172876-fa1923c5c528?auto=format&fit=crop&q=80&w=1600",
		Gallery: []string{
			"https://images.unsplash.com/photo-1505751172876-fa1923c5c528?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1549880338-65ddcdfd017b?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1594122230689-45899d9e6f69?auto=format&fit=crop&q=80&w=1600",
		},
		Stack:      []string{"GemPages", "Subscription App", "CSS"},
		Duration:   "Completed",
		LiveURL:    "https://www.yourdayly.com/products/dayly-gut-health",
		Highlights: []string{"Subscription flow integration", "Benefit iconography", "Mobile speed optimization"},
		Stats: []models.Stat{
			{Label: "Tool", Value: "GemPages"},
			{Label: "Focus", Value: "Subs"},
			{Label: "Industry", Value: "Health"},
		},
	},
	{
		ID:          "11",
		Title:       "Ceuticalia Immunity",
		Description: "Clean, trustworthy medical-style product page built with GemPages.",
		Category:    "Page Builders",
		Platform:    models.PlatformShopify,
		Difficulty:  "Intermediate",
		Industry:    "Health & Wellness",
		Image:       "https://images.unsplash.com/photo-1587854692152-cbe660dbde88?auto=format&fit=crop&q=80&w=1600",
		Gallery: []string{
			"https://images.unsplash.com/photo-1587854692152-cbe660dbde88?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1631549916768-4119b2e5f926?auto=format&fit=crop&q=80&w=1600",
		},
		Stack:      []string{"GemPages", "Trust Badges", "Mobile UX"},
		Duration:   "Completed",
		LiveURL:    "https://ceuticalia.com/products/immunite-defenses-naturelles",
		Highlights: []string{"Medical aesthetic", "Clear dosage info", "Trust badges"},
		Stats: []models.Stat{
			{Label: "Tool", Value: "GemPages"},
			{Label: "Style", Value: "Clean"},
			{Label: "Industry", Value: "Health"},
		},
	},
	{
		ID:          "12",
		Title:       "Boardy Fitness",
		Description: "Dynamic fitness product page with video integration and feature breakdowns.",
		Category:    "Figma to Shopify",
		Platform:    models.PlatformShopify,
		Difficulty:  "Advanced",
		Industry:    "Fitness",
		Image:       "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?auto=format&fit=crop&q=80&w=1600",
		Gallery: []string{
			"https://images.unsplash.com/photo-1534438327276-14e5300c3a48?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1599058945522-28d584b6f0ff?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b?auto=format&fit=crop&q=80&w=1600",
		},
		Stack:      []string{"PageFly", "Video", "Figma"},
		Duration:   "Completed",
		LiveURL:    "https://boardyfitness.com/products/boardy-fitness-board",
		Highlights: []string{"Video background sections", "Interactive feature list", "Figma match"},
		Stats: []models.Stat{
			{Label: "Tool", Value: "PageFly"},
			{Label: "Asset", Value: "Video"},
			{Label: "Industry", Value: "Fitness"},
		},
	},
	{
		ID:          "13",
		Title:       "Fading Culture",
		Description: "Shogun-built landing page for a trendy consumer product.",
		Category:    "Page Builders",
		Platform:    models.PlatformShopify,
		Difficulty:  "Intermediate",
		Industry:    "Consumer Goods",
		Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?auto=format&fit=crop&q=80&w=1600",
		Gallery: []string{
			"https://images.unsplash.com/photo-1523275335684-37898b6baf30?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1526170375885-4d8ecf77b99f?auto=format&fit=crop&q=80&w=1600",
		},
		Stack:      []string{"Shogun", "Liquid", "Marketing"},
		Duration:   "Completed",
		LiveURL:    "https://fadingculture.com/products/the-fadify-2-0",
		Highlights: []string{"Shogun visual editor", "Custom sections", "Marketing tracking"},
		Stats: []models.Stat{
			{Label: "Tool", Value: "Shogun"},
			{Label: "Focus", Value: "Marketing"},
			{Label: "Industry", Value: "Retail"},
		},
	},
	{
		ID:          "14",
		Title:       "Sea Cycle Swim",
		Description: "Eco-friendly swimwear brand with a clean, ocean-inspired aesthetic.",
		Category:    "Themes",
		Platform:    models.PlatformShopify,
		Difficulty:  "Intermediate",
		Industry:    "Fashion & Apparel",
		Image:       "https://images.unsplash.com/photo-1544376798-89aa6b82c6cd?auto=format&fit=crop&q=80&w=1600",
		Gallery: []string{
			"https://images.unsplash.com/photo-1544376798-89aa6b82c6cd?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1566421992-a1b7e28945a0?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1516762689617-e1cffcef479d?auto=format&fit=crop&q=80&w=1600",
		},
		Stack:      []string{"Shopify", "Theme Settings", "Branding"},
		Duration:   "Recent",
		LiveURL:    "https://www.seacycleswim.com/",
		Highlights: []string{"Visual storytelling", "Brand color integration", "Clean navigation"},
		Stats: []models.Stat{
			{Label: "Industry", Value: "Swim"},
			{Label: "Style", Value: "Eco"},
			{Label: "Work", Value: "Build"},
		},
	},
	{
		ID:          "15",
		Title:       "HyHy Tech",
		Description: "Industrial technology storefront for a US-based client.",
		Category:    "Themes",
		Platform:    models.PlatformShopify,
		Difficulty:  "Intermediate",
		Industry:    "Technology & Industrial",
		Image:       "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?auto=format&fit=crop&q=80&w=1600",
		Gallery: []string{
			"https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1550009158-9ebf69173e03?auto=format&fit=crop&q=80&w=1600",
		},
		Stack:        []string{"Shopify", "B2B Features", "Catalog"},
		Duration:     "Ongoing",
		ClientRegion: "USA",
		LiveURL:      "https://hyhytech.com/",
		Highlights:   []string{"Technical specs display", "Clean B2B layout", "Search optimization"},
		Stats: []models.Stat{
			{Label: "Industry", Value: "Industrial"},
			{Label: "Region", Value: "USA"},
			{Label: "Focus", Value: "B2B"},
		},
	},
	{
		ID:          "16",
		Title:       "Sweven Plates (POD)",
		Description: "Print-on-demand store for custom 3D gel number plates.",
		Category:    "Themes",
		Platform:    models.PlatformShopify,
		Difficulty:  "Advanced",
		Industry:    "Automotive",
		Image:       "https://images.unsplash.com/photo-1568605117036-5fe5e7bab0b7?auto=format&fit=crop&q=80&w=1600",
		Gallery: []string{
			"https://images.unsplash.com/photo-1568605117036-5fe5e7bab0b7?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1617788138017-80ad40651399?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1494905998402-395d579af905?auto=format&fit=crop&q=80&w=1600",
		},
		Stack:      []string{"Shopify", "POD App", "Custom Options"},
		Duration:   "Completed",
		LiveURL:    "https://www.sweven-plates.co.uk/products/3d-gel-number-plates",
		Highlights: []string{"Custom product builder", "POD integration", "UK compliance checks"},
		Stats: []models.Stat{
			{Label: "Type", Value: "POD"},
			{Label: "Industry", Value: "Auto"},
			{Label: "Feature", Value: "Customizer"},
		},
	},
	{
		ID:          "17",
		Title:       "Maville en Diamant",
		Description: "French jewelry store with a luxurious, minimal design.",
		Category:    "Themes",
		Platform:    models.PlatformShopify,
		Difficulty:  "Intermediate",
		Industry:    "Fashion & Apparel",
		Image:       "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?auto=format&fit=crop&q=80&w=1600",
		Gallery: []string{
			"https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1601121141461-9d6647bca1ed?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1573408301185-9146fe634ad0?auto=format&fit=crop&q=80&w=1600",
		},
		Stack:        []string{"Shopify", "Translation", "Luxury UI"},
		Duration:     "Ongoing",
		ClientRegion: "France",
		LiveURL:      "https://mavilleendiamant.fr/",
		Highlights:   []string{"Elegant typography", "High-res gallery", "French localization"},
		Stats: []models.Stat{
			{Label: "Industry", Value: "Jewelry"},
			{Label: "Region", Value: "France"},
			{Label: "Style", Value: "Luxury"},
		},
	},
	{
		ID:          "18",
		Title:       "Stopuzzle",
		Description: "Niche puzzle store with a focus on engaging product visuals.",
		Category:    "Themes",
		Platform:    models.PlatformShopify,
		Difficulty:  "Beginner",
		Industry:    "Toys & Games",
		Image:       "https://images.unsplash.com/photo-1585366119957-e9730b6d0f60?auto=format&fit=crop&q=80&w=1600",
		Gallery: []string{
			"https://images.unsplash.com/photo-1585366119957-e9730b6d0f60?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1611996575749-79a3a250f948?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1596461404969-9ae70f2830c1?auto=format&fit=crop&q=80&w=1600",
		},
		Stack:      []string{"Shopify", "Theme Setup", "Grid Layout"},
		Duration:   "Recent",
		LiveURL:    "https://stopuzzle.com/",
		Highlights: []string{"Clean grid layout", "Fast navigation", "Mobile optimized"},
		Stats: []models.Stat{
			{Label: "Industry", Value: "Toys"},
			{Label: "Type", Value: "Store"},
			{Label: "Work", Value: "Setup"},
		},
	},
	{
		ID:          "19",
		Title:       "Ubiskin",
		Description: "Skincare brand store featuring PageFly product pages.",
		Category:    "Themes",
		Platform:    models.PlatformShopify,
		Difficulty:  "Intermediate",
		Industry:    "Beauty & Skincare",
		Image:       "https://images.unsplash.com/photo-1556228720-1957be83f793?auto=format&fit=crop&q=80&w=1600",
		Gallery: []string{
			"https://images.unsplash.com/photo-1556228720-1957be83f793?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1616683693504-3ea7e9ad6fec?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1571781535606-2187d60927df?auto=format&fit=crop&q=80&w=1600",
		},
		Stack:      []string{"Shopify", "PageFly", "Beauty Theme"},
		Duration:   "Recent",
		LiveURL:    "https://ubiskin.com/",
		Highlights: []string{"Landing page integration", "Skin care education blocks", "Review sections"},
		Stats: []models.Stat{
			{Label: "Industry", Value: "Beauty"},
			{Label: "Tool", Value: "PageFly"},
			{Label: "Focus", Value: "Ed."},
		},
	},
	{
		ID:          "20",
		Title:       "Sarah's Whisper",
		Description: "Jewelry and gift shop targeting US and Chinese markets.",
		Category:    "Themes",
		Platform:    models.PlatformShopify,
		Difficulty:  "Intermediate",
		Industry:    "Fashion & Apparel",
		Image:       "https://images.unsplash.com/photo-1602173574767-37ac01994b2a?auto=format&fit=crop&q=80&w=1600",
		Gallery: []string{
			"https://images.unsplash.com/photo-1602173574767-37ac01994b2a?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?auto=format&fit=crop&q=80&w=1600",
			"https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?auto=format&fit=crop&q=80&w=1600",
		},
		Stack:        []string{"Shopify", "Localization", "Gifting"},
		Duration:     "Recent",
		ClientRegion: "USA / China",
		LiveURL:      "https://www.sarahswhisper.com/",
		Highlights:   []string{"Multi-region support", "Gifting options", "Elegant layout"},
		Stats: []models.Stat{
			{Label: "Industry", Value: "Jewelry"},
			{Label: "Market", Value: "Intl."},
			{Label: "Work", Value: "Build"},
		},
	},
	{
		ID:          "wp-1",
		Title:       "TechFlow Blog",
		Description: "A high-traffic WordPress technology news portal with custom Elementor widgets.",
		Category:    "WordPress",
		Platform:    models.PlatformWordPress,
		Difficulty:  "Intermediate",
		Industry:    "Technology",
		Image:       "https://images.unsplash.com/photo-1542744094-24638eff58bb?auto=format&fit=crop&q=80&w=1600",
		Gallery: []string{
			"https://images.unsplash.com/photo-1542744094-24638eff58bb?auto=format&fit=crop&q=80&w=1600",
		},
		Stack:        []string{"WordPress", "Elementor", "PHP", "MySQL"},
		Duration:     "Recent",
		ClientRegion: "USA",
		ProjectType:  "Content Site",
		LiveURL:      "#",
		Highlights:   []string{"Custom Elementor Widgets", "SEO Optimized", "Speed 95+"},
		Stats: []models.Stat{
			{Label: "Platform", Value: "WP"},
			{Label: "Type", Value: "Blog"},
			{Label: "Tech", Value: "PHP"},
		},
	},
}
