package catalog

import "github.com/alexchen-dev/portfolio-backend/models"

var testimonialData = []models.Testimonial{
	{
		ID:      "1",
		Name:    "Sarah Johnson",
		Role:    "Founder",
		Company: "Luxe Apparel",
		Content: "Alex transformed our Shopify store. Our mobile conversion rate doubled in just two months after the redesign.",
		Avatar:  "https://picsum.photos/seed/sarah/100/100",
		Rating:  5,
	},
	{
		ID:      "2",
		Name:    "Michael Rodriguez",
		Role:    "Ecommerce Director",
		Company: "ProFitness",
		Content: "The custom B2B application Alex built for us saved our team 20 hours of manual work every week.",
		Avatar:  "https://picsum.photos/seed/mike/100/100",
		Rating:  5,
	},
	{
		ID:      "3",
		Name:    "Emily Chen",
		Role:    "CMO",
		Company: "Glow Skincare",
		Content: "Our headless launch was flawless. The speed improvements alone have significantly boosted our organic search traffic.",
		Avatar:  "https://picsum.photos/seed/emily/100/100",
		Rating:  5,
	},
}
