package db

import "shopmate/internal/catalog"

// SampleSeed is the catalog populated at process start: a spread of
// listings across retailers and categories so the browse/filter surface
// has something to show before the first checklist is submitted.
func SampleSeed() []catalog.ProductDraft {
	return []catalog.ProductDraft{
		{
			Name:          `MacBook Pro 14" M2 Chip - Space Gray`,
			Description:   "High-performance laptop perfect for work, creative projects, and productivity. Features the latest M2 chip technology.",
			Price:         "1999.00",
			OriginalPrice: strPtr("2199.00"),
			ImageURL:      "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			ProductURL:    "https://amazon.com/macbook-pro-14",
			Store:         "Amazon",
			Category:      "Electronics",
			Rating:        strPtr("4.5"),
			ReviewCount:   intPtr(2847),
			MatchScore:    intPtr(95),
			IsAvailable:   true,
		},
		{
			Name:          "Sony WH-1000XM5 Wireless Headphones",
			Description:   "Industry-leading noise canceling with premium sound quality and 30-hour battery life.",
			Price:         "349.00",
			OriginalPrice: strPtr("399.00"),
			ImageURL:      "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			ProductURL:    "https://bestbuy.com/sony-headphones",
			Store:         "Best Buy",
			Category:      "Electronics",
			Rating:        strPtr("4.8"),
			ReviewCount:   intPtr(1523),
			MatchScore:    intPtr(92),
			IsAvailable:   true,
		},
		{
			Name:          "Vitamix Professional Series 750 Blender",
			Description:   "Professional-grade blender perfect for smoothies, soups, and food preparation with variable speed control.",
			Price:         "449.00",
			OriginalPrice: strPtr("529.00"),
			ImageURL:      "https://images.unsplash.com/photo-1570222094114-d054a817e56b?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			ProductURL:    "https://target.com/vitamix-blender",
			Store:         "Target",
			Category:      "Home & Kitchen",
			Rating:        strPtr("4.2"),
			ReviewCount:   intPtr(892),
			MatchScore:    intPtr(88),
			IsAvailable:   true,
		},
		{
			Name:          "Nike Air Max 270 Running Shoes",
			Description:   "Lightweight running shoes with Max Air cushioning for comfort and performance during workouts.",
			Price:         "129.00",
			OriginalPrice: strPtr("150.00"),
			ImageURL:      "https://images.unsplash.com/photo-1542291026-7eec264c27ff?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			ProductURL:    "https://walmart.com/nike-air-max",
			Store:         "Walmart",
			Category:      "Sports & Outdoors",
			Rating:        strPtr("4.6"),
			ReviewCount:   intPtr(3421),
			MatchScore:    intPtr(90),
			IsAvailable:   true,
		},
		{
			Name:          "iPhone 15 Pro 128GB - Natural Titanium",
			Description:   "Latest iPhone with titanium design, advanced camera system, and A17 Pro chip for professional performance.",
			Price:         "999.00",
			OriginalPrice: strPtr("1099.00"),
			ImageURL:      "https://images.unsplash.com/photo-1512499617640-c74ae3a79d37?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			ProductURL:    "https://amazon.com/iphone-15-pro",
			Store:         "Amazon",
			Category:      "Electronics",
			Rating:        strPtr("4.7"),
			ReviewCount:   intPtr(5632),
			MatchScore:    intPtr(85),
			IsAvailable:   true,
		},
		{
			Name:          "Logitech MX Keys Advanced Wireless Keyboard",
			Description:   "Premium wireless keyboard with smart illumination and perfect key stability for comfortable typing.",
			Price:         "89.00",
			OriginalPrice: strPtr("109.00"),
			ImageURL:      "https://images.unsplash.com/photo-1541140532154-b024d705b90a?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			ProductURL:    "https://bestbuy.com/logitech-keyboard",
			Store:         "Best Buy",
			Category:      "Electronics",
			Rating:        strPtr("4.3"),
			ReviewCount:   intPtr(1247),
			MatchScore:    intPtr(82),
			IsAvailable:   true,
		},
	}
}

// DefaultSeed is the smaller catalog restored by ClearProducts-style
// resets. It deliberately differs from SampleSeed (different field values
// for overlapping names); both sets are kept as-is rather than unified.
func DefaultSeed() []catalog.ProductDraft {
	return []catalog.ProductDraft{
		{
			Name:          `MacBook Pro 14" M2 Chip - Space Gray`,
			Description:   "Apple MacBook Pro with M2 chip for professional workflows. Features brilliant Liquid Retina XDR display.",
			Price:         "1999.00",
			OriginalPrice: strPtr("2499.00"),
			ImageURL:      "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			ProductURL:    "https://amazon.com/dp/B0BSHF7LLL",
			Store:         "Amazon",
			Category:      "Electronics",
			Rating:        strPtr("4.8"),
			ReviewCount:   intPtr(2847),
			MatchScore:    intPtr(95),
			IsAvailable:   true,
		},
		{
			Name:          "Sony WH-1000XM4 Wireless Headphones",
			Description:   "Industry-leading noise canceling wireless headphones with 30-hour battery life.",
			Price:         "279.99",
			OriginalPrice: strPtr("349.99"),
			ImageURL:      "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			ProductURL:    "https://bestbuy.com/site/sony-wh-1000xm4/6408356.p",
			Store:         "Best Buy",
			Category:      "Electronics",
			Rating:        strPtr("4.6"),
			ReviewCount:   intPtr(15420),
			MatchScore:    intPtr(92),
			IsAvailable:   true,
		},
	}
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
