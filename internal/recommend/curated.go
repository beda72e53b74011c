package recommend

import "strings"

// listing is a curated product entry. Prices and ratings are stored as
// wire strings so the numbers going out never depend on float formatting.
type listing struct {
	Name          string
	Description   string
	Price         string
	OriginalPrice string
	ImageURL      string
	ProductURL    string
	Store         string
	Category      string
	Rating        string
	ReviewCount   int
}

// curatedEntry groups listings under a match key. Hints extend matching
// beyond the key itself, e.g. "macbook" should pull the laptop entries.
type curatedEntry struct {
	Key      string
	Hints    []string
	Listings []listing
}

// curatedCatalog holds hand-picked listings with real store links. Order
// matters: matches are collected in this order so results are stable.
var curatedCatalog = []curatedEntry{
	{
		Key:   "laptop",
		Hints: []string{"macbook", "computer", "notebook"},
		Listings: []listing{
			{
				Name:          `MacBook Pro 14" M3 Chip`,
				Description:   "Apple MacBook Pro with M3 chip, 8GB RAM, 512GB SSD. Professional-grade laptop for developers and creators.",
				Price:         "1999.00",
				OriginalPrice: "2199.00",
				ImageURL:      "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
				ProductURL:    "https://www.apple.com/macbook-pro/",
				Store:         "Apple",
				Category:      "Electronics",
				Rating:        "4.8",
				ReviewCount:   2847,
			},
			{
				Name:          "Dell XPS 13 Plus",
				Description:   "Premium ultrabook with Intel 13th gen processor, 16GB RAM, stunning InfinityEdge display.",
				Price:         "1399.99",
				OriginalPrice: "1699.99",
				ImageURL:      "https://images.unsplash.com/photo-1593642632823-8f785ba67e45?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
				ProductURL:    "https://www.dell.com/en-us/shop/dell-laptops/xps-13-plus-laptop/spd/xps-13-9320-laptop",
				Store:         "Dell",
				Category:      "Electronics",
				Rating:        "4.6",
				ReviewCount:   1523,
			},
		},
	},
	{
		Key:   "headphones",
		Hints: []string{"earbuds", "audio", "wireless"},
		Listings: []listing{
			{
				Name:          "Sony WH-1000XM5",
				Description:   "Industry-leading noise canceling headphones with 30-hour battery and crystal-clear calls.",
				Price:         "399.99",
				OriginalPrice: "429.99",
				ImageURL:      "https://images.unsplash.com/photo-1618366712010-f4ae9c647dcb?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
				ProductURL:    "https://electronics.sony.com/audio/headphones/headband/p/wh1000xm5-b",
				Store:         "Sony",
				Category:      "Electronics",
				Rating:        "4.7",
				ReviewCount:   8934,
			},
			{
				Name:          "Bose QuietComfort 45",
				Description:   "Legendary noise cancellation meets exceptional comfort. 24-hour battery life.",
				Price:         "329.00",
				OriginalPrice: "379.00",
				ImageURL:      "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
				ProductURL:    "https://www.bose.com/en_us/products/headphones/over_ear_headphones/quietcomfort-45-headphones.html",
				Store:         "Bose",
				Category:      "Electronics",
				Rating:        "4.5",
				ReviewCount:   5621,
			},
		},
	},
	{
		Key: "keyboard",
		Listings: []listing{
			{
				Name:          "Logitech MX Keys",
				Description:   "Advanced wireless illuminated keyboard with smart backlighting and multi-device support.",
				Price:         "89.99",
				OriginalPrice: "109.99",
				ImageURL:      "https://images.unsplash.com/photo-1541140532154-b024d705b90a?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
				ProductURL:    "https://www.logitech.com/en-us/products/keyboards/mx-keys-wireless-keyboard.920-009294.html",
				Store:         "Logitech",
				Category:      "Electronics",
				Rating:        "4.4",
				ReviewCount:   3247,
			},
		},
	},
	{
		Key:   "coffee",
		Hints: []string{"espresso", "machine"},
		Listings: []listing{
			{
				Name:          "Breville Bambino Plus",
				Description:   "Compact espresso machine with automatic milk texturing and fast heat-up time.",
				Price:         "279.95",
				OriginalPrice: "329.95",
				ImageURL:      "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
				ProductURL:    "https://www.breville.com/us/en/products/espresso/bes500.html",
				Store:         "Breville",
				Category:      "Home & Kitchen",
				Rating:        "4.6",
				ReviewCount:   1876,
			},
		},
	},
	{
		Key: "blender",
		Listings: []listing{
			{
				Name:          "Vitamix 5200",
				Description:   "Professional-grade blender with aircraft-grade stainless steel blades and 7-year warranty.",
				Price:         "349.95",
				OriginalPrice: "449.95",
				ImageURL:      "https://images.unsplash.com/photo-1570222094114-d054a817e56b?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
				ProductURL:    "https://www.vitamix.com/us/en_us/shop/5200",
				Store:         "Vitamix",
				Category:      "Home & Kitchen",
				Rating:        "4.8",
				ReviewCount:   4521,
			},
		},
	},
	{
		Key:   "phone",
		Hints: []string{"iphone", "mobile", "smartphone"},
		Listings: []listing{
			{
				Name:          "iPhone 15 Pro",
				Description:   "Titanium design with Action Button, advanced camera system, and A17 Pro chip.",
				Price:         "999.00",
				OriginalPrice: "1099.00",
				ImageURL:      "https://images.unsplash.com/photo-1512499617640-c74ae3a79d37?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
				ProductURL:    "https://www.apple.com/iphone-15-pro/",
				Store:         "Apple",
				Category:      "Electronics",
				Rating:        "4.7",
				ReviewCount:   9834,
			},
		},
	},
	{
		Key:   "shoes",
		Hints: []string{"sneakers", "running", "footwear"},
		Listings: []listing{
			{
				Name:          "Nike Air Max 90",
				Description:   "Classic running shoes with Max Air cushioning and timeless design.",
				Price:         "119.97",
				OriginalPrice: "130.00",
				ImageURL:      "https://images.unsplash.com/photo-1549298916-b41d501d3772?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
				ProductURL:    "https://www.nike.com/t/air-max-90-mens-shoes-6VWp5l",
				Store:         "Nike",
				Category:      "Sports & Outdoors",
				Rating:        "4.5",
				ReviewCount:   6723,
			},
		},
	},
	{
		Key:   "watch",
		Hints: []string{"smartwatch", "apple", "fitness"},
		Listings: []listing{
			{
				Name:          "Apple Watch Series 9",
				Description:   "Advanced health monitoring, GPS, and cellular connectivity with all-day battery life.",
				Price:         "429.00",
				OriginalPrice: "479.00",
				ImageURL:      "https://images.unsplash.com/photo-1523275335684-37898b6baf30?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
				ProductURL:    "https://www.apple.com/apple-watch-series-9/",
				Store:         "Apple",
				Category:      "Electronics",
				Rating:        "4.7",
				ReviewCount:   12450,
			},
		},
	},
	{
		Key:   "tablet",
		Hints: []string{"ipad", "android"},
		Listings: []listing{
			{
				Name:          `iPad Pro 11"`,
				Description:   "Powerful tablet with M4 chip, Liquid Retina display, and all-day battery life.",
				Price:         "999.00",
				OriginalPrice: "1099.00",
				ImageURL:      "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
				ProductURL:    "https://www.apple.com/ipad-pro/",
				Store:         "Apple",
				Category:      "Electronics",
				Rating:        "4.8",
				ReviewCount:   8932,
			},
		},
	},
	{
		Key:   "camera",
		Hints: []string{"photography", "video", "lens"},
		Listings: []listing{
			{
				Name:          "Canon EOS R50",
				Description:   "Mirrorless camera with 24.2MP sensor, 4K video recording, and intuitive controls.",
				Price:         "679.00",
				OriginalPrice: "799.00",
				ImageURL:      "https://images.unsplash.com/photo-1502920917128-1aa500764cbd?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
				ProductURL:    "https://www.canon-europe.com/cameras/eos-r50/",
				Store:         "Canon",
				Category:      "Electronics",
				Rating:        "4.6",
				ReviewCount:   2341,
			},
		},
	},
}

// searchCurated collects curated listings whose key matches any word of
// the search term, either by substring in both directions or via the
// entry's hint words.
func searchCurated(searchTerm string) []listing {
	words := strings.Fields(strings.ToLower(searchTerm))

	var matches []listing
	for _, entry := range curatedCatalog {
		if entryMatches(entry, words) {
			matches = append(matches, entry.Listings...)
		}
	}
	return matches
}

func entryMatches(entry curatedEntry, words []string) bool {
	for _, word := range words {
		if strings.Contains(word, entry.Key) || strings.Contains(entry.Key, word) {
			return true
		}
		for _, hint := range entry.Hints {
			if strings.Contains(word, hint) {
				return true
			}
		}
	}
	return false
}
