package recommend

import "strings"

// ProcessedItem is one checklist phrase after classification: a display
// name, a category label, and the keyword/search-term sets used further
// down the pipeline. This keyword table is the entire "AI" in the system.
type ProcessedItem struct {
	OriginalText  string   `json:"originalText"`
	ProcessedText string   `json:"processedText"`
	Category      string   `json:"category"`
	Keywords      []string `json:"keywords"`
	SearchTerms   []string `json:"searchTerms"`
}

// ProcessChecklist extracts item phrases from checklist text and
// classifies each one. Phrases keep their input order.
func ProcessChecklist(text string) []ProcessedItem {
	items := ExtractItems(text)

	processed := make([]ProcessedItem, 0, len(items))
	for _, item := range items {
		processed = append(processed, Classify(item))
	}
	return processed
}

// Classify maps an item phrase to a normalized name, category, and
// keyword sets by substring tests in a fixed priority order. The first
// matching rule wins; unmatched phrases fall through to General with the
// phrase kept verbatim.
func Classify(item string) ProcessedItem {
	lower := strings.ToLower(item)

	result := ProcessedItem{OriginalText: item}

	switch {
	case containsAny(lower, "laptop", "computer", "macbook"):
		result.ProcessedText = "Laptop"
		if strings.Contains(lower, "macbook") {
			result.ProcessedText = "MacBook Pro"
		}
		result.Category = "Electronics"
		result.Keywords = []string{"laptop", "computer", "work", "productivity"}
		result.SearchTerms = []string{"laptop computer", "macbook pro", "business laptop"}

	case containsAny(lower, "headphone", "earphone", "earbuds"):
		result.ProcessedText = "Wireless Headphones"
		result.Category = "Electronics"
		result.Keywords = []string{"headphones", "wireless", "bluetooth", "audio"}
		result.SearchTerms = []string{"wireless headphones", "bluetooth headphones", "noise canceling"}

	case containsAny(lower, "phone", "iphone", "smartphone"):
		result.ProcessedText = "Smartphone"
		if strings.Contains(lower, "iphone") {
			result.ProcessedText = "iPhone"
		}
		result.Category = "Electronics"
		result.Keywords = []string{"phone", "smartphone", "mobile", "cellular"}
		result.SearchTerms = []string{"smartphone", "iphone", "android phone"}

	case containsAny(lower, "keyboard", "mouse"):
		result.ProcessedText = "Wireless Mouse"
		if strings.Contains(lower, "keyboard") {
			result.ProcessedText = "Wireless Keyboard"
		}
		result.Category = "Electronics"
		result.Keywords = []string{"computer", "peripheral", "wireless", "productivity"}
		result.SearchTerms = []string{"wireless keyboard", "computer mouse", "office accessories"}

	case containsAny(lower, "blender", "mixer"):
		result.ProcessedText = "Kitchen Blender"
		result.Category = "Home & Kitchen"
		result.Keywords = []string{"blender", "kitchen", "smoothie", "cooking"}
		result.SearchTerms = []string{"kitchen blender", "smoothie maker", "food processor"}

	case strings.Contains(lower, "coffee") && containsAny(lower, "maker", "machine"):
		result.ProcessedText = "Coffee Maker"
		result.Category = "Home & Kitchen"
		result.Keywords = []string{"coffee", "brewing", "kitchen", "appliance"}
		result.SearchTerms = []string{"coffee maker", "coffee machine", "drip coffee"}

	case containsAny(lower, "vacuum", "cleaner"):
		result.ProcessedText = "Vacuum Cleaner"
		result.Category = "Home & Kitchen"
		result.Keywords = []string{"vacuum", "cleaning", "home", "appliance"}
		result.SearchTerms = []string{"vacuum cleaner", "home cleaning", "floor cleaner"}

	case containsAny(lower, "shoe", "sneaker", "running"):
		result.ProcessedText = "Running Shoes"
		result.Category = "Sports & Outdoors"
		result.Keywords = []string{"shoes", "running", "athletic", "fitness"}
		result.SearchTerms = []string{"running shoes", "athletic shoes", "sneakers"}

	case containsAny(lower, "shirt", "clothes", "clothing"):
		result.ProcessedText = "Clothing"
		result.Category = "Clothing"
		result.Keywords = []string{"clothing", "apparel", "fashion", "wear"}
		result.SearchTerms = []string{"clothing", "shirts", "apparel"}

	case containsAny(lower, "milk", "bread", "eggs", "food", "grocery"):
		result.ProcessedText = item
		result.Category = "Grocery"
		result.Keywords = []string{"food", "grocery", "kitchen", "cooking"}
		result.SearchTerms = []string{item, "grocery", "food items"}

	default:
		result.ProcessedText = item
		result.Category = "General"
		result.Keywords = []string{item}
		result.SearchTerms = []string{item}
	}

	return result
}

// containsAny reports whether s contains any of the substrings.
func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
