package recommend

import "strings"

const defaultImageURL = "https://images.unsplash.com/photo-1560472355-a35d6c3ca2e4?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"

// imageFor picks a stock image for a synthesized listing. Coffee needs
// the maker/machine qualifier so plain grocery coffee does not get an
// espresso machine photo.
func imageFor(itemName string) string {
	lower := strings.ToLower(itemName)

	switch {
	case containsAny(lower, "laptop", "macbook", "computer"):
		return "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"
	case containsAny(lower, "headphone", "earphone", "earbuds"):
		return "https://images.unsplash.com/photo-1618366712010-f4ae9c647dcb?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"
	case containsAny(lower, "phone", "iphone", "smartphone"):
		return "https://images.unsplash.com/photo-1601972602237-8c79241e468b?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"
	case strings.Contains(lower, "keyboard"):
		return "https://images.unsplash.com/photo-1587829741301-dc798b83add3?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"
	case strings.Contains(lower, "blender"):
		return "https://images.unsplash.com/photo-1585515656792-f2b68c8f9c94?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"
	case strings.Contains(lower, "coffee") && containsAny(lower, "maker", "machine"):
		return "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"
	case containsAny(lower, "shoe", "sneaker", "running"):
		return "https://images.unsplash.com/photo-1549298916-b41d501d3772?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"
	case containsAny(lower, "watch", "smartwatch"):
		return "https://images.unsplash.com/photo-1523275335684-37898b6baf30?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"
	case containsAny(lower, "tablet", "ipad"):
		return "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"
	case strings.Contains(lower, "camera"):
		return "https://images.unsplash.com/photo-1502920917128-1aa500764cbd?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"
	}
	return defaultImageURL
}
