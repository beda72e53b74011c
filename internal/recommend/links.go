package recommend

import (
	"fmt"
	"net/url"
	"strings"
)

// storeSearchURL builds a working search link for a synthesized listing
// at the given store. Unknown stores get a Google Shopping search.
func storeSearchURL(store, itemName string) string {
	escaped := url.QueryEscape(itemName)

	switch strings.ToLower(store) {
	case "amazon":
		return fmt.Sprintf("https://www.amazon.com/s?k=%s&ref=nb_sb_noss", escaped)
	case "best buy":
		return fmt.Sprintf("https://www.bestbuy.com/site/searchpage.jsp?st=%s", escaped)
	case "target":
		return fmt.Sprintf("https://www.target.com/s?searchTerm=%s", escaped)
	case "walmart":
		return fmt.Sprintf("https://www.walmart.com/search?q=%s", escaped)
	default:
		return fmt.Sprintf("https://www.google.com/search?q=%s&tbm=shop", url.QueryEscape(itemName+" "+store))
	}
}
