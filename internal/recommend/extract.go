package recommend

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// fillerPhrases are stripped from checklist text before splitting.
// Order matters: the compound forms at the end are unreachable once the
// single words have been removed ("i need" has already lost its "need"),
// which is the long-standing behavior and is kept as-is.
var fillerPhrases = []string{
	"need", "want", "buy", "get", "purchase",
	"looking for", "i need", "i want", "shopping for",
}

// itemDelimiters split the cleaned text into candidate item phrases.
const itemDelimiters = ",;\n\r-*•"

// listMarker matches leading numeric list markers like "1." or "12 ".
var listMarker = regexp.MustCompile(`^\d+\.?\s*`)

// ExtractItems splits free-form checklist text into item phrases.
// The text is lower-cased, filler phrases are removed by literal
// substring replacement, and the remainder is split on list delimiters.
// Fragments of two characters or fewer are dropped. Order and duplicates
// are preserved; empty input yields an empty slice.
func ExtractItems(text string) []string {
	cleaned := strings.ToLower(text)
	for _, filler := range fillerPhrases {
		cleaned = strings.ReplaceAll(cleaned, filler, "")
	}

	parts := strings.FieldsFunc(cleaned, func(r rune) bool {
		return strings.ContainsRune(itemDelimiters, r)
	})

	items := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if utf8.RuneCountInString(part) <= 2 {
			continue
		}
		part = listMarker.ReplaceAllString(part, "")
		if part == "" {
			continue
		}
		items = append(items, part)
	}
	return items
}
