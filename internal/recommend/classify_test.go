package recommend

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		item     string
		wantName string
		wantCat  string
	}{
		{"laptop for work", "Laptop", "Electronics"},
		{"macbook pro", "MacBook Pro", "Electronics"},
		{"wireless headphones", "Wireless Headphones", "Electronics"},
		{"earbuds", "Wireless Headphones", "Electronics"},
		{"new iphone", "iPhone", "Electronics"},
		{"smartphone", "Smartphone", "Electronics"},
		{"mechanical keyboard", "Wireless Keyboard", "Electronics"},
		{"gaming mouse", "Wireless Mouse", "Electronics"},
		{"blender for smoothies", "Kitchen Blender", "Home & Kitchen"},
		{"coffee maker", "Coffee Maker", "Home & Kitchen"},
		{"vacuum", "Vacuum Cleaner", "Home & Kitchen"},
		{"running shoes", "Running Shoes", "Sports & Outdoors"},
		{"dress shirt", "Clothing", "Clothing"},
		{"garden hose", "garden hose", "General"},
	}

	for _, tt := range tests {
		t.Run(tt.item, func(t *testing.T) {
			got := Classify(tt.item)
			if got.ProcessedText != tt.wantName {
				t.Errorf("ProcessedText = %q, want %q", got.ProcessedText, tt.wantName)
			}
			if got.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", got.Category, tt.wantCat)
			}
			if got.OriginalText != tt.item {
				t.Errorf("OriginalText = %q, want %q", got.OriginalText, tt.item)
			}
		})
	}
}

func TestClassifyGrocery(t *testing.T) {
	got := Classify("milk 2%")
	if got.ProcessedText != "milk 2%" {
		t.Errorf("ProcessedText = %q, want phrase kept verbatim", got.ProcessedText)
	}
	if got.Category != "Grocery" {
		t.Errorf("Category = %q, want Grocery", got.Category)
	}
	want := []string{"milk 2%", "grocery", "food items"}
	if !reflect.DeepEqual(got.SearchTerms, want) {
		t.Errorf("SearchTerms = %v, want %v", got.SearchTerms, want)
	}
}

func TestClassifyGeneralKeepsPhrase(t *testing.T) {
	got := Classify("desk lamp")
	if got.ProcessedText != "desk lamp" || got.Category != "General" {
		t.Errorf("got %q/%q, want phrase kept with General category", got.ProcessedText, got.Category)
	}
	if !reflect.DeepEqual(got.Keywords, []string{"desk lamp"}) {
		t.Errorf("Keywords = %v", got.Keywords)
	}
}

func TestProcessChecklist(t *testing.T) {
	items := ProcessChecklist("laptop, running shoes, milk")
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	if items[0].ProcessedText != "Laptop" {
		t.Errorf("items[0] = %q, want Laptop", items[0].ProcessedText)
	}
	if items[1].ProcessedText != "Running Shoes" {
		t.Errorf("items[1] = %q, want Running Shoes", items[1].ProcessedText)
	}
	if items[2].Category != "Grocery" {
		t.Errorf("items[2] category = %q, want Grocery", items[2].Category)
	}
}
