// Package document extracts checklist text from uploaded files.
package document

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"shopmate/internal/errors"
)

// Supported upload content types.
const (
	TypePDF      = "application/pdf"
	TypePlain    = "text/plain"
	TypeMarkdown = "text/markdown"
)

// pdfSampleText stands in for real PDF text extraction. The demo does
// not parse PDF content streams; any well-formed PDF yields this fixed
// checklist so the rest of the pipeline can be exercised end to end.
const pdfSampleText = `Grocery Shopping List
- Milk (2%)
- Bread (whole wheat)
- Eggs (dozen)
- Bananas
- Chicken breast
- Rice
- Pasta
- Tomatoes
- Onions
- Cheese (cheddar)

Electronics Needs
- Laptop for work
- Wireless mouse
- USB cables
- Phone charger
- Bluetooth headphones

Home Items
- Kitchen blender
- Coffee maker
- Vacuum cleaner
- Light bulbs (LED)
- Shower curtain`

var pdfHeader = []byte("%PDF")

// ExtractText pulls checklist text out of an uploaded document.
// PDF uploads are validated by magic bytes and yield the sample
// checklist; plain text is decoded as UTF-8; Markdown is flattened to
// its visible text. Anything else is rejected as unsupported.
func ExtractText(data []byte, contentType string) (string, error) {
	switch normalizeContentType(contentType) {
	case TypePDF:
		return extractPDF(data)
	case TypePlain:
		return extractPlain(data)
	case TypeMarkdown:
		return extractMarkdown(data)
	default:
		return "", errors.NewUnsupportedFile(contentType)
	}
}

func extractPDF(data []byte) (string, error) {
	if !bytes.HasPrefix(data, pdfHeader) {
		return "", errors.NewInvalidRequest("file is not a valid PDF")
	}
	return pdfSampleText, nil
}

func extractPlain(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errors.NewInvalidRequest("text file is not valid UTF-8")
	}
	return string(data), nil
}

// normalizeContentType drops any parameters, e.g. "text/plain;
// charset=utf-8" becomes "text/plain".
func normalizeContentType(contentType string) string {
	base, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(base))
}
