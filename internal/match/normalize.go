package match

import (
	"strings"
)

// NormalizeIdent normalizes an identifier for fuzzy matching: case is folded
// to lower and separators (_, -, spaces) are dropped, so "order_id",
// "order-id" and "OrderID" all normalize to "orderid".
func NormalizeIdent(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if !isSeparator(r) {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
