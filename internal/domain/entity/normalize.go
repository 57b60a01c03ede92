package entity

import "strings"

// NormalizeAddressText folds case and whitespace so that "  Old St " and
// "old st" compare equal. It is the only normalization used for address
// matching and for notification dedup keys.
func NormalizeAddressText(text string) string {
	return strings.ToLower(strings.Join(strings.FieldsFunc(text, isAddressSpace), " "))
}

// isAddressSpace is the ASCII class [ \t\n\r\f\v] used by the SQL
// normalization expression. Unicode spaces such as U+00A0 stay part of the text.
func isAddressSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}
