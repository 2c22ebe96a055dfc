package constants

import "strings"

// Category is the closed document-type taxonomy. Unknown is the explicit
// no-match sentinel and is never scored.
type Category string

const (
	Invoice            Category = "invoice"
	Contract           Category = "contract"
	Report             Category = "report"
	FinancialStatement Category = "financial_statement"
	Compliance         Category = "compliance"
	Email              Category = "email"
	Form               Category = "form"
	Unknown            Category = "unknown"
)

// allCategories lists the scorable categories. Order matters: it is the
// classifier tie-break order, so keep it stable.
var allCategories = []Category{
	Invoice,
	Contract,
	Report,
	FinancialStatement,
	Compliance,
	Email,
	Form,
}

func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps an input string onto a known category. Unrecognized
// input maps to Unknown.
func Canonicalize(input string) (Category, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return Unknown, false
	}
	if normalized == string(Unknown) {
		return Unknown, true
	}
	for _, cat := range allCategories {
		if normalized == string(cat) {
			return cat, true
		}
	}
	return Unknown, false
}
