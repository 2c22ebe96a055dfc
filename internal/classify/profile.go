package classify

import "github.com/adeyemi-oso/doctriage/constants"

// Profile holds the keyword table for one category. Anchors are
// category-defining phrases (weight 3), context terms are supportive
// (weight 1). All keywords are lowercase literals matched by substring
// containment.
type Profile struct {
	Category constants.Category `json:"category"`
	Anchors  []string           `json:"anchors"`
	Context  []string           `json:"context"`
}

// DefaultProfiles returns the built-in keyword tables. The slice order is
// the tie-break order: when two categories score equally, the one declared
// first wins. Callers must not mutate the returned profiles.
func DefaultProfiles() []Profile {
	return []Profile{
		{
			Category: constants.Invoice,
			Anchors:  []string{"invoice no:", "bill to:", "total amount due:", "payment terms:"},
			Context:  []string{"description", "tax", "subtotal", "qty"},
		},
		{
			Category: constants.Contract,
			Anchors:  []string{"service agreement", "this agreement is made", "term:", "termination:"},
			Context:  []string{"agreement", "party", "signed", "effective date"},
		},
		{
			Category: constants.Report,
			Anchors:  []string{"executive summary:", "key findings:", "performance report"},
			Context:  []string{"prepared by:", "conclusion", "analysis"},
		},
		{
			Category: constants.FinancialStatement,
			Anchors:  []string{"balance sheet", "income statement", "cash flow", "as of"},
			Context:  []string{"assets:", "liabilities:", "equity", "receivable", "payable"},
		},
		{
			Category: constants.Compliance,
			Anchors:  []string{"compliance policy", "regulation:", "gdpr", "review cycle:"},
			Context:  []string{"regulatory", "audit", "policy", "requirements"},
		},
		{
			Category: constants.Email,
			Anchors:  []string{"from:", "to:", "subject:", "sent:", "cc:"},
			Context:  []string{"best regards", "hi ", "attached documents"},
		},
		{
			Category: constants.Form,
			Anchors:  []string{"please fill", "application form", "signature of applicant"},
			Context:  []string{"checkbox", "[ ]", "male", "female", "dob:"},
		},
	}
}
