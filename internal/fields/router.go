package fields

import "github.com/adeyemi-oso/doctriage/constants"

// Route dispatches text to the extractor for the given category. Unknown
// and any category without a dedicated extractor degrade to an empty map;
// an unroutable category is not an error.
func Route(category constants.Category, text string) *FieldMap {
	switch category {
	case constants.Invoice:
		return ExtractInvoice(text)
	case constants.Contract:
		return ExtractContract(text)
	case constants.Form:
		return ExtractForm(text)
	case constants.Report:
		return ExtractReport(text)
	case constants.FinancialStatement:
		return ExtractFinancial(text)
	case constants.Compliance:
		return ExtractCompliance(text)
	case constants.Email:
		return ExtractEmail(text)
	default:
		return NewFieldMap()
	}
}
