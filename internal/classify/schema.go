package classify

// BuildProfileJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing a keyword-profile override file: an ordered array
// of {category, anchors, context} objects.
func BuildProfileJSONSchema(allowedCategories []string) map[string]any {
	keywordList := map[string]any{
		"type":     "array",
		"minItems": 1,
		"items":    map[string]any{"type": "string", "minLength": 1},
	}

	return map[string]any{
		"type":     "array",
		"minItems": 1,
		"items": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"category": map[string]any{
					"type": "string",
					"enum": allowedCategories,
				},
				"anchors": keywordList,
				"context": keywordList,
			},
			"required": []string{"category", "anchors"},
		},
	}
}
