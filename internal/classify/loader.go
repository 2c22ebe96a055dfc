package classify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/adeyemi-oso/doctriage/constants"
)

// LoadProfiles reads a keyword-profile override from a JSON file, validates
// it against the profile schema, and returns profiles in file order (file
// order becomes tie-break order). Keywords are lowercased on load since the
// classifier matches against lowercased text.
func LoadProfiles(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}

	if err := ValidateJSONAgainstSchema(BuildProfileJSONSchema(constants.AsStringSlice()), data); err != nil {
		return nil, fmt.Errorf("profiles %q: %w", path, err)
	}

	var profiles []Profile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}
	for i := range profiles {
		for j, k := range profiles[i].Anchors {
			profiles[i].Anchors[j] = strings.ToLower(k)
		}
		for j, k := range profiles[i].Context {
			profiles[i].Context[j] = strings.ToLower(k)
		}
	}
	return profiles, nil
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
