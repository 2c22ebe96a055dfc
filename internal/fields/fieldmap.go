package fields

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// FieldMap is an insertion-ordered mapping from field name to optional
// value. A nil value means the field's pattern did not match; it serializes
// as an explicit JSON null, never an omitted key.
type FieldMap struct {
	om *orderedmap.OrderedMap[string, *string]
}

func NewFieldMap() *FieldMap {
	return &FieldMap{om: orderedmap.New[string, *string]()}
}

// Set stores a value under key. Re-setting an existing key overwrites the
// value but keeps the key's original position, matching the form
// extractor's duplicate-line semantics.
func (m *FieldMap) Set(key string, value *string) {
	m.om.Set(key, value)
}

func (m *FieldMap) Get(key string) (*string, bool) {
	return m.om.Get(key)
}

func (m *FieldMap) Len() int {
	return m.om.Len()
}

// Keys returns field names in insertion order.
func (m *FieldMap) Keys() []string {
	keys := make([]string, 0, m.om.Len())
	for pair := m.om.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Each calls fn for every field in insertion order.
func (m *FieldMap) Each(fn func(key string, value *string)) {
	for pair := m.om.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

func (m *FieldMap) MarshalJSON() ([]byte, error) {
	return m.om.MarshalJSON()
}

func (m *FieldMap) UnmarshalJSON(data []byte) error {
	if m.om == nil {
		m.om = orderedmap.New[string, *string]()
	}
	return m.om.UnmarshalJSON(data)
}
