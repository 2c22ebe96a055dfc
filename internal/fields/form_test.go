package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractForm_LabeledLines(t *testing.T) {
	text := "First Name: Ada\nLast Name: Lovelace\nEmail: ada@example.com\nthis line has no label\n  Age: 36"
	m := ExtractForm(text)

	assert.Equal(t, []string{"first_name", "last_name", "email", "age"}, m.Keys())
	assertField(t, m, "first_name", "Ada")
	assertField(t, m, "last_name", "Lovelace")
	assertField(t, m, "email", "ada@example.com")
	assertField(t, m, "age", "36")
}

func TestExtractForm_DuplicateLabelOverwrites(t *testing.T) {
	m := ExtractForm("Name: first\nCity: Lagos\nName: second")

	// later value wins but the key stays at its original position
	assert.Equal(t, []string{"name", "city"}, m.Keys())
	assertField(t, m, "name", "second")
}

func TestExtractForm_SkipsNonLabelLines(t *testing.T) {
	m := ExtractForm("please fill out the form below\n12: not a label\n\n")
	assert.Equal(t, 0, m.Len())
}

func TestExtractForm_Empty(t *testing.T) {
	assert.Equal(t, 0, ExtractForm("").Len())
}
