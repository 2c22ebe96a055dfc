package fields

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", " \t\n\r  ", ""},
		{"single word", "hello", "hello"},
		{"internal runs", "a  b\tc\nd\r\ne", "a b c d e"},
		{"leading and trailing", "  padded  ", "padded"},
		{"case and punctuation preserved", "Total:  $1,250.00", "Total: $1,250.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"already normal",
		"lots\n\nof\t\twhitespace   here",
		"  \n mixed \t runs \r\n everywhere  ",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input: %q", in)
		assert.NotContains(t, once, "  ")
		assert.NotContains(t, once, "\t")
		assert.NotContains(t, once, "\n")
	}
}

func TestNormalize_LongRun(t *testing.T) {
	in := "a" + strings.Repeat(" ", 500) + "b"
	assert.Equal(t, "a b", Normalize(in))
}
