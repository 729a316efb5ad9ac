package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReassignsIndexes(t *testing.T) {
	doc := New([]Token{
		{Index: 7, Text: "a"},
		{Index: 7, Text: "b"},
		{Index: 0, Text: "c"},
	})
	for i, tok := range doc.Tokens {
		assert.Equal(t, i, tok.Index)
	}
}

func TestText(t *testing.T) {
	doc := New([]Token{
		{Text: "Income", Whitespace: " "},
		{Text: "was", Whitespace: "  "},
		{Text: "$", Whitespace: ""},
		{Text: "9.4", Whitespace: "\n"},
		{Text: "milion", Whitespace: ""},
	})
	assert.Equal(t, "Income was  $9.4\nmilion", doc.Text())
	assert.Equal(t, 5, doc.Len())
	assert.Equal(t, "was  ", doc.Tokens[1].TextWithWS())
}

func TestTextEmpty(t *testing.T) {
	assert.Equal(t, "", Doc{}.Text())
	assert.Equal(t, 0, Doc{}.Len())
}
