package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold_Diacritics(t *testing.T) {
	assert.Equal(t, "montreal", Fold("Montréal"))
	assert.Equal(t, "quebec city", Fold("Québec City"))
	assert.Equal(t, "plain text", Fold("Plain Text"))
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			"drops stop words and short tokens",
			"We reduce the claims processing time for insurers",
			[]string{"reduce", "claims", "processing", "insurers"},
		},
		{
			"strips punctuation",
			"faster, cheaper; better!",
			[]string{"faster", "cheaper", "better"},
		},
		{
			"empty input",
			"",
			[]string{},
		},
		{
			"only stop words",
			"the and for are",
			[]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.text))
		})
	}
}

func TestTokenizeWithPhrases(t *testing.T) {
	got := TokenizeWithPhrases("reduce claims processing")

	assert.Contains(t, got, "reduce")
	assert.Contains(t, got, "claims")
	assert.Contains(t, got, "processing")
	assert.Contains(t, got, "reduce claims")
	assert.Contains(t, got, "claims processing")
	assert.NotContains(t, got, "reduce processing", "only adjacent pairs form phrases")
}

func TestDedupe(t *testing.T) {
	got := Dedupe([]string{"a", "b", "a", "c", "b"})
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestExcerpt(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog"

	t.Run("clamps to bounds", func(t *testing.T) {
		got := Excerpt(text, 4, 9, 100, 100)
		assert.Equal(t, text, got)
	})

	t.Run("pads around the match", func(t *testing.T) {
		got := Excerpt(text, 16, 19, 6, 6)
		assert.Equal(t, "brown fox jumps", got)
	})
}
