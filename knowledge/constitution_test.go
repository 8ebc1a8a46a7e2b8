package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotateArrestBucket(t *testing.T) {
	refs, statutes := Annotate("arrest and police custody")
	require.NotEmpty(t, refs)
	require.NotEmpty(t, statutes)

	var hasArticle22 bool
	for _, r := range refs {
		if r.Article == "Article 22" {
			hasArticle22 = true
		}
	}
	assert.True(t, hasArticle22)
}

func TestAnnotateUnmatchedIsSilentNoOp(t *testing.T) {
	refs, statutes := Annotate("quantum physics homework")
	assert.Nil(t, refs)
	assert.Nil(t, statutes)
}

func TestAnnotateFirstBucketWins(t *testing.T) {
	// "divorce" triggers the maintenance bucket, declared before the
	// arrest bucket, even though "police" also appears
	refs, _ := Annotate("divorce and police trouble")
	require.NotEmpty(t, refs)
	assert.Equal(t, "Article 15(3)", refs[0].Article)
}

func TestAnnotateReturnsCopies(t *testing.T) {
	refs, statutes := Annotate("property inheritance")
	require.NotEmpty(t, refs)
	require.NotEmpty(t, statutes)

	refs[0].Article = "mutated"
	statutes[0] = "mutated"

	again, againStatutes := Annotate("property inheritance")
	assert.NotEqual(t, "mutated", again[0].Article)
	assert.NotEqual(t, "mutated", againStatutes[0])
}

func TestFormatReferences(t *testing.T) {
	assert.Empty(t, FormatReferences(nil))

	refs, _ := Annotate("court hearing")
	require.NotEmpty(t, refs)

	out := FormatReferences(refs)
	assert.Contains(t, out, "**Constitutional Basis:**")
	for _, r := range refs {
		assert.Contains(t, out, r.Article)
		assert.Contains(t, out, r.Description)
	}
}

func TestFormatStatutes(t *testing.T) {
	assert.Empty(t, FormatStatutes(nil))

	out := FormatStatutes([]string{"Limitation Act, 1963", "Indian Evidence Act, 1872"})
	assert.Contains(t, out, "**Relevant Statutes:**")
	assert.Contains(t, out, "- Limitation Act, 1963\n")
	assert.Contains(t, out, "- Indian Evidence Act, 1872\n")
}
