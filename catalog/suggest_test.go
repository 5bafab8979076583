package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	c := Default()

	assert.Equal(t, []string{"flex"}, Suggest(c, "flx", 1))
	assert.Equal(t, []string{"flex"}, Suggest(c, "  FLX ", 1))
	assert.Equal(t, []string{"hidden"}, Suggest(c, "hiden", 1))

	got := Suggest(c, "flx", 3)
	assert.LessOrEqual(t, len(got), 3)
	assert.Equal(t, "flex", got[0])
}

func TestSuggestNothingClose(t *testing.T) {
	c := Default()
	assert.Empty(t, Suggest(c, "zzz-no-match", 3))
	assert.Empty(t, Suggest(c, "", 3))
	assert.Empty(t, Suggest(c, "flx", 0))
	assert.Empty(t, Suggest(nil, "flx", 3))
}
