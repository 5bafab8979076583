package scrollbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViewport(height, lines int) viewport.Model {
	vp := viewport.New(20, height)
	content := make([]string, lines)
	for i := range content {
		content[i] = "line"
	}
	vp.SetContent(strings.Join(content, "\n"))
	return vp
}

func TestGenerate_ContentFits(t *testing.T) {
	vp := newViewport(10, 5)
	cells := Generate(&vp, 10, nil)

	require.Len(t, cells, 10)
	for _, c := range cells {
		assert.Equal(t, " ", c)
	}
}

func TestGenerate_ThumbMovesWithScroll(t *testing.T) {
	vp := newViewport(10, 100)

	top := Generate(&vp, 10, nil)
	assert.Contains(t, top[0], thumb)
	assert.Contains(t, top[9], track)

	vp.GotoBottom()
	bottom := Generate(&vp, 10, nil)
	assert.Contains(t, bottom[0], track)
	assert.Contains(t, bottom[9], thumb)
}

func TestGenerate_ZeroHeight(t *testing.T) {
	vp := newViewport(10, 100)
	assert.Empty(t, Generate(&vp, 0, nil))
}

func TestOverlay(t *testing.T) {
	vp := newViewport(4, 40)
	lines := strings.Split(Overlay(&vp, nil), "\n")

	require.Len(t, lines, 4)
	for _, l := range lines {
		assert.True(t, strings.HasPrefix(l, "line"))
	}
}
