package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vovakirdan/slime-siege/internal/core"
)

func TestColorStylesCoverPalette(t *testing.T) {
	for _, c := range core.Colors() {
		_, ok := colorStyles[c]
		assert.True(t, ok, "color %d has no style", c)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(0, 0, "Wave 3", core.ColorBrightWhite)
	s.DrawTextColored(7, 0, "ooo", core.ColorBrightGreen)
	s.DrawText(0, 1, "castle")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, out, "Wave 3")
	assert.Contains(t, out, "ooo")
	assert.Contains(t, lines[1], "castle")
}
