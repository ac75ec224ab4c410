package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(MinWidth-1, MinHeight))
	assert.True(t, IsTooSmall(MinWidth, MinHeight-1))
	assert.False(t, IsTooSmall(MinWidth, MinHeight))
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Quiz", "✓ 3/5", 80)
	assert.Contains(t, h, "Vocabquiz")
	assert.Contains(t, h, "Quiz")
	assert.Contains(t, h, "✓ 3/5")
	assert.Equal(t, 3, lipgloss.Height(h))
}

func TestRenderFrameFillsHeight(t *testing.T) {
	header := RenderHeader("Home", "", 60)
	footer := RenderFooter([]KeyHint{{Key: "Enter", Description: "Select"}}, 60)
	frame := RenderFrame(header, "body", footer, 60, 20)

	assert.Equal(t, 20, lipgloss.Height(frame))
	assert.True(t, strings.Contains(frame, "body"))
	assert.Contains(t, frame, "Select")
}
