package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocabquiz/internal/session"
	"github.com/abhisek/vocabquiz/internal/store"
	"github.com/abhisek/vocabquiz/internal/ui/theme"
)

const bannerFull = `██╗   ██╗ ██████╗  ██████╗ █████╗ ██████╗  ██████╗ ██╗   ██╗██╗███████╗
██║   ██║██╔═══██╗██╔════╝██╔══██╗██╔══██╗██╔═══██╗██║   ██║██║╚══███╔╝
██║   ██║██║   ██║██║     ███████║██████╔╝██║   ██║██║   ██║██║  ███╔╝
╚██╗ ██╔╝██║   ██║██║     ██╔══██║██╔══██╗██║▄▄ ██║██║   ██║██║ ███╔╝
 ╚████╔╝ ╚██████╔╝╚██████╗██║  ██║██████╔╝╚██████╔╝╚██████╔╝██║███████╗
  ╚═══╝   ╚═════╝  ╚═════╝╚═╝  ╚═╝╚═════╝  ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝`

const bannerCompact = "V · O · C · A · B · Q · U · I · Z"

// bannerWidth is the display width of bannerFull.
const bannerWidth = 71

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	// Leave room for the frame border (2) + inner padding (4)
	w := frameWidth - 6
	if w > bannerWidth+2 {
		w = bannerWidth + 2
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderBanner returns the block-letter title, or the compact line when the
// art would not fit.
func renderBanner(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true)

	text := bannerFull
	if compact || cw < bannerWidth {
		text = bannerCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(text))
}

// renderStatsBar renders lifetime totals in a bordered box matching content width.
func renderStatsBar(totals *store.Totals, cw int, compact bool) string {
	sessionStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	accStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	answeredStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	switch {
	case totals == nil || totals.Sessions == 0:
		stats = dimStyle.Render("No quizzes yet")
	case compact:
		stats = fmt.Sprintf("%s %s %s",
			sessionStyle.Render(fmt.Sprintf("#%d", totals.Sessions)),
			answeredStyle.Render(fmt.Sprintf("?%d", totals.Answered)),
			accStyle.Render(session.FormatAccuracy(totals.Accuracy())),
		)
	default:
		stats = fmt.Sprintf("%s  %s  %s",
			sessionStyle.Render(fmt.Sprintf("%d QUIZZES", totals.Sessions)),
			answeredStyle.Render(fmt.Sprintf("%d ANSWERED", totals.Answered)),
			accStyle.Render(session.FormatAccuracy(totals.Accuracy())+" ACCURACY"),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int, disabled map[int]bool) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Accent).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	disabledBtn := normalBtn.Foreground(theme.TextDim)

	var buttons []string
	for i, label := range items {
		switch {
		case disabled[i]:
			buttons = append(buttons, disabledBtn.Render(label))
		case i == selected:
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		default:
			buttons = append(buttons, normalBtn.Render(label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact renders menu items as plain lines for terminals too
// short for bordered buttons.
func renderMenuCompact(items []string, selected int, cw int, disabled map[int]bool) string {
	var lines []string
	for i, label := range items {
		var line string
		switch {
		case disabled[i]:
			line = lipgloss.NewStyle().Foreground(theme.TextDim).Render("   " + label)
		case i == selected:
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Accent).
				Bold(true).
				Render(" ▸ " + label + " ")
		default:
			line = lipgloss.NewStyle().Foreground(theme.Text).Render("   " + label)
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderFrame wraps content in a double-border frame, centered vertically
// and horizontally within the given dimensions.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).   // account for border chars
		Height(height - 2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
