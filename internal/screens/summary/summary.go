package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocabquiz/internal/router"
	"github.com/abhisek/vocabquiz/internal/screen"
	"github.com/abhisek/vocabquiz/internal/session"
	"github.com/abhisek/vocabquiz/internal/ui/layout"
	"github.com/abhisek/vocabquiz/internal/ui/theme"
)

// maxMissedShown caps the missed-word list so the summary fits the frame.
const maxMissedShown = 8

// Options configures the summary screen.
type Options struct {
	// Saved reports that the result reached the result log.
	Saved bool
	// SaveErr is the result log error, if saving failed.
	SaveErr error
	// Retry builds the screen opened on "r". Nil hides the option.
	Retry func() screen.Screen
}

// SummaryScreen displays the result of an ended quiz.
type SummaryScreen struct {
	summary *session.Summary
	opts    Options
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.EscapeHandler = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.Summary, opts Options) *SummaryScreen {
	return &SummaryScreen{summary: summary, opts: opts}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

// HandlesEscape sends Esc home instead of back into the finished quiz.
func (s *SummaryScreen) HandlesEscape() bool {
	return true
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
	if s.opts.Retry != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Try again"})
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		case "r", "R":
			if s.opts.Retry != nil {
				next := s.opts.Retry()
				return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
			}
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	var b strings.Builder

	title := "Quiz complete!"
	if !sum.Complete {
		title = "Quiz ended early"
	}
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render(title))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center.Foreground(theme.TextDim).Render(
		fmt.Sprintf("%d words · %s · %d choices · %d:%02d",
			sum.Pairs, sum.Direction.Label(), sum.Choices, mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Answered: %d/%d        Correct: %d        Accuracy: %s",
		sum.Answered, sum.Total, sum.Correct, session.FormatAccuracy(sum.Accuracy))
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render(statsLine))
	b.WriteString("\n\n")

	if len(sum.Missed) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString(center.Foreground(theme.TextDim).Render("Missed"))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")

		for i, m := range sum.Missed {
			if i == maxMissedShown {
				b.WriteString(center.Foreground(theme.TextDim).Render(
					fmt.Sprintf("… and %d more", len(sum.Missed)-maxMissedShown)))
				b.WriteString("\n")
				break
			}
			line := fmt.Sprintf("%s → %s", m.Question.Prompt, m.Question.Answer) +
				theme.Muted.Render(fmt.Sprintf("   (you chose %s)", m.Selected))
			b.WriteString(center.Foreground(theme.Error).Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	} else if sum.Answered > 0 {
		b.WriteString(center.Foreground(theme.Success).Render("No mistakes!"))
		b.WriteString("\n\n")
	}

	switch {
	case s.opts.SaveErr != nil:
		b.WriteString(center.Foreground(theme.Error).Render("Could not save result: " + s.opts.SaveErr.Error()))
	case s.opts.Saved:
		b.WriteString(center.Foreground(theme.TextDim).Render("Result saved to history."))
	}

	return b.String()
}
