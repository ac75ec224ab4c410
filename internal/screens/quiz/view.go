package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/vocabquiz/internal/session"
	"github.com/abhisek/vocabquiz/internal/ui/components"
	"github.com/abhisek/vocabquiz/internal/ui/layout"
	"github.com/abhisek/vocabquiz/internal/ui/theme"
)

// renderQuestionView renders the prompt, the choices and, after an answer,
// the feedback line.
func (s *QuizScreen) renderQuestionView(width, height int) string {
	q := s.question
	answered, total := s.state.Progress()
	cw := components.ContentWidth(width)

	var b strings.Builder

	if !layout.IsCompactHeight(height) {
		bar := components.NewProgressBar(fmt.Sprintf("%d/%d", answered, total),
			float64(answered)/float64(max(total, 1)), false, cw)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n\n")
	}

	label := theme.Muted.Render(fmt.Sprintf("Question %d of %d · %s → %s",
		q.Number, total, q.Direction.PromptSide(), q.Direction.AnswerSide()))
	prompt := theme.Prompt.Render(q.Prompt)
	card := components.Card(lipgloss.JoinVertical(lipgloss.Center, label, "", prompt), cw)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Render(s.choices.View())))
	b.WriteString("\n")

	if s.showFeedback {
		b.WriteString(s.renderFeedback(width))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render(fmt.Sprintf("Select (1-%d) or use arrows + Enter", len(q.Choices)))))
	}

	return b.String()
}

// renderFeedback renders the result of the last answer.
func (s *QuizScreen) renderFeedback(width int) string {
	res := s.lastResult
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	if res.Correct {
		b.WriteString(center.Foreground(theme.Success).Bold(true).Render("Correct!"))
	} else {
		b.WriteString(center.Foreground(theme.Error).Bold(true).Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.TextDim).Render("Correct answer: " + res.CorrectAnswer))
	}
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(fmt.Sprintf("Accuracy so far: %s (%d/%d)",
		sess.FormatAccuracy(res.RunningAccuracy), res.CorrectCount, res.Answered)))
	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render("End quiz early?"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Answers so far count toward your results."))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Success).Render("[Y] Yes, end quiz"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Render("[N] No, keep going"))
	return b.String()
}

// renderLoading renders the state before the first question.
func renderLoading(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Preparing your quiz...")
}

// renderError renders an error message.
func renderError(width, height int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
