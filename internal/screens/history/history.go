package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocabquiz/internal/router"
	"github.com/abhisek/vocabquiz/internal/screen"
	"github.com/abhisek/vocabquiz/internal/session"
	"github.com/abhisek/vocabquiz/internal/store"
	"github.com/abhisek/vocabquiz/internal/ui/layout"
	"github.com/abhisek/vocabquiz/internal/ui/theme"
)

// recentLimit caps how many sessions the screen lists.
const recentLimit = 50

type historyLoadedMsg struct {
	Sessions []store.SessionRecord
	Totals   store.Totals
	Err      error
}

type answersLoadedMsg struct {
	SessionID string
	Answers   []store.AnswerRecord
	Err       error
}

// HistoryScreen lists logged quizzes. Enter expands one to show its answers.
type HistoryScreen struct {
	results  store.ResultRepo
	sessions []store.SessionRecord
	totals   store.Totals
	answers  map[string][]store.AnswerRecord // sessionID → answers
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(results store.ResultRepo) *HistoryScreen {
	return &HistoryScreen{
		results:  results,
		answers:  make(map[string][]store.AnswerRecord),
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	results := s.results
	return func() tea.Msg {
		ctx := context.Background()

		sessions, err := results.Recent(ctx, recentLimit)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		totals, err := results.Totals(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Sessions: sessions, Totals: totals}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Answers"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.totals = msg.Totals
		}
		s.loaded = true
		return s, nil

	case answersLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.answers[msg.SessionID] = msg.Answers
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if len(s.sessions) == 0 {
				return s, nil
			}
			s.expanded[s.selected] = !s.expanded[s.selected]
			if s.expanded[s.selected] {
				return s, s.loadAnswers(s.sessions[s.selected].ID)
			}
			return s, nil
		}
	}
	return s, nil
}

// loadAnswers fetches a session's answers unless they are cached.
func (s *HistoryScreen) loadAnswers(id string) tea.Cmd {
	if _, ok := s.answers[id]; ok {
		return nil
	}
	results := s.results
	return func() tea.Msg {
		answers, err := results.Answers(context.Background(), id)
		return answersLoadedMsg{SessionID: id, Answers: answers, Err: err}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quizzes yet. Start one from the home screen!")
	}

	var b strings.Builder
	b.WriteString("\n")

	totals := fmt.Sprintf("%d quizzes  %d answered  %s overall",
		s.totals.Sessions, s.totals.Answered, session.FormatAccuracy(s.totals.Accuracy()))
	b.WriteString(theme.Subtitle.Width(width).Render(totals))
	b.WriteString("\n\n")

	for i, rec := range s.sessions {
		dateStr := rec.StartedAt.Local().Format("Jan 02, 2006 15:04")
		secs := int(rec.FinishedAt.Sub(rec.StartedAt).Seconds())
		durationStr := fmt.Sprintf("%d:%02d", secs/60, secs%60)

		status := ""
		if !rec.Complete {
			status = "  (ended early)"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %d/%d correct  %s%s",
			prefix, dateStr, durationStr, rec.Correct, rec.Questions,
			session.FormatAccuracy(rec.Accuracy()), status)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(renderAnswers(s.answers[rec.ID], s.answersLoaded(rec.ID), width))
		}
	}

	return b.String()
}

func (s *HistoryScreen) answersLoaded(id string) bool {
	_, ok := s.answers[id]
	return ok
}

func renderAnswers(answers []store.AnswerRecord, loaded bool, width int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	if !loaded {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render("    Loading...")) + "\n"
	}
	if len(answers) == 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render("    No answers recorded")) + "\n"
	}

	var b strings.Builder
	for _, a := range answers {
		var line string
		if a.Correct {
			line = theme.Correct.Render(fmt.Sprintf("    ✓ %s → %s", a.Prompt, a.Expected))
		} else {
			line = theme.Incorrect.Render(fmt.Sprintf("    ✗ %s → %s", a.Prompt, a.Expected)) +
				theme.Muted.Render(fmt.Sprintf("  (picked %s)", a.Selected))
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}
	return b.String()
}
