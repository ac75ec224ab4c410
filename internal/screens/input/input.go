package input

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocabquiz/internal/router"
	"github.com/abhisek/vocabquiz/internal/screen"
	"github.com/abhisek/vocabquiz/internal/screens/quiz"
	sess "github.com/abhisek/vocabquiz/internal/session"
	"github.com/abhisek/vocabquiz/internal/ui/components"
	"github.com/abhisek/vocabquiz/internal/ui/layout"
	"github.com/abhisek/vocabquiz/internal/ui/theme"
)

type field int

const (
	fieldWords field = iota
	fieldChoices
	fieldStart
	fieldCount
)

// InputScreen collects the word list and the number of choices, then
// starts a quiz. Input errors keep the user here.
type InputScreen struct {
	words   textarea.Model
	choices components.TextInput
	start   components.Button
	focus   field

	cfg        sess.Config
	opts       quiz.Options
	newSession func(sess.Config) *sess.Session
	errMsg     string
}

var _ screen.Screen = (*InputScreen)(nil)
var _ screen.KeyHintProvider = (*InputScreen)(nil)

// New creates an InputScreen prefilled with raw (may be empty) and the
// choice count from cfg.
func New(cfg sess.Config, opts quiz.Options, raw string) *InputScreen {
	words := textarea.New()
	words.Placeholder = "cat 고양이\ndog 개\nbird 새"
	words.ShowLineNumbers = false
	words.SetValue(raw)

	choices := components.NewTextInput("4", true, 2)
	choices.SetValue(strconv.Itoa(cfg.ChoicesPerQuestion))

	return &InputScreen{
		words:   words,
		choices: choices,
		start:   components.NewButton("Start quiz", false, nil),
		cfg:     cfg,
		opts:    opts,
		newSession: func(c sess.Config) *sess.Session {
			return sess.New(c)
		},
	}
}

func (s *InputScreen) Init() tea.Cmd {
	return s.words.Focus()
}

// Words returns the current word list text.
func (s *InputScreen) Words() string {
	return s.words.Value()
}

func (s *InputScreen) Title() string {
	return "New Quiz"
}

func (s *InputScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+S", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *InputScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, s.updateFocused(msg)
	}

	switch kmsg.String() {
	case "tab":
		return s, s.setFocus((s.focus + 1) % fieldCount)
	case "shift+tab":
		return s, s.setFocus((s.focus + fieldCount - 1) % fieldCount)
	case "ctrl+s":
		return s.submit()
	case "enter":
		if s.focus != fieldWords {
			return s.submit()
		}
	}

	return s, s.updateFocused(msg)
}

func (s *InputScreen) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus {
	case fieldWords:
		s.words, cmd = s.words.Update(msg)
	case fieldChoices:
		s.choices, cmd = s.choices.Update(msg)
	}
	return cmd
}

func (s *InputScreen) setFocus(f field) tea.Cmd {
	s.focus = f
	s.words.Blur()
	s.choices.Blur()
	s.start.Active = f == fieldStart

	switch f {
	case fieldWords:
		return s.words.Focus()
	case fieldChoices:
		return s.choices.Focus()
	}
	return nil
}

// submit validates the form by beginning a session and pushes the quiz.
func (s *InputScreen) submit() (screen.Screen, tea.Cmd) {
	n, err := s.choices.NumericValue()
	if err != nil {
		s.errMsg = "Number of choices must be a whole number."
		return s, nil
	}

	cfg := s.cfg
	cfg.ChoicesPerQuestion = n

	next, err := s.launch(cfg, s.words.Value())
	if err != nil {
		s.errMsg = describe(err)
		return s, nil
	}

	s.errMsg = ""
	return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

// Launch begins a session on raw and returns its quiz screen, for callers
// that skip the form. Errors are those of session.Begin.
func Launch(cfg sess.Config, opts quiz.Options, raw string) (screen.Screen, error) {
	return New(cfg, opts, raw).launch(cfg, raw)
}

// launch begins a fresh session on raw and wraps it in a quiz screen whose
// summary can start the same quiz again.
func (s *InputScreen) launch(cfg sess.Config, raw string) (screen.Screen, error) {
	state := s.newSession(cfg)
	if err := state.Begin(raw); err != nil {
		return nil, err
	}

	qopts := s.opts
	qopts.Retry = func() screen.Screen {
		next, err := s.launch(cfg, raw)
		if err != nil {
			back := New(cfg, s.opts, raw)
			back.errMsg = describe(err)
			return back
		}
		return next
	}
	return quiz.New(state, qopts), nil
}

func describe(err error) string {
	msg := err.Error()
	return strings.ToUpper(msg[:1]) + msg[1:] + "."
}

func (s *InputScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	s.words.SetWidth(cw)
	s.words.SetHeight(max(3, min(12, height-14)))

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Enter your words"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		"One pair per line: term, then definition. Put two spaces after a term that has spaces."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(s.borderColor(fieldWords)).
			Render(s.words.View())))
	b.WriteString("\n\n")

	choicesLine := lipgloss.JoinHorizontal(lipgloss.Center,
		theme.Body.Render("Choices per question: "),
		lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(s.borderColor(fieldChoices)).
			Width(8).
			Render(s.choices.View()),
		"   ",
		s.start.View(),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, choicesLine))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.ErrorText.Render(s.errMsg)))
	} else if v := s.words.Value(); strings.TrimSpace(v) != "" {
		b.WriteString("\n\n")
		lines := len(strings.Split(strings.TrimSpace(v), "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render(fmt.Sprintf("%d lines", lines))))
	}

	return b.String()
}

func (s *InputScreen) borderColor(f field) color.Color {
	if s.focus == f {
		return theme.Primary
	}
	return theme.Border
}
