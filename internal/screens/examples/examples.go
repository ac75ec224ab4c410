package examples

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocabquiz/internal/router"
	"github.com/abhisek/vocabquiz/internal/screen"
	"github.com/abhisek/vocabquiz/internal/screens/input"
	"github.com/abhisek/vocabquiz/internal/screens/quiz"
	sess "github.com/abhisek/vocabquiz/internal/session"
	"github.com/abhisek/vocabquiz/internal/ui/components"
	"github.com/abhisek/vocabquiz/internal/ui/layout"
	"github.com/abhisek/vocabquiz/internal/ui/theme"
	"github.com/abhisek/vocabquiz/internal/wordlist"
)

// ExamplesScreen lists the bundled word lists. Picking one opens the input
// screen prefilled with it so the words can be edited before starting.
type ExamplesScreen struct {
	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*ExamplesScreen)(nil)
var _ screen.KeyHintProvider = (*ExamplesScreen)(nil)

// New creates an ExamplesScreen.
func New(cfg sess.Config, opts quiz.Options) *ExamplesScreen {
	s := &ExamplesScreen{}

	var items []components.MenuItem
	for _, ex := range wordlist.Examples() {
		name := ex.Name
		items = append(items, components.MenuItem{
			Label: ex.Title,
			Hint:  fmt.Sprintf("%d pairs", ex.Pairs),
			Action: func() tea.Cmd {
				raw, err := wordlist.ExampleText(name)
				if err != nil {
					s.errMsg = err.Error()
					return nil
				}
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: input.New(cfg, opts, raw)}
				}
			},
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *ExamplesScreen) Init() tea.Cmd {
	return nil
}

func (s *ExamplesScreen) Title() string {
	return "Example Lists"
}

func (s *ExamplesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Use list"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ExamplesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ExamplesScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Bundled word lists"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Pick one to review or edit it before starting."))
	b.WriteString("\n\n")

	cw := components.ContentWidth(width)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.Card(s.menu.View(), cw)))

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.ErrorText.Render(s.errMsg)))
	}
	return b.String()
}
