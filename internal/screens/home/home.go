package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vocabquiz/internal/router"
	"github.com/abhisek/vocabquiz/internal/screen"
	"github.com/abhisek/vocabquiz/internal/screens/examples"
	"github.com/abhisek/vocabquiz/internal/screens/history"
	"github.com/abhisek/vocabquiz/internal/screens/input"
	"github.com/abhisek/vocabquiz/internal/screens/quiz"
	sess "github.com/abhisek/vocabquiz/internal/session"
	"github.com/abhisek/vocabquiz/internal/store"
	"github.com/abhisek/vocabquiz/internal/ui/components"
	"github.com/abhisek/vocabquiz/internal/ui/layout"
)

// totalsLoadedMsg carries the lifetime totals read from the result log.
type totalsLoadedMsg struct {
	totals store.Totals
	err    error
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	disabled   map[int]bool
	results    store.ResultRepo
	totals     *store.Totals
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen. History is disabled when opts.Results is nil.
func New(cfg sess.Config, opts quiz.Options) *HomeScreen {
	menuLabels := []string{"NEW QUIZ", "EXAMPLE LISTS", "HISTORY", "QUIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: input.New(cfg, opts, "")}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: examples.New(cfg, opts)}
			}
		}},
		{Label: menuLabels[2], Disabled: opts.Results == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(opts.Results)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	disabled := make(map[int]bool)
	for i, item := range items {
		if item.Disabled {
			disabled[i] = true
		}
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		disabled:   disabled,
		results:    opts.Results,
	}
}

// Init reloads the lifetime totals. It runs again whenever the app returns
// to the home screen from a finished quiz.
func (h *HomeScreen) Init() tea.Cmd {
	if h.results == nil {
		return nil
	}
	results := h.results
	return func() tea.Msg {
		totals, err := results.Totals(context.Background())
		return totalsLoadedMsg{totals: totals, err: err}
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(totalsLoadedMsg); ok {
		// A broken log just hides the stats bar.
		if msg.err == nil {
			totals := msg.totals
			h.totals = &totals
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 90

	cw := contentWidth(width)

	var sections []string
	sections = append(sections, renderBanner(cw, compact))
	if h.results != nil {
		sections = append(sections, renderStatsBar(h.totals, cw, compact))
	}
	if termHeight < 24 {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw, h.disabled))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw, h.disabled))
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}
