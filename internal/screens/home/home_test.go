package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vocabquiz/internal/router"
	"github.com/abhisek/vocabquiz/internal/screens/examples"
	"github.com/abhisek/vocabquiz/internal/screens/history"
	"github.com/abhisek/vocabquiz/internal/screens/input"
	"github.com/abhisek/vocabquiz/internal/screens/quiz"
	sess "github.com/abhisek/vocabquiz/internal/session"
	"github.com/abhisek/vocabquiz/internal/store"
)

type totalsRepo struct {
	store.ResultRepo
	totals store.Totals
}

func (r totalsRepo) Totals(context.Context) (store.Totals, error) {
	return r.totals, nil
}

func pushed(t *testing.T, cmd tea.Cmd) any {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	return msg.Screen
}

func TestHomeScreen_MenuOpensScreens(t *testing.T) {
	h := New(sess.DefaultConfig(), quiz.Options{Results: totalsRepo{}})

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := pushed(t, cmd).(*input.InputScreen); !ok {
		t.Error("expected NEW QUIZ to open the input screen")
	}

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd = h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := pushed(t, cmd).(*examples.ExamplesScreen); !ok {
		t.Error("expected EXAMPLE LISTS to open the examples screen")
	}

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd = h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := pushed(t, cmd).(*history.HistoryScreen); !ok {
		t.Error("expected HISTORY to open the history screen")
	}
}

func TestHomeScreen_HistoryDisabledWithoutResults(t *testing.T) {
	h := New(sess.DefaultConfig(), quiz.Options{})
	if h.Init() != nil {
		t.Error("expected no totals load without a result log")
	}

	// Down skips the disabled HISTORY item and lands on QUIT.
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if h.menu.Selected != 3 {
		t.Errorf("selected = %d, want 3", h.menu.Selected)
	}
}

func TestHomeScreen_ShowsTotals(t *testing.T) {
	h := New(sess.DefaultConfig(), quiz.Options{
		Results: totalsRepo{totals: store.Totals{Sessions: 3, Answered: 10, Correct: 7}},
	})

	view := h.View(120, 40)
	if !strings.Contains(view, "No quizzes yet") {
		t.Error("expected placeholder before totals load")
	}

	h.Update(h.Init()())
	view = h.View(120, 40)
	for _, want := range []string{"3 QUIZZES", "10 ANSWERED", "70.0%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
