package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/balloon-climber/internal/core"
	"github.com/vovakirdan/balloon-climber/internal/games/balloons"
	"github.com/vovakirdan/balloon-climber/internal/storage"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg    tea.KeyMsg
		want   core.Action
		isQuit bool
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{runeKey('a'), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{runeKey('d'), core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump, false},
		{runeKey('p'), core.ActionPause, false},
		{runeKey('r'), core.ActionRestart, false},
		{tea.KeyMsg{Type: tea.KeyF3}, core.ActionDebug, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{runeKey('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		got, quit := km.MapKey(tc.msg)
		if got != tc.want || quit != tc.isQuit {
			t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tc.msg.String(), got, quit, tc.want, tc.isQuit)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tc.msg.String(), got, tc.want)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "ALT")
	s.DrawTextColored(4, 0, "POP", core.ColorPink)
	s.DrawTextColored(0, 1, "abc", core.ColorDefault)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "ALT") || !strings.Contains(lines[0], "POP") {
		t.Errorf("first line lost its text: %q", lines[0])
	}
	if lines[1] != "abc       " {
		t.Errorf("uncolored row should be written as is, got %q", lines[1])
	}
}

func TestMenuSelectsGame(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	if len(m.items) < 2 {
		t.Fatalf("expected both variants in the menu, got %d items", len(m.items))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.(MenuModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	menu := next.(MenuModel)

	if cmd == nil {
		t.Error("selecting should end the menu program")
	}
	if menu.Selected() == nil || menu.Selected().GameID != m.items[1].GameID {
		t.Errorf("expected %q to be selected, got %+v", m.items[1].GameID, menu.Selected())
	}
}

func TestMenuShowsBestScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveScore(balloons.ClassicID, 17)

	view := NewMenuModel(store, testConfig()).View()
	if !strings.Contains(view, "best 17") {
		t.Errorf("menu should show the best score:\n%s", view)
	}
}

func TestSessionMenuGameMenu(t *testing.T) {
	var m tea.Model = NewSessionModel(testConfig(), Options{})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s := m.(SessionModel)
	if s.screen != screenGame || s.game == nil {
		t.Fatal("enter should start the selected game")
	}
	if !s.game.embedded {
		t.Error("games inside a session must not quit the program on back")
	}

	t0 := time.Unix(1000, 0)
	m, _ = m.Update(TickMsg(t0))
	m, _ = m.Update(runeKey('p'))
	m, _ = m.Update(TickMsg(t0.Add(15 * time.Millisecond)))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	s = m.(SessionModel)
	if s.screen != screenMenu || s.game != nil {
		t.Error("back from a paused game should return to the menu")
	}
	if s.quitting {
		t.Error("session should still be running")
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	var m tea.Model = NewSessionModel(testConfig(), Options{})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.(SessionModel).screen != screenScores {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard title missing")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.(SessionModel).screen != screenMenu {
		t.Error("esc should return to the menu")
	}
}

func TestScoreRows(t *testing.T) {
	rows := scoreRows([]storage.ScoreEntry{
		{Player: "ada", Score: 9, Altitude: 912.4, Duration: 12340 * time.Millisecond},
		{Score: 3},
	})
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	want := []string{"#1", "ada", "9", "912", "12.3s"}
	for i, w := range want {
		if rows[0][i] != w {
			t.Errorf("rows[0][%d] = %q, want %q", i, rows[0][i], w)
		}
	}
	if rows[1][1] != "-" {
		t.Errorf("anonymous runs should show '-', got %q", rows[1][1])
	}
}
