// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rimahq/rima-tui/internal/assistant"
	"github.com/rimahq/rima-tui/internal/config"
	"github.com/rimahq/rima-tui/internal/member"
	"github.com/rimahq/rima-tui/internal/model"
	"github.com/rimahq/rima-tui/internal/router"
	"github.com/rimahq/rima-tui/internal/store"
	"github.com/rimahq/rima-tui/internal/view"
)

type stubGenerator struct{ reply string }

func (s stubGenerator) Generate(ctx context.Context, model, prompt string) (string, error) {
	return s.reply, nil
}

func newTestApp(t *testing.T) *App {
	t.Helper()

	sara := model.User{ID: "u_sara", Name: "Sara"}
	alex := model.User{ID: "u1", Name: "Alex"}
	s := store.New(
		[]model.User{sara, alex},
		[]model.Workspace{{
			ID:      "w1",
			Title:   "Europe Trip",
			Members: []model.User{sara},
			Channels: []model.Channel{
				{ID: "c1", Title: "Itinerary", Members: []model.User{sara}, Unread: 2},
			},
			Messages: []model.Message{},
		}},
		"u_sara",
	)

	vs := view.NewController(s)
	r := router.New(s, vs)
	d := assistant.NewDispatcher(s, stubGenerator{reply: "done"}, nil, "llama3.1", 0)
	m := member.NewManager(s)

	return New(s, vs, r, d, m, config.Default())
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+o":
		return tea.KeyMsg{Type: tea.KeyCtrlO}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestNavigation_HomeToChannelAndBack(t *testing.T) {
	a := newTestApp(t)

	a.Update(key("enter")) // open first workspace
	if got := a.vs.Screen(); got != view.ScreenWorkspace {
		t.Fatalf("screen = %v after enter on home", got)
	}

	a.Update(key("enter")) // empty composer: open selected channel
	if got := a.vs.Screen(); got != view.ScreenChannel {
		t.Fatalf("screen = %v after enter on workspace", got)
	}

	// Opening the channel cleared its unread counter.
	_, ch, _ := a.store.Channel("c1")
	if ch.Unread != 0 {
		t.Errorf("unread = %d after open, want 0", ch.Unread)
	}

	a.Update(key("esc"))
	if got := a.vs.Screen(); got != view.ScreenWorkspace {
		t.Fatalf("screen = %v after esc", got)
	}
	a.Update(key("esc"))
	if got := a.vs.Screen(); got != view.ScreenHome {
		t.Fatalf("screen = %v after second esc", got)
	}
}

func TestSend_SoloChannelDispatches(t *testing.T) {
	a := newTestApp(t)
	a.Update(key("enter")) // workspace
	a.Update(key("enter")) // channel c1 (solo)

	a.composer.SetValue("how are the bookings?")
	_, cmd := a.Update(key("enter"))
	if cmd == nil {
		t.Fatal("send in a solo channel produced no dispatch command")
	}
	if a.inflight != 1 {
		t.Fatalf("inflight = %d, want 1", a.inflight)
	}

	// Run the dispatch command and feed its message back in.
	msg := cmd()
	if _, ok := msg.(assistantReplyMsg); !ok {
		t.Fatalf("dispatch resolved to %T", msg)
	}
	a.Update(msg)
	if a.inflight != 0 {
		t.Errorf("inflight = %d after reply, want 0", a.inflight)
	}

	msgs, _ := a.store.Messages(model.Target{WorkspaceID: "w1", ChannelID: "c1"})
	if len(msgs) != 2 {
		t.Fatalf("transcript = %d messages, want user + reply", len(msgs))
	}
	if !msgs[1].Sender.IsAssistant() {
		t.Error("second message not from the assistant")
	}
}

func TestSend_WorkspaceWithoutTagDoesNotDispatch(t *testing.T) {
	a := newTestApp(t)
	a.Update(key("enter")) // workspace

	a.composer.SetValue("any updates?")
	_, cmd := a.Update(key("enter"))
	if cmd != nil {
		t.Error("untagged workspace send scheduled a dispatch")
	}

	msgs, _ := a.store.Messages(model.Target{WorkspaceID: "w1"})
	if len(msgs) != 1 {
		t.Fatalf("transcript = %d messages, want 1", len(msgs))
	}
}

func TestSummary_SendAlwaysDispatches(t *testing.T) {
	a := newTestApp(t)
	a.Update(key("enter"))  // workspace
	a.Update(key("ctrl+o")) // workspace summary
	if got := a.vs.Screen(); got != view.ScreenWorkspaceSummary {
		t.Fatalf("screen = %v", got)
	}

	a.composer.SetValue("status please")
	_, cmd := a.Update(key("enter"))
	if cmd == nil {
		t.Error("summary send did not dispatch")
	}
}

func TestNewWorkspaceForm(t *testing.T) {
	a := newTestApp(t)

	a.Update(key("n"))
	if a.form.mode != formNewWorkspace {
		t.Fatal("n on home did not open the workspace form")
	}

	// Empty title is rejected and keeps the form open.
	a.Update(key("enter"))
	if a.form.mode != formNewWorkspace || a.form.err == "" {
		t.Fatal("empty title accepted")
	}

	a.form.input.SetValue("Japan 2027")
	a.Update(key("enter"))
	if a.form.mode != formNone {
		t.Fatal("form still open after valid submit")
	}
	if got := a.vs.Screen(); got != view.ScreenWorkspace {
		t.Fatalf("screen = %v after create, want workspace", got)
	}
	w, ok := a.vs.ActiveWorkspace()
	if !ok || w.Title != "Japan 2027" {
		t.Errorf("active workspace = %+v", w)
	}
}

func TestInviteForm_InvalidEmailStaysOpen(t *testing.T) {
	a := newTestApp(t)
	a.Update(key("enter"))  // workspace
	a.Update(key("enter"))  // channel
	a.Update(key("ctrl+o")) // channel summary

	a.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
	if a.form.mode != formInvite {
		t.Fatal("ctrl+e did not open the invite form")
	}

	a.form.input.SetValue("not-an-email")
	a.Update(key("enter"))
	if a.form.mode != formInvite {
		t.Fatal("invalid email closed the form")
	}

	a.form.input.SetValue("noora@example.com")
	a.Update(key("enter"))
	if a.form.mode != formNone {
		t.Fatal("valid email did not close the form")
	}

	_, ch, _ := a.store.Channel("c1")
	if !ch.HasMember("u_sara") || len(ch.Members) != 2 {
		t.Errorf("members = %v, want Sara plus invited guest", ch.Members)
	}
}

func TestView_RendersEachScreen(t *testing.T) {
	a := newTestApp(t)
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	for _, step := range []struct {
		name string
		key  tea.KeyMsg
	}{
		{"home", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}},
		{"workspace", key("enter")},
		{"channel", key("enter")},
		{"channel summary", key("ctrl+o")},
	} {
		a.Update(step.key)
		if a.View() == "" {
			t.Errorf("%s rendered empty", step.name)
		}
	}
}
