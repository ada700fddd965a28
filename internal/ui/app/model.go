// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app is the root Bubble Tea program for rima.
package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rimahq/rima-tui/internal/assistant"
	"github.com/rimahq/rima-tui/internal/config"
	"github.com/rimahq/rima-tui/internal/member"
	"github.com/rimahq/rima-tui/internal/router"
	"github.com/rimahq/rima-tui/internal/store"
	"github.com/rimahq/rima-tui/internal/ui/components"
	"github.com/rimahq/rima-tui/internal/ui/styles"
	"github.com/rimahq/rima-tui/internal/view"
)

// =============================================================================
// FORM STATE
// =============================================================================

// formMode says which inline form, if any, owns the keyboard.
type formMode int

const (
	formNone formMode = iota
	formNewWorkspace
	formNewChannel
	formInvite
)

// form is the state of the active creation or invite form.
type form struct {
	mode  formMode
	input textinput.Model
	err   string
}

// =============================================================================
// APP MODEL
// =============================================================================

// App is the root model.
type App struct {
	store      *store.Store
	vs         *view.Controller
	router     *router.Router
	dispatcher *assistant.Dispatcher
	members    *member.Manager
	cfg        *config.Config

	theme     *styles.Theme
	composer  *components.Composer
	statusBar *components.StatusBar

	width  int
	height int

	// selection indexes the workspace cards on home, the channel rows on
	// the workspace screen, and the addable roster on channel summaries.
	selection int
	form      form

	// inflight counts pending assistant dispatches for the typing
	// indicator; replies land regardless of navigation.
	inflight int

	quitting bool
}

// New assembles the root model from its collaborators.
func New(s *store.Store, vs *view.Controller, r *router.Router, d *assistant.Dispatcher, m *member.Manager, cfg *config.Config) *App {
	theme := styles.NewTheme()

	app := &App{
		store:      s,
		vs:         vs,
		router:     r,
		dispatcher: d,
		members:    m,
		cfg:        cfg,
		theme:      theme,
		composer:   components.NewComposer(theme),
		statusBar:  components.NewStatusBar(theme),
		width:      80,
		height:     24,
	}
	return app
}

// Init focuses the composer and starts the spinner.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.composer.Focus(), a.statusBar.Spinner().Tick)
}

// newFormInput builds a fresh form text input.
func newFormInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 120
	ti.Width = 40
	ti.Prompt = "> "
	return ti
}

// openForm switches the keyboard to an inline form.
func (a *App) openForm(mode formMode, placeholder string) tea.Cmd {
	a.form = form{mode: mode, input: newFormInput(placeholder)}
	a.composer.Blur()
	return a.form.input.Focus()
}

// closeForm dismisses the active form and returns focus to the composer.
func (a *App) closeForm() tea.Cmd {
	a.form = form{}
	return a.composer.Focus()
}

// addableMembers lists roster users not yet in the active channel.
func (a *App) addableMembers() []string {
	ch, ok := a.vs.ActiveChannel()
	if !ok {
		return nil
	}
	var ids []string
	for _, u := range a.store.Roster() {
		if !ch.HasMember(u.ID) {
			ids = append(ids, u.ID)
		}
	}
	return ids
}
