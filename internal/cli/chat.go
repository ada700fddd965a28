// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the plain-terminal REPL.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/rimahq/rima-tui/internal/assistant"
	"github.com/rimahq/rima-tui/internal/config"
	"github.com/rimahq/rima-tui/internal/member"
	"github.com/rimahq/rima-tui/internal/model"
	"github.com/rimahq/rima-tui/internal/router"
	"github.com/rimahq/rima-tui/internal/store"
	"github.com/rimahq/rima-tui/internal/ui/styles"
	"github.com/rimahq/rima-tui/internal/view"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	assistantStyle = lipgloss.NewStyle().
			Foreground(styles.Violet).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(styles.Amber)
)

// =============================================================================
// REPL
// =============================================================================

// REPL is the line-oriented session. It drives the same view-state and
// routing as the TUI, one input line at a time.
type REPL struct {
	store      *store.Store
	vs         *view.Controller
	router     *router.Router
	dispatcher *assistant.Dispatcher
	members    *member.Manager

	line        *liner.State
	historyFile string
	out         io.Writer
	renderer    *glamour.TermRenderer
}

// NewREPL creates the REPL with input history and markdown rendering
// configured for the current terminal.
func NewREPL(s *store.Store, vs *view.Controller, r *router.Router, d *assistant.Dispatcher, m *member.Manager) *REPL {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.Dir()
	if err != nil {
		configDir = os.TempDir()
	}

	repl := &REPL{
		store:       s,
		vs:          vs,
		router:      r,
		dispatcher:  d,
		members:     m,
		line:        line,
		historyFile: filepath.Join(configDir, "chat_history"),
		out:         os.Stdout,
	}

	if IsStdoutTTY() {
		repl.renderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(TerminalWidth()),
		)
	}

	repl.loadHistory()
	return repl
}

// loadHistory loads input history from the config directory.
func (r *REPL) loadHistory() {
	if f, err := os.Open(r.historyFile); err == nil {
		r.line.ReadHistory(f)
		f.Close()
	}
}

// saveHistory writes input history back out. Best effort.
func (r *REPL) saveHistory() {
	if f, err := os.Create(r.historyFile); err == nil {
		r.line.WriteHistory(f)
		f.Close()
	}
}

// Close releases the line editor and persists history.
func (r *REPL) Close() {
	r.saveHistory()
	r.line.Close()
}

// Run is the REPL loop. It returns on /quit, Ctrl+D, or context
// cancellation between lines.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, infoStyle.Render("rima — /help for commands, /quit to leave"))

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		input, err := r.line.Prompt(r.prompt())
		if err == liner.ErrPromptAborted || err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		r.line.AppendHistory(input)

		if strings.HasPrefix(input, "/") {
			if quit := r.handleCommand(ctx, input); quit {
				return nil
			}
			continue
		}

		r.handleSend(ctx, input)
	}
}

// prompt renders the location-aware prompt string.
func (r *REPL) prompt() string {
	loc := "home"
	if w, ok := r.vs.ActiveWorkspace(); ok {
		loc = w.Title
		if ch, ok := r.vs.ActiveChannel(); ok {
			loc += "/#" + ch.Title
		}
	}
	if r.vs.Screen().IsSummary() {
		loc += " (overview)"
	}
	return promptStyle.Render(loc+" > ") + " "
}

// =============================================================================
// SENDING
// =============================================================================

// handleSend routes one outgoing line and, when the router asks for it,
// runs the assistant turn synchronously so the reply prints in order.
func (r *REPL) handleSend(ctx context.Context, content string) {
	decision, ok := r.router.Send(content)
	if !ok {
		fmt.Fprintln(r.out, warnStyle.Render("Nothing to send here. /open a workspace first."))
		return
	}
	if !decision.Dispatch {
		return
	}

	req, ok := r.dispatcher.BuildRequest(decision.Target, decision.Message.Content)
	if !ok {
		return
	}

	reply, err := r.dispatcher.Dispatch(ctx, req)
	if err != nil {
		// A failed turn is silent in the transcript; surface it on stderr
		// so the terminal user is not left waiting.
		fmt.Fprintln(os.Stderr, warnStyle.Render("(no reply: "+err.Error()+")"))
		return
	}

	fmt.Fprintln(r.out, assistantStyle.Render(model.AssistantName+":"))
	fmt.Fprintln(r.out, r.renderMarkdown(reply.Content))
}

// renderMarkdown renders assistant output for the terminal, passing it
// through untouched when piped.
func (r *REPL) renderMarkdown(content string) string {
	if r.renderer == nil {
		return content
	}
	rendered, err := r.renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// =============================================================================
// COMMANDS
// =============================================================================

// parseCommand splits "/cmd rest of line" into its name and argument.
func parseCommand(input string) (cmd, arg string) {
	cmd, arg, _ = strings.Cut(strings.TrimPrefix(input, "/"), " ")
	return strings.ToLower(cmd), strings.TrimSpace(arg)
}

// handleCommand executes a slash command. Returns true on /quit.
func (r *REPL) handleCommand(ctx context.Context, input string) bool {
	cmd, arg := parseCommand(input)

	switch cmd {
	case "quit", "q", "exit":
		return true

	case "help", "h":
		r.printHelp()

	case "workspaces", "ws":
		r.printWorkspaces()

	case "open", "o":
		r.openByArg(arg)

	case "back", "b":
		r.vs.Back()

	case "home":
		r.vs.GoHome()

	case "channels":
		r.printChannels()

	case "summary", "s":
		r.vs.OpenSummary()
		r.printSummary()

	case "members":
		r.printMembers()

	case "add":
		r.addMember(arg)

	case "invite":
		r.invite(arg)

	case "new":
		r.create(arg)

	case "history":
		r.printTranscript()

	default:
		fmt.Fprintln(r.out, warnStyle.Render("Unknown command. /help lists commands."))
	}
	return false
}

func (r *REPL) printHelp() {
	help := [][2]string{
		{"/workspaces", "list workspaces"},
		{"/open <n|title>", "open a workspace, or a channel inside one"},
		{"/channels", "list channels in the open workspace"},
		{"/summary", "open the overview for the current page"},
		{"/members", "list members of the open channel"},
		{"/add <name>", "add a roster member to the open channel"},
		{"/invite <email>", "invite a new member by email"},
		{"/new <title>", "create a workspace (or channel when one is open)"},
		{"/history", "print the current transcript"},
		{"/back, /home", "navigate"},
		{"/quit", "leave"},
	}
	for _, h := range help {
		fmt.Fprintf(r.out, "  %-18s %s\n", promptStyle.Render(h[0]), infoStyle.Render(h[1]))
	}
}

func (r *REPL) printWorkspaces() {
	for i, w := range r.store.Workspaces() {
		line := fmt.Sprintf("%2d. %s", i+1, w.Title)
		if unread := w.UnreadTotal(); unread > 0 {
			line += warnStyle.Render(fmt.Sprintf(" (%d unread)", unread))
		}
		fmt.Fprintln(r.out, line)
	}
}

func (r *REPL) printChannels() {
	w, ok := r.vs.ActiveWorkspace()
	if !ok {
		fmt.Fprintln(r.out, warnStyle.Render("No workspace open."))
		return
	}
	for i, ch := range w.Channels {
		line := fmt.Sprintf("%2d. #%s", i+1, ch.Title)
		if ch.Unread > 0 {
			line += warnStyle.Render(fmt.Sprintf(" (%d unread)", ch.Unread))
		}
		fmt.Fprintln(r.out, line)
	}
}

// openByArg opens a workspace from home, or a channel inside the open
// workspace. The argument is a 1-based index or a title prefix.
func (r *REPL) openByArg(arg string) {
	if arg == "" {
		fmt.Fprintln(r.out, warnStyle.Render("Usage: /open <n|title>"))
		return
	}

	if w, ok := r.vs.ActiveWorkspace(); ok {
		if ch, found := matchChannel(w, arg); found {
			r.vs.OpenChannel(w.ID, ch.ID)
			r.printTranscript()
			return
		}
		fmt.Fprintln(r.out, warnStyle.Render("No such channel."))
		return
	}

	if w, found := matchWorkspace(r.store.Workspaces(), arg); found {
		r.vs.OpenWorkspace(w.ID)
		r.printTranscript()
		return
	}
	fmt.Fprintln(r.out, warnStyle.Render("No such workspace."))
}

func matchWorkspace(ws []model.Workspace, arg string) (model.Workspace, bool) {
	if n, err := strconv.Atoi(arg); err == nil && n >= 1 && n <= len(ws) {
		return ws[n-1], true
	}
	for _, w := range ws {
		if strings.HasPrefix(strings.ToLower(w.Title), strings.ToLower(arg)) {
			return w, true
		}
	}
	return model.Workspace{}, false
}

func matchChannel(w model.Workspace, arg string) (model.Channel, bool) {
	arg = strings.TrimPrefix(arg, "#")
	if n, err := strconv.Atoi(arg); err == nil && n >= 1 && n <= len(w.Channels) {
		return w.Channels[n-1], true
	}
	for _, ch := range w.Channels {
		if strings.HasPrefix(strings.ToLower(ch.Title), strings.ToLower(arg)) {
			return ch, true
		}
	}
	return model.Channel{}, false
}

func (r *REPL) printSummary() {
	w, ok := r.vs.ActiveWorkspace()
	if !ok {
		return
	}
	if ch, ok := r.vs.ActiveChannel(); ok {
		fmt.Fprintf(r.out, "#%s — %s\n", ch.Title, ch.Description)
		fmt.Fprintf(r.out, "%s %d\n", infoStyle.Render("Members:"), len(ch.Members))
		return
	}
	fmt.Fprintf(r.out, "%s — %s\n", w.Title, w.Description)
	fmt.Fprintf(r.out, "%s %d%%", infoStyle.Render("Progress:"), w.Progress)
	if w.Phase != "" {
		fmt.Fprintf(r.out, "  %s %s", infoStyle.Render("Phase:"), w.Phase)
	}
	if w.Budget != "" {
		fmt.Fprintf(r.out, "  %s %s", infoStyle.Render("Budget:"), w.Budget)
	}
	if w.Deadline != "" {
		fmt.Fprintf(r.out, "  %s %s", infoStyle.Render("Deadline:"), w.Deadline)
	}
	fmt.Fprintln(r.out)
}

func (r *REPL) printMembers() {
	ch, ok := r.vs.ActiveChannel()
	if !ok {
		fmt.Fprintln(r.out, warnStyle.Render("No channel open."))
		return
	}
	for _, u := range ch.Members {
		line := "  " + u.Name
		if u.Role != "" {
			line += infoStyle.Render(" (" + u.Role + ")")
		}
		fmt.Fprintln(r.out, line)
	}
}

func (r *REPL) addMember(arg string) {
	if arg == "" {
		fmt.Fprintln(r.out, warnStyle.Render("Usage: /add <name>"))
		return
	}
	for _, u := range r.store.Roster() {
		if strings.EqualFold(u.Name, arg) {
			if err := r.members.AddMember(r.vs.ActiveChannelID(), u.ID); err != nil {
				fmt.Fprintln(r.out, warnStyle.Render(err.Error()))
			}
			return
		}
	}
	fmt.Fprintln(r.out, warnStyle.Render("No such user in the roster."))
}

func (r *REPL) invite(arg string) {
	u, err := r.members.InviteByEmail(r.vs.ActiveChannelID(), arg)
	if err != nil {
		fmt.Fprintln(r.out, warnStyle.Render("Enter a valid email address."))
		return
	}
	fmt.Fprintf(r.out, "%s joined as %s\n", u.Name, u.Role)
}

func (r *REPL) create(arg string) {
	if arg == "" {
		fmt.Fprintln(r.out, warnStyle.Render("Usage: /new <title>"))
		return
	}
	if wsID := r.vs.ActiveWorkspaceID(); wsID != "" {
		id, err := r.store.CreateChannel(wsID, arg)
		if err != nil {
			fmt.Fprintln(r.out, warnStyle.Render(err.Error()))
			return
		}
		r.vs.OpenChannel(wsID, id)
		fmt.Fprintf(r.out, "Created #%s\n", arg)
		return
	}
	id := r.store.CreateWorkspace(arg, "")
	r.vs.OpenWorkspace(id)
	fmt.Fprintf(r.out, "Created %s\n", arg)
}

func (r *REPL) printTranscript() {
	msgs, ok := r.store.Messages(r.vs.Target())
	if !ok {
		return
	}
	for _, m := range msgs {
		name := m.Sender.DisplayName()
		if m.Sender.IsAssistant() {
			name = assistantStyle.Render(name)
		}
		fmt.Fprintf(r.out, "[%s] %s: %s\n", m.FormatTimestamp(), name, m.Content)
	}
}
