package addpost

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/postboard/app"
	"github.com/CrestNiraj12/postboard/domain"
	"github.com/CrestNiraj12/postboard/tui/common"
)

const (
	// MessageDuration is how long a status message stays visible.
	MessageDuration = 5 * time.Second

	// SuccessMessage is shown after the backend accepted a post.
	SuccessMessage = "The post was added"
)

// --- Messages ---

// NewPostMsg announces a post the backend just created.
// It is emitted once per successful submission.
type NewPostMsg struct {
	Post domain.Post
}

// submitResultMsg carries the outcome of one AddPost call.
type submitResultMsg struct {
	post domain.Post
	err  error
}

// clearMessageMsg hides the status message when its timer fires.
type clearMessageMsg struct{}

// editorFinishedMsg is sent after the external editor exits.
type editorFinishedMsg struct {
	tmpPath string
	err     error
}

// tickFunc matches tea.Tick so tests can fire timers without sleeping.
type tickFunc func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

// --- Model ---

// Model is the add-post form: a draft, a submit action and a transient
// status message.
type Model struct {
	post     app.PostService
	editor   app.DraftEditor // Optional; nil disables ctrl+e
	keys     common.KeyMap
	textarea textarea.Model
	spinner  spinner.Model
	message  Message
	pending  int // Submissions still waiting on the backend
	tick     tickFunc
}

// New creates the form with an empty, focused draft.
func New(post app.PostService, editor app.DraftEditor) Model {
	ta := textarea.New()
	ta.Placeholder = "What's on your mind?"
	ta.ShowLineNumbers = false
	ta.SetWidth(72)
	ta.SetHeight(4)
	ta.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6600"))

	return Model{
		post:     post,
		editor:   editor,
		keys:     common.DefaultKeyMap(),
		textarea: ta,
		spinner:  s,
		tick:     tea.Tick,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Content returns the current draft.
func (m Model) Content() string {
	return m.textarea.Value()
}

// SetContent replaces the draft.
func (m Model) SetContent(s string) Model {
	m.textarea.SetValue(s)
	return m
}

// Message returns the status message currently shown, if any.
func (m Model) Message() Message {
	return m.message
}

// Pending reports how many submissions are still in flight.
func (m Model) Pending() int {
	return m.pending
}

// SetWidth resizes the draft area.
func (m Model) SetWidth(w int) Model {
	m.textarea.SetWidth(w)
	return m
}

// Submit sends the current draft to the backend. Every call issues its own
// request; results are applied in the order they come back.
func (m Model) Submit() (Model, tea.Cmd) {
	content := m.textarea.Value()
	svc := m.post

	m.pending++
	request := func() tea.Msg {
		post, err := svc.AddPost(context.Background(), content)
		return submitResultMsg{post: post, err: err}
	}

	if m.pending == 1 {
		return m, tea.Batch(request, m.spinner.Tick)
	}
	return m, request
}

// DisplayMessage shows msg (Hidden clears it) and schedules a clear after
// MessageDuration. Timers are never cancelled, so an older timer can hide
// a newer message.
func (m Model) DisplayMessage(msg Message) (Model, tea.Cmd) {
	m.message = msg
	return m, m.tick(MessageDuration, func(time.Time) tea.Msg {
		return clearMessageMsg{}
	})
}

// Update handles messages for the form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submitResultMsg:
		if m.pending > 0 {
			m.pending--
		}
		if msg.err != nil {
			return m.handleError(msg.err)
		}
		return m.handleAddedPost(msg.post)

	case clearMessageMsg:
		m.message = Hidden
		return m, nil

	case spinner.TickMsg:
		if m.pending == 0 {
			return m, nil // Let the tick chain die while idle.
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case editorFinishedMsg:
		if msg.err != nil {
			if msg.tmpPath != "" {
				_ = os.Remove(msg.tmpPath)
			}
			return m.DisplayMessage(ShowError(fmt.Sprintf("editor: %v", msg.err)))
		}
		content, err := m.editor.ReadContent(msg.tmpPath)
		if err != nil {
			return m.DisplayMessage(ShowError(err.Error()))
		}
		m.textarea.SetValue(content)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Submit):
			return m.Submit()
		case key.Matches(msg, m.keys.Editor):
			if m.editor != nil {
				return m, m.launchEditor()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// handleAddedPost clears the draft, confirms, and announces the post.
func (m Model) handleAddedPost(post domain.Post) (Model, tea.Cmd) {
	m.textarea.Reset()

	m, hide := m.DisplayMessage(Show(SuccessMessage))
	announce := func() tea.Msg { return NewPostMsg{Post: post} }
	return m, tea.Batch(hide, announce)
}

// handleError logs the failure and shows its message. The draft is kept.
func (m Model) handleError(err error) (Model, tea.Cmd) {
	var se *domain.SubmissionError
	if errors.As(err, &se) {
		slog.Error("error adding post", "status", se.Status, "statusText", se.StatusText)
		return m.DisplayMessage(ShowError(se.Message))
	}

	slog.Error("error adding post", "err", err)
	return m.DisplayMessage(ShowError(err.Error()))
}

// launchEditor hands the draft to $EDITOR via tea.ExecProcess, which
// suspends Bubble Tea while the editor owns the terminal.
func (m Model) launchEditor() tea.Cmd {
	cmd, tmpPath, err := m.editor.Cmd(m.textarea.Value())
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: fmt.Errorf("preparing editor: %w", err)}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{tmpPath: tmpPath, err: err}
	})
}
