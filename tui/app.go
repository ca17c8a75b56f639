package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/postboard/app"
	"github.com/CrestNiraj12/postboard/tui/addpost"
	"github.com/CrestNiraj12/postboard/tui/common"
	"github.com/CrestNiraj12/postboard/tui/feed"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Post   app.PostService
	Editor app.DraftEditor // Optional
}

// formRows is the height reserved under the feed for the add-post form.
const formRows = 10

// App is the root Bubble Tea model. The feed sits above the add-post form.
type App struct {
	deps Deps
	feed feed.Model
	form addpost.Model
	keys common.KeyMap
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	return App{
		deps: deps,
		feed: feed.New(deps.Post),
		form: addpost.New(deps.Post, deps.Editor),
		keys: common.DefaultKeyMap(),
	}
}

// Init starts the feed fetch and the form's cursor.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.feed.Init(), a.form.Init())
}

// Update handles messages and routes them to the sub-models.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.feed = a.feed.SetSize(msg.Width, msg.Height-formRows)
		a.form = a.form.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Refresh):
			var cmd tea.Cmd
			a.feed, cmd = a.feed.Refresh()
			return a, cmd
		case key.Matches(msg, a.keys.Up), key.Matches(msg, a.keys.Down):
			var cmd tea.Cmd
			a.feed, cmd = a.feed.Update(msg)
			return a, cmd
		}

	case addpost.NewPostMsg:
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(msg)
		return a, cmd

	case feed.PostsLoadedMsg, feed.PostsErrorMsg:
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(msg)
		return a, cmd

	case spinner.TickMsg:
		// Both children own a spinner; each ignores ticks for the other.
		var feedCmd, formCmd tea.Cmd
		a.feed, feedCmd = a.feed.Update(msg)
		a.form, formCmd = a.form.Update(msg)
		return a, tea.Batch(feedCmd, formCmd)
	}

	var cmd tea.Cmd
	a.form, cmd = a.form.Update(msg)
	return a, cmd
}

// View renders the feed followed by the form.
func (a App) View() string {
	return common.AppTitleStyle.Render("postboard") + "\n\n" +
		a.feed.View() + "\n" +
		a.form.View()
}
