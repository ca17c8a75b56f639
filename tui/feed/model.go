package feed

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/postboard/app"
	"github.com/CrestNiraj12/postboard/domain"
	"github.com/CrestNiraj12/postboard/tui/addpost"
	"github.com/CrestNiraj12/postboard/tui/common"
)

const defaultVisible = 5

// --- Messages ---

// PostsLoadedMsg is sent when the post list fetch completes successfully.
type PostsLoadedMsg struct {
	Posts []domain.Post
}

// PostsErrorMsg is sent when the post list fetch fails.
type PostsErrorMsg struct {
	Err error
}

// --- Model ---

// Model lists posts and picks up new ones announced by the form.
type Model struct {
	posts   app.PostService
	items   []domain.Post
	offset  int // Index of the first visible post
	visible int // How many posts fit on screen
	width   int
	loading bool
	err     error
	keys    common.KeyMap
	spinner spinner.Model
}

// New creates a feed model with injected dependencies.
func New(posts app.PostService) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6600"))

	return Model{
		posts:   posts,
		visible: defaultVisible,
		loading: true,
		keys:    common.DefaultKeyMap(),
		spinner: s,
	}
}

// Init starts the initial fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchPosts(), m.spinner.Tick)
}

// Refresh returns the updated model and a Cmd that re-fetches the list.
func (m Model) Refresh() (Model, tea.Cmd) {
	m.loading = true
	m.err = nil
	return m, tea.Batch(m.fetchPosts(), m.spinner.Tick)
}

// Posts returns the posts currently held, newest first.
func (m Model) Posts() []domain.Post {
	return m.items
}

// SetSize fits the feed into width columns and roughly height rows.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	// A framed post takes about four rows.
	m.visible = max(1, height/4)
	return m
}

func (m Model) fetchPosts() tea.Cmd {
	svc := m.posts
	return func() tea.Msg {
		posts, err := svc.ListPosts(context.Background())
		if err != nil {
			return PostsErrorMsg{Err: err}
		}
		return PostsLoadedMsg{Posts: posts}
	}
}

// Update handles messages for the feed.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PostsLoadedMsg:
		m.loading = false
		m.err = nil
		m.items = msg.Posts
		m.offset = 0
		return m, nil

	case PostsErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case addpost.NewPostMsg:
		// A refresh may already have delivered it.
		for _, p := range m.items {
			if p.PostID == msg.Post.PostID {
				return m, nil
			}
		}
		m.items = append([]domain.Post{msg.Post}, m.items...)
		m.offset = 0
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.offset > 0 {
				m.offset--
			}
		case key.Matches(msg, m.keys.Down):
			if m.offset < len(m.items)-1 {
				m.offset++
			}
		}
		return m, nil
	}

	return m, nil
}
