package addpost

import (
	"context"
	"os/exec"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/postboard/domain"
)

type stubPosts struct {
	add   func(content string) (domain.Post, error)
	calls []string
}

func (s *stubPosts) AddPost(_ context.Context, content string) (domain.Post, error) {
	s.calls = append(s.calls, content)
	return s.add(content)
}

func (s *stubPosts) ListPosts(context.Context) ([]domain.Post, error) { return nil, nil }

type stubEditor struct {
	content string
	err     error
}

func (e stubEditor) Cmd(string) (*exec.Cmd, string, error) {
	return exec.Command("true"), "/tmp/draft", e.err
}

func (e stubEditor) ReadContent(string) (string, error) { return e.content, nil }

// fakeClock records requested timers and fires them as soon as the cmd runs.
type fakeClock struct {
	durations []time.Duration
}

func (c *fakeClock) tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	c.durations = append(c.durations, d)
	return func() tea.Msg { return fn(time.Time{}) }
}

func newTestModel(svc *stubPosts) (Model, *fakeClock) {
	clock := &fakeClock{}
	m := New(svc, nil)
	m.tick = clock.tick
	return m, clock
}

// drain runs cmd and flattens any batches into the resulting messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func resultOf(cmd tea.Cmd) submitResultMsg {
	for _, msg := range drain(cmd) {
		if r, ok := msg.(submitResultMsg); ok {
			return r
		}
	}
	panic("no submit result in cmd")
}

func announced(msgs []tea.Msg) []domain.Post {
	var out []domain.Post
	for _, msg := range msgs {
		if np, ok := msg.(NewPostMsg); ok {
			out = append(out, np.Post)
		}
	}
	return out
}
