package feed

import (
	"fmt"
	"strings"

	"github.com/CrestNiraj12/postboard/domain"
	"github.com/CrestNiraj12/postboard/tui/common"
)

// View renders the visible window of posts.
func (m Model) View() string {
	if m.loading && len(m.items) == 0 {
		return m.spinner.View() + " Loading posts...\n"
	}

	var b strings.Builder
	if m.err != nil {
		b.WriteString(common.ErrorStyle.Render("Error loading posts: " + m.err.Error()))
		b.WriteString("\n")
	}
	if len(m.items) == 0 {
		b.WriteString(common.HandleStyle.Render("No posts yet."))
		b.WriteString("\n")
		return b.String()
	}

	end := min(len(m.items), m.offset+m.visible)
	for _, p := range m.items[m.offset:end] {
		b.WriteString(m.renderPost(p))
		b.WriteString("\n")
	}
	if hidden := len(m.items) - end; hidden > 0 {
		b.WriteString(common.HandleStyle.Render(fmt.Sprintf("  … %d more", hidden)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderPost(p domain.Post) string {
	header := common.AuthorStyle.Render(common.SanitizeForTerminal(p.Author()))
	if p.Username != "" && p.Username != p.Author() {
		header += " " + common.HandleStyle.Render("@"+common.SanitizeForTerminal(p.Username))
	}

	content := common.SanitizeForTerminal(p.Content)
	if m.width > 4 {
		// Leave room for the border and padding.
		content = common.ClampLines(content, m.width-4)
	}

	body := header + "\n" + common.ContentStyle.Render(content) + "\n" + reactions(p)
	return common.PostStyle.Render(body)
}

func reactions(p domain.Post) string {
	likes := fmt.Sprintf("▲ %d", p.Likes)
	dislikes := fmt.Sprintf("▼ %d", p.Dislikes)

	if p.LikedByUser != 0 {
		likes = common.ReactedStyle.Render(likes)
	} else {
		likes = common.CounterStyle.Render(likes)
	}
	if p.DislikedByUser != 0 {
		dislikes = common.ReactedStyle.Render(dislikes)
	} else {
		dislikes = common.CounterStyle.Render(dislikes)
	}
	return likes + "  " + dislikes
}
