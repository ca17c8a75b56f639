package addpost

import (
	"strings"

	"github.com/CrestNiraj12/postboard/tui/common"
)

// View renders the form, the status message and a hint line.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.textarea.View())
	b.WriteString("\n")

	if text, ok := m.message.Get(); ok {
		style := common.SuccessStyle
		if m.message.IsError() {
			style = common.ErrorStyle
		}
		b.WriteString(style.Render(text))
		b.WriteString("\n")
	}

	hints := []string{common.HelpLine(m.keys.Submit)}
	if m.editor != nil {
		hints = append(hints, common.HelpLine(m.keys.Editor))
	}
	hints = append(hints, common.HelpLine(m.keys.Refresh, m.keys.Quit))

	status := "  " + strings.Join(hints, " • ")
	if m.pending > 0 {
		status = m.spinner.View() + " Posting... " + status
	}
	b.WriteString(common.StatusBarStyle.Render(status))

	return b.String()
}
