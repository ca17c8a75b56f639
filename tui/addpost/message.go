package addpost

// Message is the optional status line under the form.
// The zero value is "no message shown".
type Message struct {
	text  string
	shown bool
	isErr bool
}

// Show returns a Message that displays text as a confirmation.
func Show(text string) Message {
	return Message{text: text, shown: true}
}

// ShowError returns a Message that displays text as a failure.
func ShowError(text string) Message {
	return Message{text: text, shown: true, isErr: true}
}

// Hidden is the Message that displays nothing.
var Hidden = Message{}

// Get returns the text and whether a message is shown.
func (m Message) Get() (string, bool) {
	return m.text, m.shown
}

// IsError reports whether the message describes a failure.
func (m Message) IsError() bool {
	return m.isErr
}
