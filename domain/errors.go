package domain

import "fmt"

// SubmissionError is returned when the backend refuses or fails to create a post.
type SubmissionError struct {
	Status     int    // HTTP status code, 0 if the request never got a response
	StatusText string // e.g. "Not Found"
	Message    string // Human readable, shown to the user
}

func (e *SubmissionError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%d %s", e.Status, e.StatusText)
}
