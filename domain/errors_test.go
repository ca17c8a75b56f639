package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSubmissionError_MessageAndUnwrap(t *testing.T) {
	var err error = &SubmissionError{Status: 404, StatusText: "Not Found", Message: "X"}
	if err.Error() != "X" {
		t.Fatalf("expected message as error text, got %q", err.Error())
	}

	wrapped := fmt.Errorf("adding post: %w", err)
	var se *SubmissionError
	if !errors.As(wrapped, &se) || se.Status != 404 || se.StatusText != "Not Found" {
		t.Fatalf("expected submission error through wrap, got %#v", se)
	}
}

func TestSubmissionError_FallsBackToStatus(t *testing.T) {
	err := &SubmissionError{Status: 500, StatusText: "Internal Server Error"}
	if got := err.Error(); got != "500 Internal Server Error" {
		t.Fatalf("unexpected fallback text: %q", got)
	}
}

func TestPost_Author(t *testing.T) {
	if got := (Post{Name: "Ada", Username: "ada"}).Author(); got != "Ada" {
		t.Fatalf("expected display name, got %q", got)
	}
	if got := (Post{Username: "ada"}).Author(); got != "ada" {
		t.Fatalf("expected username fallback, got %q", got)
	}
}
