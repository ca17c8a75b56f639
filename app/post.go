package app

import (
	"context"

	"github.com/CrestNiraj12/postboard/domain"
)

// PostService creates and lists posts on the backend.
type PostService interface {
	// AddPost publishes a new post with the given content.
	// Failures are reported as *domain.SubmissionError.
	AddPost(ctx context.Context, content string) (domain.Post, error)

	// ListPosts returns the posts currently on the board, newest first.
	ListPosts(ctx context.Context) ([]domain.Post, error)
}
