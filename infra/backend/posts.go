package backend

import (
	"context"
	"fmt"

	"github.com/CrestNiraj12/postboard/domain"
)

// postService implements app.PostService on top of the board API.
type postService struct {
	client *Client
}

// NewPostService creates a PostService backed by the board API.
func NewPostService(client *Client) *postService {
	return &postService{client: client}
}

type addPostRequest struct {
	Content string `json:"content"`
}

// AddPost sends the content as-is; validation is left to the backend.
func (s *postService) AddPost(ctx context.Context, content string) (domain.Post, error) {
	var post domain.Post
	if err := s.client.Post(ctx, "/posts", addPostRequest{Content: content}, &post); err != nil {
		return domain.Post{}, fmt.Errorf("adding post: %w", err)
	}
	return post, nil
}

func (s *postService) ListPosts(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	if err := s.client.Get(ctx, "/posts", &posts); err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	return posts, nil
}
