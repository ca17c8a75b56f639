package domain

// Post is a single post as returned by the backend.
// Posts are only ever built by decoding backend responses.
type Post struct {
	PostID         int64  `json:"postId"`
	User           string `json:"user"`
	Name           string `json:"name"`
	Username       string `json:"username"`
	Content        string `json:"content"`
	Likes          int    `json:"likes"`
	Dislikes       int    `json:"dislikes"`
	LikedByUser    int    `json:"likedByUser"`    // Non-zero if the viewer liked the post
	DislikedByUser int    `json:"dislikedByUser"` // Non-zero if the viewer disliked the post
}

// Author returns the display name, falling back to the username.
func (p Post) Author() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Username
}
