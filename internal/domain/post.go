package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Post
var (
	ErrEmptyPostID     = errors.New("post ID cannot be empty")
	ErrEmptyPostUserID = errors.New("post user ID cannot be empty")
	ErrEmptyPostTitle  = errors.New("post title cannot be empty")
	ErrEmptyPostBody   = errors.New("post body cannot be empty")
)

// Post represents a single authored note owned by exactly one user.
// Posts are created and hard-deleted through the API; they are never
// updated in place.
type Post struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

// NewPost creates a new Post owned by the given user.
// It generates a fresh unique ID and assigns the creation timestamp as an
// ISO-8601 (RFC 3339) UTC string. The caller is expected to pass already
// trimmed, non-empty values.
// Returns ErrIDGeneration if the ID could not be generated, or a validation
// error if any field is invalid.
func NewPost(userID, title, body string) (*Post, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIDGeneration, err)
	}

	post := &Post{
		ID:        id.String(),
		UserID:    userID,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	return post, nil
}

// Validate checks if the Post has valid data.
// Returns an error if any field fails validation.
func (p *Post) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrEmptyPostID
	}

	if strings.TrimSpace(p.UserID) == "" {
		return ErrEmptyPostUserID
	}

	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyPostTitle
	}

	if strings.TrimSpace(p.Body) == "" {
		return ErrEmptyPostBody
	}

	return nil
}
