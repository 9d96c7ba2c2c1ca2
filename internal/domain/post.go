package domain

import "time"

// Post is a published blog entry. ID and CreatedAt are assigned by the
// server at creation and never change afterwards.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Author    string    `json:"author"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	Comments  []Comment `json:"comments"`
}

// Comment is an entry in a post's comment thread. No exposed operation
// mutates comments yet; the shape exists so stored threads survive rewrites.
type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}
