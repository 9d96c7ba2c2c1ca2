package domain

// User is a reserved collection element. Nothing reads or writes users yet,
// but a hand-edited store file must keep them across full rewrites.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Document is the whole persisted state: three append-only collections
// serialized together into a single file.
type Document struct {
	Posts    []Post    `json:"posts"`
	Messages []Message `json:"messages"`
	Users    []User    `json:"users"`
}

// NewDocument returns an empty document with all collections allocated, so
// each serializes as [] rather than null.
func NewDocument() Document {
	return Document{
		Posts:    []Post{},
		Messages: []Message{},
		Users:    []User{},
	}
}

// Normalize replaces nil collections with empty ones. A parsed file may omit
// any of the three keys.
func (d *Document) Normalize() {
	if d.Posts == nil {
		d.Posts = []Post{}
	}
	if d.Messages == nil {
		d.Messages = []Message{}
	}
	if d.Users == nil {
		d.Users = []User{}
	}
}
