package model

import (
	"time"
)

// Note is a repair ticket assigned to a user. Ticket numbers come from a
// database sequence; the slug is derived from the title.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user"`
	Username  string    `json:"username,omitempty"` // Assignee, joined on reads
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Text      string    `json:"text"`
	Ticket    int64     `json:"ticket"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
