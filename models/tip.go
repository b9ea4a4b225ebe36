package models

import "time"

// Tip is one saving tip, either seeded or user-submitted.
type Tip struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Category   string    `json:"category"`
	Author     string    `json:"author"`
	Date       time.Time `json:"date"`
	Bookmarked bool      `json:"bookmarked"`
}

// TipInput carries the tip submission form fields. Author is optional and
// defaults to "Anonymous".
type TipInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Author   string `json:"author"`
}
