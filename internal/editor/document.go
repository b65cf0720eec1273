// Package editor manages authored HTML/CSS/JS documents: persistence,
// validation, and import from pasted pages.
package editor

import "time"

// Document is an authored snippet. The three sources are kept separate
// so the preview renderer controls how they are assembled into a
// sandboxed frame.
type Document struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	HTML      string    `json:"html"`
	CSS       string    `json:"css"`
	JS        string    `json:"js"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
