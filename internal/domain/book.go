package domain

import "time"

// Book is a single catalogue entry.
type Book struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Genre       string    `json:"genre"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BookPatch carries the fields of a partial book update.
// A nil field means "not provided" and leaves the stored value untouched;
// a non-nil pointer to a zero value (empty string, false) is a real update.
type BookPatch struct {
	Title       *string
	Author      *string
	Genre       *string
	Description *string
	Available   *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p BookPatch) IsEmpty() bool {
	return p.Title == nil && p.Author == nil && p.Genre == nil &&
		p.Description == nil && p.Available == nil
}

// Apply merges the patch onto the book in place.
func (b *Book) Apply(p BookPatch) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Genre != nil {
		b.Genre = *p.Genre
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.Available != nil {
		b.Available = *p.Available
	}
}
