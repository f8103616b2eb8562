package service

import (
	"github.com/phrazzld/shelf-api/internal/domain"
	"github.com/phrazzld/shelf-api/internal/validation"
)

// CreateBookInput is the payload of a book creation request.
// Description may be empty but must be present; Available defaults to true when absent.
type CreateBookInput struct {
	Title       string  `json:"title"       validate:"required,max=100"`
	Author      string  `json:"author"      validate:"required,max=100"`
	Genre       string  `json:"genre"       validate:"required,max=50"`
	Description *string `json:"description" validate:"required,max=500"`
	Available   *bool   `json:"available"`
}

var createBookMessages = validation.Messages{
	"title.required":       "Title is required",
	"title.max":            "Title must be at most 100 characters long",
	"author.required":      "Author is required",
	"author.max":           "Author must be at most 100 characters long",
	"genre.required":       "Genre is required",
	"genre.max":            "Genre must be at most 50 characters long",
	"description.required": "Description is required",
	"description.max":      "Description must be at most 500 characters long",
}

// Book builds the record to insert.
func (in CreateBookInput) Book() *domain.Book {
	available := true
	if in.Available != nil {
		available = *in.Available
	}
	var description string
	if in.Description != nil {
		description = *in.Description
	}
	return &domain.Book{
		Title:       in.Title,
		Author:      in.Author,
		Genre:       in.Genre,
		Description: description,
		Available:   available,
	}
}

// UpdateBookInput is the payload of a partial book update.
// Nil fields were absent (or null) in the request and are left unchanged.
type UpdateBookInput struct {
	Title       *string `json:"title"       validate:"omitnil,min=1,max=100"`
	Author      *string `json:"author"      validate:"omitnil,min=1,max=100"`
	Genre       *string `json:"genre"       validate:"omitnil,min=1,max=50"`
	Description *string `json:"description" validate:"omitnil,max=500"`
	Available   *bool   `json:"available"`
}

var updateBookMessages = validation.Messages{
	"title.min":       "Title is required",
	"title.max":       "Title must be at most 100 characters long",
	"author.min":      "Author is required",
	"author.max":      "Author must be at most 100 characters long",
	"genre.min":       "Genre is required",
	"genre.max":       "Genre must be at most 50 characters long",
	"description.max": "Description must be at most 500 characters long",
}

// Patch converts the input into a domain patch.
func (in UpdateBookInput) Patch() domain.BookPatch {
	return domain.BookPatch{
		Title:       in.Title,
		Author:      in.Author,
		Genre:       in.Genre,
		Description: in.Description,
		Available:   in.Available,
	}
}
