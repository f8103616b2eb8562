package api_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookLifecycle(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/books/create-book", map[string]any{
		"title":       "Dune",
		"author":      "Frank Herbert",
		"genre":       "Sci-Fi",
		"description": "",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeBody(t, w)
	assert.Equal(t, float64(1), created["id"])
	assert.Equal(t, "Dune", created["title"])
	assert.Equal(t, true, created["available"])
	assert.Equal(t, "", created["description"])
	assert.NotEmpty(t, created["createdAt"])

	w = s.do(t, http.MethodPut, "/api/books/1", map[string]any{"available": false})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decodeBody(t, w)
	assert.Equal(t, false, updated["available"])
	assert.Equal(t, "Dune", updated["title"])
	assert.Equal(t, "Frank Herbert", updated["author"])

	w = s.do(t, http.MethodGet, "/api/books/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["available"])

	w = s.do(t, http.MethodGet, "/api/books", nil)
	require.Equal(t, http.StatusOK, w.Code)
	books, ok := decodeBody(t, w)["books"].([]any)
	require.True(t, ok)
	assert.Len(t, books, 1)

	w = s.do(t, http.MethodDelete, "/api/books/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	deleted := decodeBody(t, w)
	assert.Equal(t, "Book deleted successfully", deleted["message"])
	assert.Equal(t, float64(204), deleted["status"])
	data, ok := deleted["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Dune", data["title"])

	w = s.do(t, http.MethodGet, "/api/books/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Book not found", errorMessage(t, w))
}

func TestListBooksEmpty(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/books", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"books":[]}`, w.Body.String())
}

func TestCreateBookDuplicatesGetDistinctIDs(t *testing.T) {
	s := newTestServer(t)
	payload := map[string]any{
		"title": "Dune", "author": "Frank Herbert", "genre": "Sci-Fi", "description": "",
	}

	first := decodeBody(t, s.do(t, http.MethodPost, "/api/books/create-book", payload))
	second := decodeBody(t, s.do(t, http.MethodPost, "/api/books/create-book", payload))

	assert.NotEqual(t, first["id"], second["id"])
}

func TestCreateBookValidation(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name    string
		body    any
		wantMsg string
	}{
		{
			name:    "missing fields",
			body:    map[string]any{"title": "Dune"},
			wantMsg: "Author is required, Genre is required, Description is required",
		},
		{
			name:    "empty body",
			body:    "",
			wantMsg: "Title is required, Author is required, Genre is required, Description is required",
		},
		{
			name:    "description absent",
			body:    map[string]any{"title": "Dune", "author": "a", "genre": "g"},
			wantMsg: "Description is required",
		},
		{
			name:    "description null",
			body:    `{"title":"Dune","author":"a","genre":"g","description":null}`,
			wantMsg: "Description is required",
		},
		{
			name: "title too long",
			body: map[string]any{
				"title": strings.Repeat("x", 101), "author": "a", "genre": "g", "description": "",
			},
			wantMsg: "Title must be at most 100 characters long",
		},
		{
			name:    "wrong type",
			body:    `{"title":"Dune","author":"a","genre":"g","description":"","available":"yes"}`,
			wantMsg: "available must be a boolean",
		},
		{
			name:    "array body",
			body:    `[{"title":"Dune"}]`,
			wantMsg: "Invalid request format",
		},
		{
			name:    "malformed json",
			body:    `{"title":`,
			wantMsg: "Invalid request format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/api/books/create-book", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantMsg, errorMessage(t, w))
		})
	}
}

func TestUpdateBook(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/books/create-book", map[string]any{
		"title": "Dune", "author": "Frank Herbert", "genre": "Sci-Fi", "description": "Spice",
	}).Code)

	t.Run("invalid id", func(t *testing.T) {
		w := s.do(t, http.MethodPut, "/api/books/abc", map[string]any{"title": "X"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid book ID", errorMessage(t, w))
	})

	t.Run("unknown id", func(t *testing.T) {
		w := s.do(t, http.MethodPut, "/api/books/42", map[string]any{"title": "X"})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Book not found", errorMessage(t, w))
	})

	t.Run("empty title rejected", func(t *testing.T) {
		w := s.do(t, http.MethodPut, "/api/books/1", map[string]any{"title": ""})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Title is required", errorMessage(t, w))
	})

	t.Run("empty patch keeps record", func(t *testing.T) {
		w := s.do(t, http.MethodPut, "/api/books/1", map[string]any{})
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Spice", body["description"])
		assert.Equal(t, true, body["available"])
	})

	t.Run("partial update", func(t *testing.T) {
		w := s.do(t, http.MethodPut, "/api/books/1", map[string]any{"genre": "Classic", "title": nil})
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Classic", body["genre"])
		assert.Equal(t, "Dune", body["title"])
		assert.Equal(t, "Spice", body["description"])
	})
}

func TestDeleteUnknownBook(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/api/books/99", "/api/books/abc"} {
		w := s.do(t, http.MethodDelete, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Book not found", errorMessage(t, w))
	}
}
