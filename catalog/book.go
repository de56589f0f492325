package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Book is a single title held by the library, together with the number of
// copies currently available for rental. Title is the unique key within the
// Catalog; ID identifies the record independently of later retitling.
type Book struct {
	ID          uuid.UUID
	Title       string
	Author      string
	Publisher   string
	Stock       int
	ReleaseDate time.Time
}

// BuildBook creates a Book with a freshly allocated ID.
func BuildBook(title string, author string, publisher string, stock int, releaseDate time.Time) Book {
	return Book{
		ID:          newBookID(),
		Title:       title,
		Author:      author,
		Publisher:   publisher,
		Stock:       stock,
		ReleaseDate: releaseDate,
	}
}

func newBookID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New() // NewV7 fails only when the entropy source does
	}

	return id
}
