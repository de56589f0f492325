package catalog

import (
	"errors"
	"time"
)

var (
	// ErrBookNotFound is returned when no book with the given title exists in the catalog.
	ErrBookNotFound = errors.New("no book with this title exists in the catalog")

	// ErrDuplicateTitle is returned when adding or renaming would reuse an existing title.
	ErrDuplicateTitle = errors.New("a book with this title already exists in the catalog")

	// ErrStockInvariantViolation is returned when a stock adjustment would make the stock negative.
	ErrStockInvariantViolation = errors.New("stock adjustment would make the stock negative")
)

// Catalog owns the set of Book records, keyed by title. Listing follows
// insertion order so repeated displays are stable.
type Catalog struct {
	books map[string]Book
	order []string
}

// NewCatalog creates an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		books: make(map[string]Book),
	}
}

// Add stores a new book under its title.
func (c *Catalog) Add(book Book) error {
	if _, exists := c.books[book.Title]; exists {
		return ErrDuplicateTitle
	}

	c.books[book.Title] = book
	c.order = append(c.order, book.Title)

	return nil
}

// Find returns the book stored under the given title.
func (c *Catalog) Find(title string) (Book, error) {
	book, exists := c.books[title]
	if !exists {
		return Book{}, ErrBookNotFound
	}

	return book, nil
}

// Remove deletes the book stored under the given title.
// Callers are expected to check for active loans first (see loan.Ledger).
func (c *Catalog) Remove(title string) error {
	if _, exists := c.books[title]; !exists {
		return ErrBookNotFound
	}

	delete(c.books, title)
	c.dropFromOrder(title)

	return nil
}

// AdjustStock changes the stock of the given title by delta, which may be
// negative. The adjustment is rejected when the resulting stock would be
// negative, so the stock invariant holds after any sequence of adjustments.
func (c *Catalog) AdjustStock(title string, delta int) error {
	book, exists := c.books[title]
	if !exists {
		return ErrBookNotFound
	}

	if book.Stock+delta < 0 {
		return ErrStockInvariantViolation
	}

	book.Stock += delta
	c.books[title] = book

	return nil
}

// Rename re-keys a book under a new title, keeping its listing position.
// Callers are expected to check for active loans first (see loan.Ledger).
func (c *Catalog) Rename(oldTitle string, newTitle string) error {
	book, exists := c.books[oldTitle]
	if !exists {
		return ErrBookNotFound
	}

	if oldTitle == newTitle {
		return nil
	}

	if _, taken := c.books[newTitle]; taken {
		return ErrDuplicateTitle
	}

	book.Title = newTitle
	delete(c.books, oldTitle)
	c.books[newTitle] = book

	for i, title := range c.order {
		if title == oldTitle {
			c.order[i] = newTitle
			break
		}
	}

	return nil
}

// SetAuthor updates the author of the given title.
func (c *Catalog) SetAuthor(title string, author string) error {
	return c.update(title, func(book *Book) { book.Author = author })
}

// SetPublisher updates the publisher of the given title.
func (c *Catalog) SetPublisher(title string, publisher string) error {
	return c.update(title, func(book *Book) { book.Publisher = publisher })
}

// SetStock replaces the stock count of the given title.
func (c *Catalog) SetStock(title string, stock int) error {
	if stock < 0 {
		return ErrStockInvariantViolation
	}

	return c.update(title, func(book *Book) { book.Stock = stock })
}

// SetReleaseDate updates the release date of the given title.
func (c *Catalog) SetReleaseDate(title string, releaseDate time.Time) error {
	return c.update(title, func(book *Book) { book.ReleaseDate = releaseDate })
}

// Len returns the number of books in the catalog.
func (c *Catalog) Len() int {
	return len(c.books)
}

// All returns the books in insertion order.
func (c *Catalog) All() []Book {
	books := make([]Book, 0, len(c.order))
	for _, title := range c.order {
		books = append(books, c.books[title])
	}

	return books
}

func (c *Catalog) update(title string, apply func(book *Book)) error {
	book, exists := c.books[title]
	if !exists {
		return ErrBookNotFound
	}

	apply(&book)
	c.books[title] = book

	return nil
}

func (c *Catalog) dropFromOrder(title string) {
	for i, t := range c.order {
		if t == title {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
