package console

import (
	"errors"
	"time"

	"github.com/libtrack/libtrack/catalog"
	"github.com/libtrack/libtrack/internal/validate"
)

func (c *Console) booksMenu() error {
	for {
		c.println("\n--- Library System Book Menu ---")
		c.println("Choose an option from the Sub Menu")
		c.println("1 - Add Book to Library")
		c.println("2 - Search for a Book")
		c.println("3 - Remove Book from Library")
		c.println("4 - Count Total Books")
		c.println("5 - Edit Book")
		c.println("6 - Return to Main Menu")

		choice, err := c.choose(1, 6)
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = c.addBook()
		case 2:
			err = c.searchBook()
		case 3:
			err = c.removeBook()
		case 4:
			c.countBooks()
		case 5:
			err = c.editBook()
		case 6:
			c.println("Returning to Main Menu..")
			return nil
		}

		if err != nil {
			return err
		}
	}
}

func (c *Console) addBook() error {
	c.println("Please input the title of the Book.")
	title, err := promptValidated(c, "Enter here: ", validate.Text)
	if err != nil {
		return err
	}

	if _, findErr := c.catalog.Find(title); findErr == nil {
		c.printf("A book titled '%s' already exists in the collection.\n", title)
		return nil
	}

	c.println("Title accepted.")

	c.println("Please input the Author of the book.")
	author, err := promptValidated(c, "Enter here: ", validate.Text)
	if err != nil {
		return err
	}
	c.println("Author accepted.")

	c.println("Please input the Publisher of the book.")
	publisher, err := promptValidated(c, "Enter here: ", validate.Text)
	if err != nil {
		return err
	}
	c.println("Publisher accepted.")

	c.println("Please specify how many books are in stock.")
	stock, err := promptValidated(c, "Enter here: ", validate.Stock)
	if err != nil {
		return err
	}
	c.println("Stock amount accepted.")

	releaseDate, err := c.promptReleaseDate()
	if err != nil {
		return err
	}

	book := catalog.BuildBook(title, author, publisher, stock, releaseDate)
	if err := c.catalog.Add(book); err != nil {
		c.printf("Adding the book failed: %v\n", err)
		return nil
	}

	c.printf("New book was created with ID: %s\n", book.ID)
	c.printf("A new book titled: '%s' was successfully added to the collection.\n", book.Title)

	return nil
}

// promptReleaseDate collects year, month, and day separately and retries the
// whole sequence when the combination is not a real date.
func (c *Console) promptReleaseDate() (time.Time, error) {
	c.println("Please set the release date information for this book.")

	for {
		c.println("Please input the year the book was released. E.g. 2010")
		year, err := promptValidated(c, "Enter here: ", func(input string) (int, error) {
			return validate.Year(input, c.clock())
		})
		if err != nil {
			return time.Time{}, err
		}
		c.println("Year accepted.")

		c.println("Enter the month of release. E.g. July")
		month, err := promptValidated(c, "Enter here: ", validate.Month)
		if err != nil {
			return time.Time{}, err
		}
		c.println("Month accepted.")

		c.println("Enter the day of release. E.g. 16")
		day, err := promptValidated(c, "Enter here: ", validate.Day)
		if err != nil {
			return time.Time{}, err
		}

		releaseDate, dateErr := validate.ReleaseDate(year, month, day)
		if dateErr != nil {
			c.println("Invalid date. Please try setting the release date again.")
			continue
		}

		c.printf("Book release date was set: %s\n", releaseDate.Format("2006-01-02"))

		return releaseDate, nil
	}
}

// lookupBook prompts for a title until a book is found or the user cancels.
// The bool result reports whether a book was selected.
func (c *Console) lookupBook() (catalog.Book, bool, error) {
	if c.catalog.Len() == 0 {
		c.println("There are no Books in the Library System.")
		return catalog.Book{}, false, nil
	}

	for {
		c.println("Please enter the title of the Book.")
		title, err := promptValidated(c, "Enter here: ", validate.Text)
		if err != nil {
			return catalog.Book{}, false, err
		}

		book, findErr := c.catalog.Find(title)
		if findErr == nil {
			return book, true, nil
		}

		c.printf("No book was found with title: %s. Try again?\n", title)

		retry, err := c.confirm("Retry search")
		if err != nil {
			return catalog.Book{}, false, err
		}

		if !retry {
			return catalog.Book{}, false, nil
		}
	}
}

func (c *Console) searchBook() error {
	book, found, err := c.lookupBook()
	if err != nil || !found {
		if err == nil {
			c.println("Returning to Books Menu")
		}
		return err
	}

	c.printf("'%s' was found.\n", book.Title)
	c.println("Displaying information about this Book.")
	c.printf("Title: %s\n", book.Title)
	c.printf("Author: %s\n", book.Author)
	c.printf("Book ID: %s\n", book.ID)
	c.printf("Publisher: %s\n", book.Publisher)
	c.printf("Number in stock: %d\n", book.Stock)
	c.printf("Release date: %s\n", book.ReleaseDate.Format("2006-01-02"))

	return nil
}

func (c *Console) removeBook() error {
	book, found, err := c.lookupBook()
	if err != nil || !found {
		if err == nil {
			c.println("Returning to Books Menu")
		}
		return err
	}

	if c.ledger.HasLoanForTitle(book.Title) {
		c.printf("'%s' cannot be removed while it is on loan.\n", book.Title)
		c.println("Returning to Books Menu")
		return nil
	}

	c.printf("'%s' was found.\n", book.Title)
	c.println("Are you sure you want to remove this Book?")

	proceed, err := c.confirm("Remove Book")
	if err != nil {
		return err
	}

	if !proceed {
		c.println("No Books have been removed. Returning to Books Menu.")
		return nil
	}

	if removeErr := c.catalog.Remove(book.Title); removeErr != nil {
		c.printf("Removing the book failed: %v\n", removeErr)
		return nil
	}

	c.printf("%s was removed from the Library Collection.\n", book.Title)
	c.println("Returning to Books Menu")

	return nil
}

func (c *Console) countBooks() {
	switch c.catalog.Len() {
	case 0:
		c.println("There are currently 0 Books in the Collection.")
	case 1:
		c.println("There is 1 Book in the Collection.")
	default:
		c.printf("There are %d Books in the Collection.\n", c.catalog.Len())
	}
}

func (c *Console) editBook() error {
	book, found, err := c.lookupBook()
	if err != nil || !found {
		if err == nil {
			c.println("Returning to Books Menu")
		}
		return err
	}

	title := book.Title
	c.printf("Displaying editor menu for Book titled: %s\n", title)

	for {
		c.println("\n--- Library System Book Editor Menu ---")
		c.println("Choose an option from the Sub Menu:")
		c.println("1 - Edit Book Title")
		c.println("2 - Edit Book Author")
		c.println("3 - Edit Book Release Date")
		c.println("4 - Edit Book Publisher")
		c.println("5 - Edit Book Stock")
		c.println("6 - Return to Books Menu")

		choice, err := c.choose(1, 6)
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			newTitle, err := c.editBookTitle(title)
			if err != nil {
				return err
			}
			title = newTitle

		case 2:
			c.println("Please enter the new author for this Book.")
			author, err := promptValidated(c, "Enter here: ", validate.Text)
			if err != nil {
				return err
			}
			if setErr := c.catalog.SetAuthor(title, author); setErr != nil {
				c.printf("Updating the author failed: %v\n", setErr)
				continue
			}
			c.printf("Author was successfully updated to %s\n", author)

		case 3:
			releaseDate, err := c.promptReleaseDate()
			if err != nil {
				return err
			}
			if setErr := c.catalog.SetReleaseDate(title, releaseDate); setErr != nil {
				c.printf("Updating the release date failed: %v\n", setErr)
				continue
			}
			c.printf("Release date has been successfully changed to %s\n", releaseDate.Format("2006-01-02"))

		case 4:
			c.println("Please enter the new publisher for this Book.")
			publisher, err := promptValidated(c, "Enter here: ", validate.Text)
			if err != nil {
				return err
			}
			if setErr := c.catalog.SetPublisher(title, publisher); setErr != nil {
				c.printf("Updating the publisher failed: %v\n", setErr)
				continue
			}
			c.printf("Publisher was successfully updated to %s\n", publisher)

		case 5:
			c.println("Please specify the updated amount of books in stock.")
			stock, err := promptValidated(c, "Enter here: ", validate.Stock)
			if err != nil {
				return err
			}
			if setErr := c.catalog.SetStock(title, stock); setErr != nil {
				c.printf("Updating the stock failed: %v\n", setErr)
				continue
			}
			c.printf("The stock amount has been changed to %d\n", stock)

		case 6:
			c.println("Returning to Books Menu..")
			return nil
		}
	}
}

// editBookTitle renames a book, refusing while the title is on loan so the
// ledger's foreign key stays valid. Returns the title in effect afterwards.
func (c *Console) editBookTitle(title string) (string, error) {
	if c.ledger.HasLoanForTitle(title) {
		c.printf("'%s' cannot be retitled while it is on loan.\n", title)
		return title, nil
	}

	c.println("Please enter the new title for this Book.")
	newTitle, err := promptValidated(c, "Enter here: ", validate.Text)
	if err != nil {
		return title, err
	}

	if renameErr := c.catalog.Rename(title, newTitle); renameErr != nil {
		if errors.Is(renameErr, catalog.ErrDuplicateTitle) {
			c.printf("A book titled '%s' already exists.\n", newTitle)
		} else {
			c.printf("Updating the title failed: %v\n", renameErr)
		}
		return title, nil
	}

	c.printf("Title was successfully updated to %s\n", newTitle)

	return newTitle, nil
}
