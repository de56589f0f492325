package console

import (
	"errors"

	"github.com/libtrack/libtrack/loan"
)

const timestampLayout = "2006-01-02 15:04"

func (c *Console) loansMenu() error {
	for {
		c.println("\n--- Library System Loans Menu ---")
		c.println("Choose an option from the Sub Menu")
		c.println("1 - Borrow a Book")
		c.println("2 - Return a Book")
		c.println("3 - Return all Books")
		c.println("4 - Find overdue Books")
		c.println("5 - Return to Main Menu")

		choice, err := c.choose(1, 5)
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = c.borrowBook()
		case 2:
			err = c.returnBook()
		case 3:
			err = c.returnAllBooks()
		case 4:
			c.findOverdueBooks()
		case 5:
			c.println("Returning to Main Menu..")
			return nil
		}

		if err != nil {
			return err
		}
	}
}

func (c *Console) borrowBook() error {
	user, found, err := c.lookupUser()
	if err != nil {
		return err
	}
	if !found {
		c.println("Exiting process as no user was selected.")
		return nil
	}

	c.printf("You are now renting for: %s\n", user.Username)
	c.println("All Books must be returned within the loan period or will be marked as overdue.")

	book, found, err := c.lookupBook()
	if err != nil {
		return err
	}
	if !found {
		c.println("Returning to Loans Menu")
		return nil
	}

	newLoan, borrowErr := c.ledger.Borrow(user.Username, book.Title)
	if borrowErr != nil {
		c.explainBorrowFailure(borrowErr, user.Username, book.Title)
		return nil
	}

	c.printf("'%s' is now being rented by %s\n", newLoan.Title, newLoan.Username)
	c.printf("Day of rental: %s\n", newLoan.BorrowedAt.Format(timestampLayout))
	c.printf("Due date: %s\n", newLoan.DueAt.Format(timestampLayout))

	return nil
}

func (c *Console) explainBorrowFailure(err error, username string, title string) {
	switch {
	case errors.Is(err, loan.ErrAlreadyBorrowed):
		c.printf("User '%s' is already renting this book %s\n", username, title)
	case errors.Is(err, loan.ErrBookUnavailable):
		c.printf("'%s' is currently rented by another user. Please choose another Book.\n", title)
	case errors.Is(err, loan.ErrOutOfStock):
		c.printf("'%s' is currently out of stock. Please choose another Book to rent.\n", title)
	default:
		c.printf("Renting the book failed: %v\n", err)
	}
}

func (c *Console) returnBook() error {
	user, found, err := c.lookupUser()
	if err != nil {
		return err
	}
	if !found {
		c.println("Exiting process as no user was selected.")
		return nil
	}

	activeLoans := c.ledger.LoansFor(user.Username)
	if len(activeLoans) == 0 {
		c.printf("%s has no books currently on loan.\n", user.Username)
		return nil
	}

	c.printf("%s is currently renting the below books:\n", user.Username)
	c.listLoans(activeLoans)

	book, found, err := c.lookupBook()
	if err != nil {
		return err
	}
	if !found {
		c.println("Returning to Loans Menu")
		return nil
	}

	if returnErr := c.ledger.Return(user.Username, book.Title); returnErr != nil {
		if errors.Is(returnErr, loan.ErrNotOnLoan) {
			c.printf("Book titled %s is not currently being rented by this user %s\n", book.Title, user.Username)
		} else {
			c.printf("Returning the book failed: %v\n", returnErr)
		}
		return nil
	}

	c.printf("Book titled '%s' has been successfully returned.\n", book.Title)
	c.println("Returning to Loans Menu")

	return nil
}

func (c *Console) returnAllBooks() error {
	user, found, err := c.lookupUser()
	if err != nil {
		return err
	}
	if !found {
		c.println("Exiting process as no user was selected.")
		return nil
	}

	activeLoans := c.ledger.LoansFor(user.Username)
	if len(activeLoans) == 0 {
		c.printf("%s has no books currently on loan.\n", user.Username)
		return nil
	}

	c.printf("%s is currently renting %d book(s)\n", user.Username, len(activeLoans))
	c.listLoans(activeLoans)

	proceed, err := c.confirm("Return all books")
	if err != nil {
		return err
	}

	if !proceed {
		c.println("Returning to Loans Menu")
		return nil
	}

	count, returnErr := c.ledger.ReturnAll(user.Username)
	if returnErr != nil {
		c.printf("Returning all books failed: %v\n", returnErr)
		return nil
	}

	c.printf("All %d book(s) rented by %s were returned.\n", count, user.Username)

	return nil
}

func (c *Console) findOverdueBooks() {
	if c.catalog.Len() == 0 {
		c.println("There are no books in the Library System.")
		c.println("Returning to Loans Menu")
		return
	}

	if c.ledger.Len() == 0 {
		c.println("There are no active books on loan.")
		c.println("Returning to Loans Menu")
		return
	}

	overdue := c.ledger.FindOverdue(c.clock())
	if len(overdue) == 0 {
		c.println("No users have overdue books.")
		c.println("Returning to Loans Menu")
		return
	}

	c.println("--- Displaying Overdue Books ---")
	for _, record := range overdue {
		c.printf("\nUser %s has overdue books:\n", record.Username)
		c.printf("Book titled '%s'. Was due on %s\n", record.Title, record.DueAt.Format(timestampLayout))
		c.printf("Days overdue: %d\n", record.DaysOverdue)
	}
}

func (c *Console) listLoans(loans []loan.Loan) {
	for i, active := range loans {
		c.printf("\n%d - Book title: %s\n", i+1, active.Title)
		c.printf("Rented on: %s\n", active.BorrowedAt.Format(timestampLayout))
		c.printf("Due date: %s\n", active.DueAt.Format(timestampLayout))
	}
}
