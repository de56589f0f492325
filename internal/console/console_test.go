package console_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libtrack/libtrack/catalog"
	"github.com/libtrack/libtrack/directory"
	"github.com/libtrack/libtrack/internal/console"
	"github.com/libtrack/libtrack/loan"
)

type fixture struct {
	catalog   *catalog.Catalog
	directory *directory.Directory
	ledger    *loan.Ledger
}

func Test_BorrowAndReturn_ThroughTheMenus(t *testing.T) {
	// arrange
	f := givenLibraryWith(t, "Dune", 1, "Reader1")

	// borrow Dune for Reader1, then return it, then quit
	input := scriptedInput(
		"3", // Loans
		"1", // Borrow a Book
		"Reader1",
		"Dune",
		"2", // Return a Book
		"Reader1",
		"Dune",
		"5", // Return to Main Menu
		"5", // Quit
	)
	output := &bytes.Buffer{}

	// act
	console.New(input, output, f.catalog, f.directory, f.ledger, t.TempDir()).Run()

	// assert
	assert.Contains(t, output.String(), "'Dune' is now being rented by Reader1")
	assert.Contains(t, output.String(), "Book titled 'Dune' has been successfully returned.")

	book, err := f.catalog.Find("Dune")
	require.NoError(t, err)
	assert.Equal(t, 1, book.Stock)
	assert.Zero(t, f.ledger.Len())
}

func Test_Borrow_ShowsUnavailableMessage_WhenAnotherUserRentsIt(t *testing.T) {
	// arrange
	f := givenLibraryWith(t, "Dune", 1, "Reader1")
	require.NoError(t, f.directory.Add(directory.User{Username: "Reader2", Firstname: "Other", Surname: "Reader"}))

	_, err := f.ledger.Borrow("Reader1", "Dune")
	require.NoError(t, err)

	input := scriptedInput(
		"3", // Loans
		"1", // Borrow a Book
		"Reader2",
		"Dune",
		"5", // Return to Main Menu
		"5", // Quit
	)
	output := &bytes.Buffer{}

	// act
	console.New(input, output, f.catalog, f.directory, f.ledger, t.TempDir()).Run()

	// assert
	assert.Contains(t, output.String(), "currently rented by another user")
}

func Test_FindOverdue_ThroughTheMenu(t *testing.T) {
	// arrange
	borrowedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := givenLibraryAt(t, "Dune", 1, "Reader1", borrowedAt)

	_, err := f.ledger.Borrow("Reader1", "Dune")
	require.NoError(t, err)

	input := scriptedInput(
		"3", // Loans
		"4", // Find overdue Books
		"5", // Return to Main Menu
		"5", // Quit
	)
	output := &bytes.Buffer{}

	c := console.New(input, output, f.catalog, f.directory, f.ledger, t.TempDir()).
		WithClock(func() time.Time { return borrowedAt.Add(15 * 24 * time.Hour) })

	// act
	c.Run()

	// assert
	assert.Contains(t, output.String(), "--- Displaying Overdue Books ---")
	assert.Contains(t, output.String(), "User Reader1 has overdue books:")
	assert.Contains(t, output.String(), "Days overdue: 1")
}

func Test_RemoveBook_IsRefusedWhileOnLoan(t *testing.T) {
	// arrange
	f := givenLibraryWith(t, "Dune", 1, "Reader1")

	_, err := f.ledger.Borrow("Reader1", "Dune")
	require.NoError(t, err)

	input := scriptedInput(
		"1", // Books
		"3", // Remove Book from Library
		"Dune",
		"6", // Return to Main Menu
		"5", // Quit
	)
	output := &bytes.Buffer{}

	// act
	console.New(input, output, f.catalog, f.directory, f.ledger, t.TempDir()).Run()

	// assert
	assert.Contains(t, output.String(), "'Dune' cannot be removed while it is on loan.")

	_, findErr := f.catalog.Find("Dune")
	assert.NoError(t, findErr, "the book must still be in the catalog")
}

func Test_RemoveUser_IsRefusedWhileRenting(t *testing.T) {
	// arrange
	f := givenLibraryWith(t, "Dune", 1, "Reader1")

	_, err := f.ledger.Borrow("Reader1", "Dune")
	require.NoError(t, err)

	input := scriptedInput(
		"2", // Users
		"2", // Remove a User
		"Some",
		"6", // Return to Main Menu
		"5", // Quit
	)
	output := &bytes.Buffer{}

	// act
	console.New(input, output, f.catalog, f.directory, f.ledger, t.TempDir()).Run()

	// assert
	assert.Contains(t, output.String(), "cannot be removed while renting 1 book(s).")

	_, findErr := f.directory.Find("Reader1")
	assert.NoError(t, findErr, "the user must still be registered")
}

func Test_CountBooks_WhenCollectionIsEmpty(t *testing.T) {
	// arrange
	ledger := newLedger(t, catalog.NewCatalog(), directory.NewDirectory())

	input := scriptedInput(
		"1", // Books
		"4", // Count Total Books
		"6", // Return to Main Menu
		"5", // Quit
	)
	output := &bytes.Buffer{}

	// act
	console.New(input, output, catalog.NewCatalog(), directory.NewDirectory(), ledger, t.TempDir()).Run()

	// assert
	assert.Contains(t, output.String(), "There are currently 0 Books in the Collection.")
}

func Test_InvalidMenuChoices_AreRePrompted(t *testing.T) {
	// arrange
	ledger := newLedger(t, catalog.NewCatalog(), directory.NewDirectory())

	input := scriptedInput(
		"",      // empty
		"abc",   // not a number
		"9",     // out of range
		"5",     // Quit
	)
	output := &bytes.Buffer{}

	// act
	console.New(input, output, catalog.NewCatalog(), directory.NewDirectory(), ledger, t.TempDir()).Run()

	// assert
	assert.Contains(t, output.String(), "Choice cannot be empty. Please choose a number.")
	assert.Contains(t, output.String(), "Please choose a number from the Menu.")
	assert.Contains(t, output.String(), "Please choose a valid menu option: 1-5")
	assert.Contains(t, output.String(), "Exiting the Library System... Goodbye!")
}

func Test_Run_ExitsCleanly_WhenInputEnds(t *testing.T) {
	// arrange
	ledger := newLedger(t, catalog.NewCatalog(), directory.NewDirectory())
	output := &bytes.Buffer{}

	// act: input ends before any valid choice was made
	console.New(strings.NewReader(""), output, catalog.NewCatalog(), directory.NewDirectory(), ledger, t.TempDir()).Run()

	// assert
	assert.Contains(t, output.String(), "--- Library System Main Menu ---")
}

func givenLibraryWith(t testing.TB, title string, stock int, username string) fixture {
	return givenLibraryAt(t, title, stock, username, time.Now())
}

func givenLibraryAt(t testing.TB, title string, stock int, username string, now time.Time) fixture {
	t.Helper()

	bookCatalog := catalog.NewCatalog()
	err := bookCatalog.Add(catalog.BuildBook(title, "Some Author", "Some Publisher", stock, time.Time{}))
	require.NoError(t, err, "error in arranging test data")

	userDirectory := directory.NewDirectory()
	err = userDirectory.Add(directory.User{Username: username, Firstname: "Some", Surname: "Reader"})
	require.NoError(t, err, "error in arranging test data")

	ledger, err := loan.NewLedger(bookCatalog, userDirectory, loan.WithClock(func() time.Time { return now }))
	require.NoError(t, err, "error in arranging test data")

	return fixture{catalog: bookCatalog, directory: userDirectory, ledger: ledger}
}

func newLedger(t testing.TB, bookCatalog *catalog.Catalog, userDirectory *directory.Directory) *loan.Ledger {
	t.Helper()

	ledger, err := loan.NewLedger(bookCatalog, userDirectory)
	require.NoError(t, err, "error in arranging test data")

	return ledger
}

func scriptedInput(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}
