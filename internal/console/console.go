// Package console implements the menu-driven text interface. It collects and
// validates input, calls into the catalog, directory, and ledger, and formats
// results. All state lives in those collaborators; the console owns none.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/libtrack/libtrack/catalog"
	"github.com/libtrack/libtrack/directory"
	"github.com/libtrack/libtrack/internal/export"
	"github.com/libtrack/libtrack/loan"
)

// errInputClosed signals that the input stream ended; menus unwind to Run,
// which exits cleanly.
var errInputClosed = errors.New("input stream closed")

// Console drives the interactive session over the given reader and writer.
type Console struct {
	in        *bufio.Scanner
	out       io.Writer
	catalog   *catalog.Catalog
	directory *directory.Directory
	ledger    *loan.Ledger
	exportDir string
	clock     func() time.Time
}

// New creates a Console over the given collaborators. Reports are written
// into exportDir; an empty exportDir means the current working directory.
func New(
	in io.Reader,
	out io.Writer,
	bookCatalog *catalog.Catalog,
	userDirectory *directory.Directory,
	ledger *loan.Ledger,
	exportDir string,
) *Console {
	return &Console{
		in:        bufio.NewScanner(in),
		out:       out,
		catalog:   bookCatalog,
		directory: userDirectory,
		ledger:    ledger,
		exportDir: exportDir,
		clock:     time.Now,
	}
}

// WithClock overrides the time source, used by tests to pin "now".
func (c *Console) WithClock(clock func() time.Time) *Console {
	c.clock = clock
	return c
}

// Run displays the main menu until the user quits or input ends.
func (c *Console) Run() {
	for {
		c.println("\n--- Library System Main Menu ---")
		c.println("Choose an option from the Menu:")
		c.println("1 - Books")
		c.println("2 - Users")
		c.println("3 - Loans")
		c.println("4 - Export Library Report")
		c.println("5 - Quit")

		choice, err := c.choose(1, 5)
		if err != nil {
			return
		}

		switch choice {
		case 1:
			err = c.booksMenu()
		case 2:
			err = c.usersMenu()
		case 3:
			err = c.loansMenu()
		case 4:
			err = c.exportReport()
		case 5:
			c.println("Exiting the Library System... Goodbye!")
			return
		}

		if err != nil {
			return
		}
	}
}

// choose reads a menu choice and keeps prompting until it falls inside
// [low, high]. Empty and non-numeric input is rejected with a hint.
func (c *Console) choose(low int, high int) (int, error) {
	for {
		c.printf("Please choose an option from the menu. %d-%d\n", low, high)

		input, err := c.readLine("Enter here: ")
		if err != nil {
			return 0, err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			c.println("Choice cannot be empty. Please choose a number.")
			continue
		}

		choice, convErr := strconv.Atoi(input)
		if convErr != nil {
			c.println("Please choose a number from the Menu.")
			continue
		}

		if choice < low || choice > high {
			c.printf("Please choose a valid menu option: %d-%d\n", low, high)
			continue
		}

		return choice, nil
	}
}

// confirm asks the user to continue or cancel before an operation that
// mutates or removes records.
func (c *Console) confirm(label string) (bool, error) {
	for {
		c.printf("1 - Continue: %s\n", label)
		c.println("2 - Cancel")

		input, err := c.readLine("Enter here: ")
		if err != nil {
			return false, err
		}

		switch strings.TrimSpace(input) {
		case "1":
			return true, nil
		case "2":
			return false, nil
		default:
			c.println("Please choose either 1 or 2.")
		}
	}
}

// promptValidated keeps prompting until parse accepts the input.
func promptValidated[T any](c *Console, prompt string, parse func(string) (T, error)) (T, error) {
	for {
		input, err := c.readLine(prompt)
		if err != nil {
			var zero T
			return zero, err
		}

		value, parseErr := parse(input)
		if parseErr != nil {
			c.printf("%s Please try again.\n", capitalizeSentence(parseErr.Error()))
			continue
		}

		return value, nil
	}
}

func (c *Console) readLine(prompt string) (string, error) {
	c.printf("%s", prompt)

	if !c.in.Scan() {
		return "", errInputClosed
	}

	return c.in.Text(), nil
}

func (c *Console) println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func capitalizeSentence(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

// exportReport writes a point-in-time report of the whole library to a file
// in the configured export directory.
func (c *Console) exportReport() error {
	c.println("\n--- Library System Report Export ---")
	c.println("1 - Export as JSON")
	c.println("2 - Export as XLSX")
	c.println("3 - Return to Main Menu")

	choice, err := c.choose(1, 3)
	if err != nil {
		return err
	}

	if choice == 3 {
		return nil
	}

	report := export.BuildReport(c.catalog, c.directory, c.ledger, c.clock())

	var path string
	var exportErr error

	switch choice {
	case 1:
		path, exportErr = export.WriteJSONFile(report, c.exportDir)
	case 2:
		path, exportErr = export.WriteXLSXFile(report, c.exportDir)
	}

	if exportErr != nil {
		c.printf("Exporting the report failed: %v\n", exportErr)
		return nil
	}

	c.printf("Report written to %s\n", path)

	return nil
}
