package loan

import (
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/libtrack/libtrack/catalog"
	"github.com/libtrack/libtrack/directory"
)

var (
	// ErrUnknownUser is returned when the borrowing or returning user is not registered.
	ErrUnknownUser = errors.New("user is not registered")

	// ErrUnknownBook is returned when the requested title does not exist in the catalog.
	ErrUnknownBook = errors.New("book does not exist in the catalog")

	// ErrAlreadyBorrowed is returned when the user already holds an active loan for this title.
	ErrAlreadyBorrowed = errors.New("user is already renting this book")

	// ErrBookUnavailable is returned when another user holds the active loan for this title.
	ErrBookUnavailable = errors.New("book is currently rented by another user")

	// ErrOutOfStock is returned when no copies of the title are left to rent.
	ErrOutOfStock = errors.New("book is currently out of stock")

	// ErrNotOnLoan is returned when the user has no active loan for this title.
	ErrNotOnLoan = errors.New("book is not currently rented by this user")

	// ErrHasActiveLoans is returned when removing a book or user that active loans still reference.
	ErrHasActiveLoans = errors.New("active loans still reference this record")
)

// Ledger owns the set of active Loan records and coordinates borrowing and
// returning against catalog stock and directory identities. It reads and
// mutates catalog stock counts but never owns them.
//
// Active loans are keyed by book title, one slot per title. Renting two
// copies of the same title concurrently is therefore not possible even when
// stock would allow it; the second borrower gets ErrBookUnavailable.
type Ledger struct {
	loans      map[string]Loan
	order      []string
	catalog    *catalog.Catalog
	directory  *directory.Directory
	loanPeriod time.Duration
	clock      func() time.Time
	logger     Logger
}

// NewLedger creates an empty Ledger over the given catalog and directory.
func NewLedger(bookCatalog *catalog.Catalog, userDirectory *directory.Directory, options ...Option) (*Ledger, error) {
	if bookCatalog == nil {
		return nil, errors.New("catalog must not be nil")
	}

	if userDirectory == nil {
		return nil, errors.New("directory must not be nil")
	}

	ledger := &Ledger{
		loans:      make(map[string]Loan),
		catalog:    bookCatalog,
		directory:  userDirectory,
		loanPeriod: DefaultLoanPeriod,
		clock:      time.Now,
		logger:     noopLogger{},
	}

	for _, option := range options {
		if err := option(ledger); err != nil {
			return nil, err
		}
	}

	return ledger, nil
}

// Borrow creates an active loan for the given user and title.
//
// Business rules:
//
//	ERROR: ErrUnknownUser if the username is not registered
//	ERROR: ErrUnknownBook if the title is not in the catalog
//	ERROR: ErrAlreadyBorrowed if this user already rents this title (no state change)
//	ERROR: ErrBookUnavailable if another user rents this title
//	ERROR: ErrOutOfStock if no copies are left
//
// On success one unit of stock is consumed and the loan is due after the
// configured loan period.
func (l *Ledger) Borrow(username string, title string) (Loan, error) {
	if _, err := l.directory.Find(username); err != nil {
		return Loan{}, ErrUnknownUser
	}

	book, err := l.catalog.Find(title)
	if err != nil {
		return Loan{}, ErrUnknownBook
	}

	if active, exists := l.loans[title]; exists {
		if active.Username == username {
			return Loan{}, ErrAlreadyBorrowed
		}

		return Loan{}, ErrBookUnavailable
	}

	if book.Stock == 0 {
		return Loan{}, ErrOutOfStock
	}

	if err := l.catalog.AdjustStock(title, -1); err != nil {
		return Loan{}, fmt.Errorf("deducting stock failed: %w", err)
	}

	borrowedAt := l.clock()
	newLoan := Loan{
		Title:      title,
		Username:   username,
		BorrowedAt: borrowedAt,
		DueAt:      borrowedAt.Add(l.loanPeriod),
	}

	l.loans[title] = newLoan
	l.order = append(l.order, title)

	l.logger.Info("book rented", "title", title, "username", username, "due_at", newLoan.DueAt)

	return newLoan, nil
}

// Return removes the active loan the given user holds for the given title
// and restores one unit of stock.
func (l *Ledger) Return(username string, title string) error {
	active, exists := l.loans[title]
	if !exists || active.Username != username {
		return ErrNotOnLoan
	}

	l.remove(title)

	if err := l.catalog.AdjustStock(title, +1); err != nil {
		return fmt.Errorf("restoring stock failed: %w", err)
	}

	l.logger.Info("book returned", "title", title, "username", username)

	return nil
}

// ReturnAll removes every active loan the given user holds and restores the
// stock of each returned title. It reports how many loans were returned;
// zero means the user held none. Returns only ever increment stock, so a
// partial failure cannot leave stock counts inconsistent.
func (l *Ledger) ReturnAll(username string) (int, error) {
	titles := lo.Filter(l.orderedTitles(), func(title string, _ int) bool {
		return l.loans[title].Username == username
	})

	for _, title := range titles {
		l.remove(title)

		if err := l.catalog.AdjustStock(title, +1); err != nil {
			return 0, fmt.Errorf("restoring stock for %q failed: %w", title, err)
		}
	}

	if len(titles) > 0 {
		l.logger.Info("all books returned", "username", username, "count", len(titles))
	}

	return len(titles), nil
}

// FindOverdue reports every active loan whose due date has passed relative
// to now, in ledger insertion order. The result is recomputed fresh on each
// call; nothing is cached between calls.
func (l *Ledger) FindOverdue(now time.Time) []Overdue {
	var overdue []Overdue
	for _, title := range l.order {
		active := l.loans[title]
		if active.DueAt.Before(now) {
			overdue = append(overdue, Overdue{
				Username:    active.Username,
				Title:       active.Title,
				DueAt:       active.DueAt,
				DaysOverdue: int(now.Sub(active.DueAt).Hours() / 24),
			})
		}
	}

	return overdue
}

// LoansFor returns the active loans the given user holds, in ledger
// insertion order.
func (l *Ledger) LoansFor(username string) []Loan {
	return lo.FilterMap(l.orderedTitles(), func(title string, _ int) (Loan, bool) {
		active := l.loans[title]
		return active, active.Username == username
	})
}

// HasLoanForTitle reports whether an active loan references the given title.
// Removal and retitling of catalog records must be refused while this holds.
func (l *Ledger) HasLoanForTitle(title string) bool {
	_, exists := l.loans[title]
	return exists
}

// CountForUser reports how many active loans the given user holds. Removal
// of directory records must be refused while this is non-zero.
func (l *Ledger) CountForUser(username string) int {
	return len(l.LoansFor(username))
}

// Len returns the number of active loans.
func (l *Ledger) Len() int {
	return len(l.loans)
}

// All returns the active loans in insertion order.
func (l *Ledger) All() []Loan {
	loans := make([]Loan, 0, len(l.order))
	for _, title := range l.order {
		loans = append(loans, l.loans[title])
	}

	return loans
}

func (l *Ledger) remove(title string) {
	delete(l.loans, title)

	for i, t := range l.order {
		if t == title {
			l.order = append(l.order[:i], l.order[i+1:]...)
			return
		}
	}
}

func (l *Ledger) orderedTitles() []string {
	titles := make([]string, len(l.order))
	copy(titles, l.order)

	return titles
}
