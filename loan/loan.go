package loan

import "time"

// DefaultLoanPeriod is how long a borrowed book may be kept before it is
// considered overdue.
const DefaultLoanPeriod = 14 * 24 * time.Hour

// Loan is an active record binding one user to one book title with a due
// date. A Loan is created by Borrow and destroyed by Return or ReturnAll;
// it is never edited in place.
type Loan struct {
	Title      string
	Username   string
	BorrowedAt time.Time
	DueAt      time.Time
}

// Overdue describes one active loan whose due date has passed relative to
// the reference time handed to FindOverdue.
type Overdue struct {
	Username    string
	Title       string
	DueAt       time.Time
	DaysOverdue int
}
