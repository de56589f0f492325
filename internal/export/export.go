// Package export writes point-in-time library reports. Reports are
// write-only artifacts; the program never reads state back from them.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"github.com/libtrack/libtrack/catalog"
	"github.com/libtrack/libtrack/directory"
	"github.com/libtrack/libtrack/loan"
)

const fileTimestampLayout = "20060102-150405"

// Report is a snapshot of the whole library at one point in time.
type Report struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Books       []BookRecord   `json:"books"`
	Users       []UserRecord   `json:"users"`
	Loans       []LoanRecord   `json:"loans"`
	Overdue     []loan.Overdue `json:"overdue"`
}

// BookRecord is the report shape of a catalog entry.
type BookRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Publisher   string `json:"publisher"`
	Stock       int    `json:"stock"`
	ReleaseDate string `json:"release_date"`
}

// UserRecord is the report shape of a directory entry. Address details stay
// out of the report on purpose; it is a circulation document.
type UserRecord struct {
	Username    string `json:"username"`
	Firstname   string `json:"firstname"`
	Surname     string `json:"surname"`
	Email       string `json:"email"`
	ActiveLoans int    `json:"active_loans"`
}

// LoanRecord is the report shape of an active loan.
type LoanRecord struct {
	Title      string    `json:"title"`
	Username   string    `json:"username"`
	BorrowedAt time.Time `json:"borrowed_at"`
	DueAt      time.Time `json:"due_at"`
}

// BuildReport assembles a Report from the current state of the given
// collaborators, using now for overdue computation and the report timestamp.
func BuildReport(bookCatalog *catalog.Catalog, userDirectory *directory.Directory, ledger *loan.Ledger, now time.Time) Report {
	books := lo.Map(bookCatalog.All(), func(book catalog.Book, _ int) BookRecord {
		return BookRecord{
			ID:          book.ID.String(),
			Title:       book.Title,
			Author:      book.Author,
			Publisher:   book.Publisher,
			Stock:       book.Stock,
			ReleaseDate: book.ReleaseDate.Format("2006-01-02"),
		}
	})

	users := lo.Map(userDirectory.All(), func(user directory.User, _ int) UserRecord {
		return UserRecord{
			Username:    user.Username,
			Firstname:   user.Firstname,
			Surname:     user.Surname,
			Email:       user.Email,
			ActiveLoans: ledger.CountForUser(user.Username),
		}
	})

	loans := lo.Map(ledger.All(), func(active loan.Loan, _ int) LoanRecord {
		return LoanRecord{
			Title:      active.Title,
			Username:   active.Username,
			BorrowedAt: active.BorrowedAt,
			DueAt:      active.DueAt,
		}
	})

	return Report{
		GeneratedAt: now,
		Books:       books,
		Users:       users,
		Loans:       loans,
		Overdue:     ledger.FindOverdue(now),
	}
}

// ToJSON serializes the report.
func ToJSON(report Report) ([]byte, error) {
	return jsoniter.ConfigFastest.MarshalIndent(report, "", "  ")
}

// WriteJSONFile writes the report as JSON into dir and returns the file path.
func WriteJSONFile(report Report, dir string) (string, error) {
	data, err := ToJSON(report)
	if err != nil {
		return "", fmt.Errorf("serializing the report failed: %w", err)
	}

	path := reportPath(dir, report.GeneratedAt, "json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing the report file failed: %w", err)
	}

	return path, nil
}

// WriteXLSXFile writes the report as a spreadsheet with one sheet per
// section into dir and returns the file path.
func WriteXLSXFile(report Report, dir string) (string, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	f.SetSheetName("Sheet1", "Books")
	writeSheet(f, "Books", []string{"ID", "Title", "Author", "Publisher", "Stock", "Release Date"},
		lo.Map(report.Books, func(b BookRecord, _ int) []any {
			return []any{b.ID, b.Title, b.Author, b.Publisher, b.Stock, b.ReleaseDate}
		}))

	if _, err := f.NewSheet("Users"); err != nil {
		return "", fmt.Errorf("creating the users sheet failed: %w", err)
	}
	writeSheet(f, "Users", []string{"Username", "Firstname", "Surname", "Email", "Active Loans"},
		lo.Map(report.Users, func(u UserRecord, _ int) []any {
			return []any{u.Username, u.Firstname, u.Surname, u.Email, u.ActiveLoans}
		}))

	if _, err := f.NewSheet("Loans"); err != nil {
		return "", fmt.Errorf("creating the loans sheet failed: %w", err)
	}
	writeSheet(f, "Loans", []string{"Title", "Username", "Borrowed At", "Due At"},
		lo.Map(report.Loans, func(l LoanRecord, _ int) []any {
			return []any{l.Title, l.Username, l.BorrowedAt.Format(time.RFC3339), l.DueAt.Format(time.RFC3339)}
		}))

	if _, err := f.NewSheet("Overdue"); err != nil {
		return "", fmt.Errorf("creating the overdue sheet failed: %w", err)
	}
	writeSheet(f, "Overdue", []string{"Username", "Title", "Due At", "Days Overdue"},
		lo.Map(report.Overdue, func(o loan.Overdue, _ int) []any {
			return []any{o.Username, o.Title, o.DueAt.Format(time.RFC3339), o.DaysOverdue}
		}))

	path := reportPath(dir, report.GeneratedAt, "xlsx")
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("writing the report file failed: %w", err)
	}

	return path, nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]any) {
	headerRow := lo.Map(header, func(h string, _ int) any { return h })
	_ = f.SetSheetRow(sheet, "A1", &headerRow)

	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		_ = f.SetSheetRow(sheet, cell, &row)
	}
}

func reportPath(dir string, generatedAt time.Time, extension string) string {
	if dir == "" {
		dir = "."
	}

	filename := fmt.Sprintf("library-report-%s.%s", generatedAt.Format(fileTimestampLayout), extension)

	return filepath.Join(dir, filename)
}
