// Package validate cleans and checks the field values collected by the
// console prompts before they reach the catalog, directory, or ledger.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const maxUserAgeYears = 110

var (
	ErrEmptyValue       = errors.New("value must not be empty")
	ErrContainsDigits   = errors.New("value must not contain numeric values")
	ErrInvalidUsername  = errors.New("username must be between 6 and 15 characters")
	ErrInvalidPostcode  = errors.New("postcode must match the UK postcode format")
	ErrInvalidEmail     = errors.New("email address format is not valid")
	ErrDateInFuture     = errors.New("date must not be in the future")
	ErrDateTooFarBack   = errors.New("date is too far in the past")
	ErrInvalidYear      = errors.New("year must be 4 digits and not in the future")
	ErrUnknownMonth     = errors.New("month was not recognised")
	ErrInvalidDay       = errors.New("day must be between 1 and 31")
	ErrImpossibleDate   = errors.New("the combined date does not exist")
	ErrInvalidStock     = errors.New("stock must be a number greater than 0")
	ErrInvalidHouseNumb = errors.New("house number must be 1 to 4 digits and not 0")
)

var ukPostcodePattern = regexp.MustCompile(`^[A-Z]{1,2}[0-9][A-Z0-9]?\s?[0-9][A-Z]{2}$`)

var fieldValidator = newFieldValidator()

func newFieldValidator() *validator.Validate {
	v := validator.New()

	// uk_postcode is not a built-in rule; register it once for the package.
	_ = v.RegisterValidation("uk_postcode", func(fl validator.FieldLevel) bool {
		return ukPostcodePattern.MatchString(fl.Field().String())
	})

	return v
}

// Text trims the input, rejects empty or digit-carrying values, and
// normalizes casing to a leading capital. Used for titles, author and
// publisher names, first/surnames, and street names.
func Text(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", ErrEmptyValue
	}

	for _, r := range trimmed {
		if unicode.IsDigit(r) {
			return "", ErrContainsDigits
		}
	}

	return capitalize(trimmed), nil
}

// Username trims and capitalizes the input and checks the 6 to 15 character
// bound. Usernames may contain digits, so Text does not apply.
func Username(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", ErrEmptyValue
	}

	normalized := capitalize(trimmed)
	if err := fieldValidator.Var(normalized, "min=6,max=15"); err != nil {
		return "", ErrInvalidUsername
	}

	return normalized, nil
}

// Postcode checks the input against the UK postcode format and normalizes it
// to upper case with the separating space present.
func Postcode(input string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(input))
	if normalized == "" {
		return "", ErrEmptyValue
	}

	if err := fieldValidator.Var(normalized, "uk_postcode"); err != nil {
		return "", ErrInvalidPostcode
	}

	if !strings.Contains(normalized, " ") {
		normalized = normalized[:len(normalized)-3] + " " + normalized[len(normalized)-3:]
	}

	return normalized, nil
}

// Email checks the input against the email format and lowercases it.
func Email(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", ErrEmptyValue
	}

	if err := fieldValidator.Var(trimmed, "email"); err != nil {
		return "", ErrInvalidEmail
	}

	return strings.ToLower(trimmed), nil
}

// DateOfBirth parses a YYYY-MM-DD input and bounds it to the last 110 years.
func DateOfBirth(input string, now time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return time.Time{}, ErrEmptyValue
	}

	parsed, err := time.Parse("2006-01-02", trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must use the YYYY-MM-DD format: %w", err)
	}

	if !parsed.Before(now) {
		return time.Time{}, ErrDateInFuture
	}

	if now.Year()-parsed.Year() > maxUserAgeYears {
		return time.Time{}, ErrDateTooFarBack
	}

	return parsed, nil
}

// Year parses a 4-digit release year no later than the current year.
func Year(input string, now time.Time) (int, error) {
	trimmed := strings.TrimSpace(input)

	year, err := strconv.Atoi(trimmed)
	if err != nil || len(trimmed) != 4 || year > now.Year() {
		return 0, ErrInvalidYear
	}

	return year, nil
}

// Month parses a month given by its English name, e.g. "July".
func Month(input string) (time.Month, error) {
	normalized := capitalize(strings.TrimSpace(input))

	for month := time.January; month <= time.December; month++ {
		if month.String() == normalized {
			return month, nil
		}
	}

	return 0, ErrUnknownMonth
}

// Day parses a day-of-month between 1 and 31.
func Day(input string) (int, error) {
	day, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || day < 1 || day > 31 {
		return 0, ErrInvalidDay
	}

	return day, nil
}

// ReleaseDate combines year, month, and day, rejecting impossible
// combinations such as the 31st of February.
func ReleaseDate(year int, month time.Month, day int) (time.Time, error) {
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || date.Month() != month || date.Day() != day {
		return time.Time{}, ErrImpossibleDate
	}

	return date, nil
}

// Stock parses a stock amount greater than 0.
func Stock(input string) (int, error) {
	stock, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || stock <= 0 {
		return 0, ErrInvalidStock
	}

	return stock, nil
}

// HouseNumber parses a house number of 1 to 4 digits, rejecting 0.
func HouseNumber(input string) (int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, ErrEmptyValue
	}

	for _, r := range trimmed {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidHouseNumb
		}
	}

	number, err := strconv.Atoi(trimmed)
	if err != nil || number == 0 || len(trimmed) > 4 {
		return 0, ErrInvalidHouseNumb
	}

	return number, nil
}

// capitalize uppercases the first rune and lowercases the rest, matching how
// records are keyed so lookups are case-insensitive in practice.
func capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}
