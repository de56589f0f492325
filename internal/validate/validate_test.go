package validate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libtrack/libtrack/internal/validate"
)

func Test_Text(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectedErr error
	}{
		{name: "capitalizes_first_letter", input: "dune", expected: "Dune"},
		{name: "lowercases_the_rest", input: "DUNE", expected: "Dune"},
		{name: "trims_whitespace", input: "  emma  ", expected: "Emma"},
		{name: "rejects_empty_input", input: "   ", expectedErr: validate.ErrEmptyValue},
		{name: "rejects_digits", input: "Catch 22", expectedErr: validate.ErrContainsDigits},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := validate.Text(tc.input)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func Test_Username(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectedErr error
	}{
		{name: "accepts_six_characters", input: "reader", expected: "Reader"},
		{name: "accepts_digits", input: "reader1", expected: "Reader1"},
		{name: "accepts_fifteen_characters", input: "readerreaderrea", expected: "Readerreaderrea"},
		{name: "rejects_five_characters", input: "readr", expectedErr: validate.ErrInvalidUsername},
		{name: "rejects_sixteen_characters", input: "readerreaderread", expectedErr: validate.ErrInvalidUsername},
		{name: "rejects_empty_input", input: "  ", expectedErr: validate.ErrEmptyValue},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := validate.Username(tc.input)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func Test_Postcode(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectedErr error
	}{
		{name: "accepts_standard_format", input: "SW1A 1AA", expected: "SW1A 1AA"},
		{name: "inserts_missing_space", input: "SW1A1AA", expected: "SW1A 1AA"},
		{name: "uppercases_input", input: "sw1a 1aa", expected: "SW1A 1AA"},
		{name: "accepts_short_outward_code", input: "M1 1AE", expected: "M1 1AE"},
		{name: "rejects_empty_input", input: "  ", expectedErr: validate.ErrEmptyValue},
		{name: "rejects_garbage", input: "NOT A CODE", expectedErr: validate.ErrInvalidPostcode},
		{name: "rejects_digits_only", input: "12345", expectedErr: validate.ErrInvalidPostcode},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := validate.Postcode(tc.input)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func Test_Email(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectedErr error
	}{
		{name: "accepts_and_lowercases", input: "John.Smith@Gmail.COM", expected: "john.smith@gmail.com"},
		{name: "rejects_missing_at", input: "johnsmith.gmail.com", expectedErr: validate.ErrInvalidEmail},
		{name: "rejects_missing_domain", input: "johnsmith@", expectedErr: validate.ErrInvalidEmail},
		{name: "rejects_empty_input", input: " ", expectedErr: validate.ErrEmptyValue},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := validate.Email(tc.input)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func Test_DateOfBirth(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		input       string
		expected    time.Time
		expectedErr error
	}{
		{name: "accepts_valid_date", input: "1990-03-14", expected: time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC)},
		{name: "rejects_future_date", input: "2026-01-01", expectedErr: validate.ErrDateInFuture},
		{name: "rejects_more_than_110_years_back", input: "1910-01-01", expectedErr: validate.ErrDateTooFarBack},
		{name: "rejects_empty_input", input: "", expectedErr: validate.ErrEmptyValue},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := validate.DateOfBirth(tc.input, now)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func Test_DateOfBirth_RejectsWrongFormat(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	_, err := validate.DateOfBirth("14/03/1990", now)

	assert.Error(t, err)
}

func Test_Year(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		input       string
		expected    int
		expectedErr error
	}{
		{name: "accepts_past_year", input: "2010", expected: 2010},
		{name: "accepts_current_year", input: "2025", expected: 2025},
		{name: "rejects_future_year", input: "2026", expectedErr: validate.ErrInvalidYear},
		{name: "rejects_short_year", input: "999", expectedErr: validate.ErrInvalidYear},
		{name: "rejects_text", input: "twenty", expectedErr: validate.ErrInvalidYear},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := validate.Year(tc.input, now)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func Test_Month(t *testing.T) {
	month, err := validate.Month("july")
	require.NoError(t, err)
	assert.Equal(t, time.July, month)

	month, err = validate.Month(" December ")
	require.NoError(t, err)
	assert.Equal(t, time.December, month)

	_, err = validate.Month("Juli")
	assert.ErrorIs(t, err, validate.ErrUnknownMonth)
}

func Test_Day(t *testing.T) {
	day, err := validate.Day("16")
	require.NoError(t, err)
	assert.Equal(t, 16, day)

	_, err = validate.Day("0")
	assert.ErrorIs(t, err, validate.ErrInvalidDay)

	_, err = validate.Day("32")
	assert.ErrorIs(t, err, validate.ErrInvalidDay)
}

func Test_ReleaseDate_RejectsImpossibleCombinations(t *testing.T) {
	_, err := validate.ReleaseDate(2010, time.February, 31)
	assert.ErrorIs(t, err, validate.ErrImpossibleDate)

	date, err := validate.ReleaseDate(2010, time.February, 28)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2010, time.February, 28, 0, 0, 0, 0, time.UTC), date)
}

func Test_Stock(t *testing.T) {
	stock, err := validate.Stock(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, 3, stock)

	_, err = validate.Stock("0")
	assert.ErrorIs(t, err, validate.ErrInvalidStock)

	_, err = validate.Stock("three")
	assert.ErrorIs(t, err, validate.ErrInvalidStock)
}

func Test_HouseNumber(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    int
		expectedErr error
	}{
		{name: "accepts_single_digit", input: "1", expected: 1},
		{name: "accepts_four_digits", input: "9999", expected: 9999},
		{name: "rejects_zero", input: "0", expectedErr: validate.ErrInvalidHouseNumb},
		{name: "rejects_five_digits", input: "10000", expectedErr: validate.ErrInvalidHouseNumb},
		{name: "rejects_text", input: "12b", expectedErr: validate.ErrInvalidHouseNumb},
		{name: "rejects_empty_input", input: " ", expectedErr: validate.ErrEmptyValue},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := validate.HouseNumber(tc.input)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}
