package main

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/libtrack/libtrack/catalog"
	"github.com/libtrack/libtrack/directory"
	"github.com/libtrack/libtrack/internal/console"
	"github.com/libtrack/libtrack/internal/logging"
	"github.com/libtrack/libtrack/loan"
)

const (
	envLoanPeriodDays = "LIBTRACK_LOAN_PERIOD_DAYS"
	envLogLevel       = "LIBTRACK_LOG_LEVEL"
	envExportDir      = "LIBTRACK_EXPORT_DIR"
)

func main() {
	// Absence of a .env file is fine; all settings have defaults.
	_ = godotenv.Load()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logLevelFromEnv())

	bookCatalog := catalog.NewCatalog()
	userDirectory := directory.NewDirectory()

	ledger, err := loan.NewLedger(
		bookCatalog,
		userDirectory,
		loan.WithLoanPeriod(loanPeriodFromEnv()),
		loan.WithLogger(logging.NewLogrusAdapterFor(logger)),
	)
	if err != nil {
		logger.WithError(err).Fatal("setting up the loan ledger failed")
	}

	console.New(os.Stdin, os.Stdout, bookCatalog, userDirectory, ledger, os.Getenv(envExportDir)).Run()
}

func loanPeriodFromEnv() time.Duration {
	raw := os.Getenv(envLoanPeriodDays)
	if raw == "" {
		return loan.DefaultLoanPeriod
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		return loan.DefaultLoanPeriod
	}

	return time.Duration(days) * 24 * time.Hour
}

func logLevelFromEnv() logrus.Level {
	raw := os.Getenv(envLogLevel)
	if raw == "" {
		return logrus.WarnLevel
	}

	level, err := logrus.ParseLevel(raw)
	if err != nil {
		return logrus.WarnLevel
	}

	return level
}
