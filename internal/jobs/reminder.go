// Package jobs contains the scheduled loan EMI reminder job and the date
// arithmetic it relies on.
package jobs

import (
	"time"

	"github.com/darshan/books-service/internal/models"
	"github.com/darshan/books-service/internal/utils/email"
	"github.com/sirupsen/logrus"
)

// reminderDays is how many days before the due date a reminder goes out.
const reminderDays = 3

// LoanStore lists the loan audit records the reminder job scans.
type LoanStore interface {
	ListAllLoanAudits() ([]models.LoanAudit, error)
}

// ReminderMailer delivers reminder emails.
type ReminderMailer interface {
	Enabled() bool
	SendLoanReminder(to string, reminder email.LoanReminder) error
}

// ReminderJob scans all loan audits and emails a reminder for every loan
// whose next EMI due date is exactly reminderDays away. Safe to run
// concurrently with itself; overlapping runs may resend the same
// reminders, which is accepted.
type ReminderJob struct {
	loans     LoanStore
	mailer    ReminderMailer
	recipient string
	log       *logrus.Logger

	// now is swapped out in tests.
	now func() time.Time
}

// NewReminderJob creates a reminder job. recipient is the single address
// all reminders go to; when empty the job is a no-op.
func NewReminderJob(loans LoanStore, mailer ReminderMailer, recipient string, log *logrus.Logger) *ReminderJob {
	return &ReminderJob{
		loans:     loans,
		mailer:    mailer,
		recipient: recipient,
		log:       log,
		now:       time.Now,
	}
}

// Run executes one reminder pass and reports how many loans matched the
// target date and how many emails went out. A missing mail setup or
// recipient yields a zero result without touching the database; a failure
// to load the records propagates to the caller. Individual send failures
// are logged and do not abort the batch.
func (j *ReminderJob) Run() (models.ReminderResult, error) {
	if j.mailer == nil || !j.mailer.Enabled() {
		j.log.Info("Loan reminder: SMTP not configured, skipping")
		return models.ReminderResult{}, nil
	}
	if j.recipient == "" {
		j.log.Info("Loan reminder: no reminder recipient configured, skipping")
		return models.ReminderResult{}, nil
	}

	today := Midnight(j.now())
	targetDate := DateOnly(today.AddDate(0, 0, reminderDays))

	audits, err := j.loans.ListAllLoanAudits()
	if err != nil {
		return models.ReminderResult{}, err
	}

	result := models.ReminderResult{TargetDate: &targetDate}
	for _, audit := range audits {
		anchor := audit.Parameters.EmiDate
		if anchor.IsZero() {
			continue
		}

		next, err := NextDueDate(anchor, today)
		if err != nil {
			// Corrupt anchor date; skip this record, keep the batch going.
			j.log.Errorf("Loan reminder: audit %d: %v", audit.ID, err)
			continue
		}
		if DateOnly(next) != targetDate {
			continue
		}
		result.Matched++

		reminder := email.LoanReminder{
			ClientName:    audit.ClientName,
			LoanName:      audit.LoanName,
			LoanType:      audit.LoanType,
			DueDate:       next,
			EmiAmount:     audit.Parameters.Emi,
			DeductionBank: audit.DeductionBank,
		}
		if err := j.mailer.SendLoanReminder(j.recipient, reminder); err != nil {
			j.log.Errorf("Loan reminder: failed to send for audit %d (%s): %v", audit.ID, audit.LoanName, err)
			continue
		}
		result.Sent++
		j.log.Infof("Loan reminder sent to %s for %s (%s)", j.recipient, audit.LoanName, audit.ClientName)
	}

	return result, nil
}
