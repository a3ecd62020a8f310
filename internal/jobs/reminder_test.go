package jobs

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/darshan/books-service/internal/models"
	"github.com/darshan/books-service/internal/utils/email"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLoanStore struct {
	audits []models.LoanAudit
	err    error
}

func (f *fakeLoanStore) ListAllLoanAudits() ([]models.LoanAudit, error) {
	return f.audits, f.err
}

type fakeMailer struct {
	enabled bool
	failFor map[string]error // keyed by loan name
	sent    []email.LoanReminder
}

func (f *fakeMailer) Enabled() bool { return f.enabled }

func (f *fakeMailer) SendLoanReminder(to string, reminder email.LoanReminder) error {
	if err := f.failFor[reminder.LoanName]; err != nil {
		return err
	}
	f.sent = append(f.sent, reminder)
	return nil
}

func silentLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func audit(id int64, loanName string, emiDate time.Time) models.LoanAudit {
	return models.LoanAudit{
		ID:         id,
		ClientName: "Acme Traders",
		LoanType:   "vehicle",
		LoanName:   loanName,
		Parameters: models.LoanParameters{Emi: 15000, EmiDate: emiDate},
	}
}

func newTestJob(store *fakeLoanStore, mailer *fakeMailer, recipient string, today time.Time) *ReminderJob {
	job := NewReminderJob(store, mailer, recipient, silentLogger())
	job.now = func() time.Time { return today }
	return job
}

func TestReminderJobSkipsWithoutMail(t *testing.T) {
	store := &fakeLoanStore{err: errors.New("must not be called")}

	cases := []struct {
		name      string
		mailer    *fakeMailer
		recipient string
	}{
		{"mail disabled", &fakeMailer{enabled: false}, "books@example.com"},
		{"no recipient", &fakeMailer{enabled: true}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			job := newTestJob(store, tc.mailer, tc.recipient, date(2024, 6, 1))

			result, err := job.Run()

			require.NoError(t, err)
			assert.Equal(t, 0, result.Matched)
			assert.Equal(t, 0, result.Sent)
			assert.Nil(t, result.TargetDate)
			assert.Empty(t, tc.mailer.sent)
		})
	}
}

func TestReminderJobMatchesTargetDate(t *testing.T) {
	// Today is 2024-06-01, so the target is 2024-06-04. An anchor of
	// 2024-05-04 projects to exactly the target; 2024-06-05 overshoots it.
	store := &fakeLoanStore{audits: []models.LoanAudit{
		audit(1, "home loan", date(2024, 5, 4)),
		audit(2, "gold loan", date(2024, 6, 5)),
		audit(3, "old tractor loan", date(2023, 12, 4)),
		audit(4, "unset anchor", time.Time{}),
	}}
	mailer := &fakeMailer{enabled: true}
	job := newTestJob(store, mailer, "books@example.com", date(2024, 6, 1))

	result, err := job.Run()

	require.NoError(t, err)
	require.NotNil(t, result.TargetDate)
	assert.Equal(t, "2024-06-04", *result.TargetDate)
	assert.Equal(t, 2, result.Matched)
	assert.Equal(t, 2, result.Sent)

	require.Len(t, mailer.sent, 2)
	assert.Equal(t, "home loan", mailer.sent[0].LoanName)
	assert.Equal(t, "old tractor loan", mailer.sent[1].LoanName)
	assert.Equal(t, date(2024, 6, 4), mailer.sent[0].DueDate)
}

func TestReminderJobSendFailureDoesNotAbortBatch(t *testing.T) {
	store := &fakeLoanStore{audits: []models.LoanAudit{
		audit(1, "first", date(2024, 5, 4)),
		audit(2, "second", date(2024, 5, 4)),
		audit(3, "third", date(2024, 5, 4)),
	}}
	mailer := &fakeMailer{
		enabled: true,
		failFor: map[string]error{"second": errors.New("smtp timeout")},
	}
	job := newTestJob(store, mailer, "books@example.com", date(2024, 6, 1))

	result, err := job.Run()

	require.NoError(t, err)
	assert.Equal(t, 3, result.Matched)
	assert.Equal(t, 2, result.Sent)
	require.Len(t, mailer.sent, 2)
	assert.Equal(t, "first", mailer.sent[0].LoanName)
	assert.Equal(t, "third", mailer.sent[1].LoanName)
}

func TestReminderJobListFailurePropagates(t *testing.T) {
	store := &fakeLoanStore{err: errors.New("connection refused")}
	job := newTestJob(store, &fakeMailer{enabled: true}, "books@example.com", date(2024, 6, 1))

	_, err := job.Run()

	require.Error(t, err)
}
