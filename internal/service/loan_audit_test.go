package service

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/darshan/books-service/internal/models"
	"github.com/darshan/books-service/internal/repository"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewService(repository.NewRepository(db), log), mock
}

func authedContext(userID string) context.Context {
	return context.WithValue(context.Background(), "userID", userID)
}

func testAudit() *models.LoanAudit {
	return &models.LoanAudit{
		ClientName: "Acme Traders",
		LoanType:   "vehicle",
		LoanName:   "tractor loan",
		Parameters: models.LoanParameters{
			Loan:    500000,
			Emi:     10500,
			EmiDate: time.Date(2024, 2, 4, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestSaveLoanAuditCreates(t *testing.T) {
	svc, mock := newMockService(t)
	audit := testAudit()
	params, err := json.Marshal(audit.Parameters)
	require.NoError(t, err)
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM books\.loan_audits\s+WHERE user_id = \$1 AND client_name = \$2 AND loan_name = \$3`).
		WithArgs(int64(7), "Acme Traders", "tractor loan").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO books\.loan_audits`).
		WithArgs(int64(7), "Acme Traders", "vehicle", "tractor loan", "", params).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(3), now, now))

	created, err := svc.SaveLoanAudit(authedContext("7"), audit)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(3), audit.ID)
	assert.Equal(t, int64(7), audit.UserID)
}

func TestSaveLoanAuditUpdatesExisting(t *testing.T) {
	svc, mock := newMockService(t)
	audit := testAudit()
	params, err := json.Marshal(audit.Parameters)
	require.NoError(t, err)
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM books\.loan_audits\s+WHERE user_id = \$1 AND client_name = \$2 AND loan_name = \$3`).
		WithArgs(int64(7), "Acme Traders", "tractor loan").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "client_name", "loan_type", "loan_name",
			"deduction_bank", "parameters", "created_at", "updated_at",
		}).AddRow(int64(3), int64(7), "Acme Traders", "gold", "tractor loan", "", params, created, created))
	mock.ExpectQuery(`UPDATE books\.loan_audits`).
		WithArgs("vehicle", "", params, int64(3), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(updated))

	wasCreated, err := svc.SaveLoanAudit(authedContext("7"), audit)
	require.NoError(t, err)
	assert.False(t, wasCreated)
	assert.Equal(t, int64(3), audit.ID)
	assert.Equal(t, created, audit.CreatedAt)
	assert.Equal(t, updated, audit.UpdatedAt)
}

func TestSaveLoanAuditValidation(t *testing.T) {
	svc, _ := newMockService(t)

	missingName := testAudit()
	missingName.LoanName = ""
	_, err := svc.SaveLoanAudit(authedContext("7"), missingName)
	assert.ErrorIs(t, err, models.ErrValidation)

	missingAnchor := testAudit()
	missingAnchor.Parameters.EmiDate = time.Time{}
	_, err = svc.SaveLoanAudit(authedContext("7"), missingAnchor)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestSaveLoanAuditRequiresAuthContext(t *testing.T) {
	svc, _ := newMockService(t)

	_, err := svc.SaveLoanAudit(context.Background(), testAudit())
	assert.Error(t, err)
}
