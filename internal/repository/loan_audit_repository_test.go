package repository

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/darshan/books-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var loanAuditColumns = []string{
	"id", "user_id", "client_name", "loan_type", "loan_name",
	"deduction_bank", "parameters", "created_at", "updated_at",
}

func sampleParameters(t *testing.T) (models.LoanParameters, []byte) {
	t.Helper()
	params := models.LoanParameters{
		Loan:     500000,
		Rate:     9.5,
		Months:   60,
		Emi:      10500,
		DisbDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		EmiDate:  time.Date(2024, 2, 4, 0, 0, 0, 0, time.UTC),
	}
	raw, err := json.Marshal(params)
	require.NoError(t, err)
	return params, raw
}

func TestCreateLoanAudit(t *testing.T) {
	repo, mock := newMockRepo(t)
	params, raw := sampleParameters(t)
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO books\.loan_audits`).
		WithArgs(int64(7), "Acme Traders", "vehicle", "tractor loan", "HDFC", raw).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(3), now, now))

	audit := &models.LoanAudit{
		UserID:        7,
		ClientName:    "Acme Traders",
		LoanType:      "vehicle",
		LoanName:      "tractor loan",
		DeductionBank: "HDFC",
		Parameters:    params,
	}
	require.NoError(t, repo.CreateLoanAudit(audit))
	assert.Equal(t, int64(3), audit.ID)
}

func TestFindLoanAuditByName(t *testing.T) {
	repo, mock := newMockRepo(t)
	params, raw := sampleParameters(t)
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM books\.loan_audits\s+WHERE user_id = \$1 AND client_name = \$2 AND loan_name = \$3`).
		WithArgs(int64(7), "Acme Traders", "tractor loan").
		WillReturnRows(sqlmock.NewRows(loanAuditColumns).
			AddRow(int64(3), int64(7), "Acme Traders", "vehicle", "tractor loan", "HDFC", raw, now, now))

	audit, err := repo.FindLoanAuditByName(7, "Acme Traders", "tractor loan")
	require.NoError(t, err)
	assert.Equal(t, int64(3), audit.ID)
	assert.Equal(t, params, audit.Parameters)
}

func TestFindLoanAuditByNameNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM books\.loan_audits\s+WHERE user_id = \$1 AND client_name = \$2 AND loan_name = \$3`).
		WithArgs(int64(7), "Acme Traders", "missing").
		WillReturnRows(sqlmock.NewRows(loanAuditColumns))

	_, err := repo.FindLoanAuditByName(7, "Acme Traders", "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateLoanAuditNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	params, raw := sampleParameters(t)

	mock.ExpectQuery(`UPDATE books\.loan_audits`).
		WithArgs("vehicle", "HDFC", raw, int64(99), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

	audit := &models.LoanAudit{
		ID:            99,
		UserID:        7,
		LoanType:      "vehicle",
		DeductionBank: "HDFC",
		Parameters:    params,
	}
	assert.ErrorIs(t, repo.UpdateLoanAudit(audit), models.ErrNotFound)
}

func TestListAllLoanAudits(t *testing.T) {
	repo, mock := newMockRepo(t)
	params, raw := sampleParameters(t)
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM books\.loan_audits\s+ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(loanAuditColumns).
			AddRow(int64(1), int64(7), "Acme Traders", "vehicle", "tractor loan", "HDFC", raw, now, now).
			AddRow(int64(2), int64(8), "Bharat Goods", "gold", "gold loan", "", raw, now, now))

	audits, err := repo.ListAllLoanAudits()
	require.NoError(t, err)
	require.Len(t, audits, 2)
	assert.Equal(t, int64(8), audits[1].UserID)
	assert.Equal(t, params.EmiDate, audits[0].Parameters.EmiDate)
}

func TestDeleteLoanAuditNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM books\.loan_audits WHERE id = \$1 AND user_id = \$2`).
		WithArgs(int64(5), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteLoanAudit(5, 7), models.ErrNotFound)
}
