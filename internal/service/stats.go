package service

import (
	"time"

	"github.com/darshan/books-service/internal/jobs"
	"github.com/darshan/books-service/internal/models"
)

// statsWindowDays is the lookback of the weekly dashboard aggregates.
const statsWindowDays = 7

func todayStart() time.Time {
	return jobs.Midnight(time.Now())
}

// TodayTonStats sums today's transaction tonnage
func (s *Service) TodayTonStats() (*models.TonStats, error) {
	return s.repo.TransactionTonStats(todayStart())
}

// WeeklyTonStats sums the past week's transaction tonnage
func (s *Service) WeeklyTonStats() (*models.TonStats, error) {
	return s.repo.TransactionTonStats(todayStart().AddDate(0, 0, -statsWindowDays))
}

// TodayAmountStats sums today's transaction amounts
func (s *Service) TodayAmountStats() (*models.AmountStats, error) {
	return s.repo.TransactionAmountStats(todayStart())
}

// WeeklyLoadCount counts truck loads recorded in the past week
func (s *Service) WeeklyLoadCount() (int64, error) {
	return s.repo.CountTransactionsSince(todayStart().AddDate(0, 0, -statsWindowDays))
}

// QuickTodayTotals sums today's ad-hoc transactions
func (s *Service) QuickTodayTotals() (*models.QuickTotals, error) {
	return s.repo.QuickTransactionTotals(todayStart())
}

// QuickWeeklyTotals sums the past week's ad-hoc transactions
func (s *Service) QuickWeeklyTotals() (*models.QuickTotals, error) {
	return s.repo.QuickTransactionTotals(todayStart().AddDate(0, 0, -statsWindowDays))
}

// QuickPaymentSummary computes the cash-versus-online split of ad-hoc
// transactions, with percentages, over an optional date range.
func (s *Service) QuickPaymentSummary(from, to *time.Time) (*models.PaymentSummary, error) {
	summary, err := s.repo.QuickPaymentSummary(from, to)
	if err != nil {
		return nil, err
	}
	if summary.TotalAmount > 0 {
		summary.CashPercent = summary.CashAmount / summary.TotalAmount * 100
		summary.OnlinePercent = summary.OnlineAmount / summary.TotalAmount * 100
	}
	return summary, nil
}

// FirmCount counts all registered firms
func (s *Service) FirmCount() (int64, error) {
	return s.repo.CountFirms()
}

// FirmTodayStats summarizes today's transaction volume across all firms
func (s *Service) FirmTodayStats() (*models.FirmTodayStats, error) {
	since := todayStart()
	ton, err := s.repo.TransactionTonStats(since)
	if err != nil {
		return nil, err
	}
	amount, err := s.repo.TransactionAmountStats(since)
	if err != nil {
		return nil, err
	}
	return &models.FirmTodayStats{TotalTon: ton.TotalTon, TotalAmount: amount.TotalAmount}, nil
}

// VehicleCount counts vehicles, optionally for one firm (0 = all)
func (s *Service) VehicleCount(firmID int64) (int64, error) {
	return s.repo.CountVehicles(firmID)
}
