package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/pennywise/internal/common"
	"github.com/dmitrijs2005/pennywise/internal/dbx"
	"github.com/dmitrijs2005/pennywise/internal/server/models"
	"github.com/dmitrijs2005/pennywise/internal/server/repositories/repomanager"
)

// Threshold check outcomes.
const (
	ThresholdStatusOver   = "over"
	ThresholdStatusWithin = "within"

	thresholdMessageOver   = "⚠️ You have exceeded your budget!"
	thresholdMessageWithin = "✅ You are within your budget."
)

// ThresholdReport is the result of comparing accumulated spend against the
// caller's budget.
type ThresholdReport struct {
	Status  string
	Message string
	Spent   float64
	Budget  float64
}

// BudgetService manages the caller's single budget row and the threshold
// check against accumulated spend.
//
// Note the asymmetry carried over from the product: the budget itself is
// per-user, but the spend it is compared against sums the global expense
// ledger.
type BudgetService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewBudgetService constructs a BudgetService.
func NewBudgetService(db *sql.DB, m repomanager.RepositoryManager) *BudgetService {
	return &BudgetService{db: db, repomanager: m}
}

// Get returns userID's budget or common.ErrorNotFound when none is set.
func (s *BudgetService) Get(ctx context.Context, userID int64) (*models.Budget, error) {
	repo := s.repomanager.Budgets(s.db)
	budget, err := repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return budget, nil
}

// Set upserts userID's budget: the first write creates the row, every later
// write mutates it in place. Concurrent writes for the same user are
// serialized by the store's conflict resolution, never duplicated.
func (s *BudgetService) Set(ctx context.Context, userID int64, amount float64) (*models.Budget, error) {
	repo := s.repomanager.Budgets(s.db)
	budget, err := repo.Upsert(ctx, userID, amount)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return budget, nil
}

// CheckThreshold compares the summed expense ledger against userID's budget.
// Budget and spend are read inside one transaction so the report is a
// consistent snapshot. No budget set yields common.ErrorNotFound.
func (s *BudgetService) CheckThreshold(ctx context.Context, userID int64) (*ThresholdReport, error) {
	var report *ThresholdReport

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		budget, err := s.repomanager.Budgets(tx).GetByUser(ctx, userID)
		if err != nil {
			return err
		}

		spent, err := s.repomanager.Expenses(tx).Total(ctx)
		if err != nil {
			return err
		}

		report = &ThresholdReport{
			Status:  ThresholdStatusWithin,
			Message: thresholdMessageWithin,
			Spent:   spent,
			Budget:  budget.Amount,
		}
		if spent > budget.Amount {
			report.Status = ThresholdStatusOver
			report.Message = thresholdMessageOver
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return report, nil
}
