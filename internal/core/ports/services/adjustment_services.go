package services

import (
	"context"

	"github.com/kessan-app/kessan_backend/internal/core/domain"
	"github.com/kessan-app/kessan_backend/internal/dto"
)

// AdjustmentSvcFacade derives period-end adjustment amounts and applies them
// through the ledger with idempotent bookkeeping.
type AdjustmentSvcFacade interface {
	// PlanDepreciation computes the proposed (or already recorded) depreciation
	// per eligible asset for the period. Read-only: it never posts.
	PlanDepreciation(ctx context.Context, companyID string, periodID string) (*domain.DepreciationPlan, error)

	// ApplyDepreciation posts one adjustment entry for the plan's unrecorded
	// rows and records each asset in the depreciation history. History
	// failures after the successful post are returned as reconciliation
	// warnings, never retried or rolled back here.
	ApplyDepreciation(ctx context.Context, companyID string, periodID string, req dto.ApplyDepreciationRequest, userID string) (*domain.JournalEntry, []domain.ReconciliationWarning, error)

	// PlanAllowance computes the receivable-driven allowance adjustment.
	PlanAllowance(ctx context.Context, companyID string, periodID string) (*domain.AllowancePlan, error)

	// ApplyAllowance posts the allowance adjustment entry, with sides swapped
	// when the plan is a reversal.
	ApplyAllowance(ctx context.Context, companyID string, periodID string, req dto.ApplyAllowanceRequest, userID string) (*domain.JournalEntry, error)
}
