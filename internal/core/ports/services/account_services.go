package services

import (
	"context"

	"github.com/kessan-app/kessan_backend/internal/core/domain"
	"github.com/kessan-app/kessan_backend/internal/dto"
)

// AccountSvcFacade defines operations on the chart of accounts.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error)
	GetAccountByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error)
	FindAccountByName(ctx context.Context, companyID string, name string) (*domain.Account, error)
	ListAccounts(ctx context.Context, companyID string, limit, offset int) ([]domain.Account, error)
	// UpdateAccount applies the requested changes. Structural changes (type,
	// adjustment-only flag) fail with apperrors.ErrAccountImmutable once the
	// account is referenced by posted lines.
	UpdateAccount(ctx context.Context, companyID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, companyID string, accountID string, userID string) error
}
