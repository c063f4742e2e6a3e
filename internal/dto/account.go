package dto

import (
	"time"

	"github.com/kessan-app/kessan_backend/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name           string             `json:"name" validate:"required"`
	AccountType    domain.AccountType `json:"accountType" validate:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	AdjustmentOnly bool               `json:"adjustmentOnly"`
	Description    string             `json:"description"` // Optional
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
// Type and AdjustmentOnly changes are rejected once the account is referenced
// by posted lines.
type UpdateAccountRequest struct {
	Name           *string             `json:"name"`
	AccountType    *domain.AccountType `json:"accountType" validate:"omitempty,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	AdjustmentOnly *bool               `json:"adjustmentOnly"`
	Description    *string             `json:"description"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID      string             `json:"accountID"`
	CompanyID      string             `json:"companyID"`
	Name           string             `json:"name"`
	AccountType    domain.AccountType `json:"accountType"`
	AdjustmentOnly bool               `json:"adjustmentOnly"`
	Description    string             `json:"description"`
	IsActive       bool               `json:"isActive"`
	CreatedAt      time.Time          `json:"createdAt"`
	CreatedBy      string             `json:"createdBy"`
	LastUpdatedAt  time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy  string             `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		CompanyID:      acc.CompanyID,
		Name:           acc.Name,
		AccountType:    acc.AccountType,
		AdjustmentOnly: acc.AdjustmentOnly,
		Description:    acc.Description,
		IsActive:       acc.IsActive,
		CreatedAt:      acc.CreatedAt,
		CreatedBy:      acc.CreatedBy,
		LastUpdatedAt:  acc.LastUpdatedAt,
		LastUpdatedBy:  acc.LastUpdatedBy,
	}
}
