package dto

// ApplyDepreciationRequest names the accounts the depreciation adjustment
// entry posts against (indirect method: expense debited, accumulated
// depreciation credited).
type ApplyDepreciationRequest struct {
	ExpenseAccountID     string `json:"expenseAccountID" validate:"required"`
	AccumulatedAccountID string `json:"accumulatedAccountID" validate:"required"`
	Memo                 string `json:"memo"`
}

// ApplyAllowanceRequest names the accounts the allowance adjustment entry
// posts against. IncomeAccountID receives the credit when the allowance is
// reduced (reversal).
type ApplyAllowanceRequest struct {
	ExpenseAccountID   string `json:"expenseAccountID" validate:"required"`
	AllowanceAccountID string `json:"allowanceAccountID" validate:"required"`
	IncomeAccountID    string `json:"incomeAccountID" validate:"required"`
	Memo               string `json:"memo"`
}
