package dto

import (
	"time"

	"github.com/kessan-app/kessan_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLineRequest defines one debit or credit line of an entry draft.
type CreateLineRequest struct {
	AccountID string          `json:"accountID" validate:"required"`
	Side      domain.LineSide `json:"side" validate:"required,oneof=DEBIT CREDIT"`
	Amount    decimal.Decimal `json:"amount" validate:"required"`
	Notes     string          `json:"notes"`
}

// CreateEntryRequest defines the data needed to post a journal entry.
type CreateEntryRequest struct {
	PeriodID string              `json:"periodID" validate:"required"`
	Date     time.Time           `json:"date" validate:"required"`
	Kind     domain.EntryKind    `json:"kind" validate:"required,oneof=NORMAL ADJUSTMENT CLOSING"`
	Memo     string              `json:"memo" validate:"required"`
	Lines    []CreateLineRequest `json:"lines" validate:"required,min=2,dive"`
}

// LineResponse defines the data returned for a journal line.
type LineResponse struct {
	LineID    string          `json:"lineID"`
	AccountID string          `json:"accountID"`
	Side      domain.LineSide `json:"side"`
	Amount    decimal.Decimal `json:"amount"`
	Notes     string          `json:"notes,omitempty"`
}

// EntryResponse defines the data returned for a posted journal entry.
type EntryResponse struct {
	EntryID         string             `json:"entryID"`
	CompanyID       string             `json:"companyID"`
	PeriodID        string             `json:"periodID"`
	Date            time.Time          `json:"date"`
	Kind            domain.EntryKind   `json:"kind"`
	Memo            string             `json:"memo"`
	Status          domain.EntryStatus `json:"status"`
	OriginalEntryID *string            `json:"originalEntryID,omitempty"`
	Lines           []LineResponse     `json:"lines,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
	CreatedBy       string             `json:"createdBy"`
}

// ListEntriesParams holds parameters for listing entries.
type ListEntriesParams struct {
	Limit     int     `json:"limit"`
	NextToken *string `json:"nextToken"`
}

// ListEntriesResponse is the paginated entry listing.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToLineResponse converts a domain.JournalLine to LineResponse DTO.
func ToLineResponse(line *domain.JournalLine) LineResponse {
	return LineResponse{
		LineID:    line.LineID,
		AccountID: line.AccountID,
		Side:      line.Side,
		Amount:    line.Amount,
		Notes:     line.Notes,
	}
}

// ToEntryResponse converts a domain.JournalEntry to EntryResponse DTO.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	resp := EntryResponse{
		EntryID:         e.EntryID,
		CompanyID:       e.CompanyID,
		PeriodID:        e.PeriodID,
		Date:            e.Date,
		Kind:            e.Kind,
		Memo:            e.Memo,
		Status:          e.Status,
		OriginalEntryID: e.OriginalEntryID,
		CreatedAt:       e.CreatedAt,
		CreatedBy:       e.CreatedBy,
	}
	if len(e.Lines) > 0 {
		resp.Lines = make([]LineResponse, len(e.Lines))
		for i := range e.Lines {
			resp.Lines[i] = ToLineResponse(&e.Lines[i])
		}
	}
	return resp
}
