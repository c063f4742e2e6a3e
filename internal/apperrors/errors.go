package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the request conflicts with the current state of a resource.
var ErrConflict = errors.New("resource state conflict")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// Validation errors returned by entry posting. Never auto-corrected; the caller
// must fix the draft and resubmit.
var (
	// ErrUnbalancedEntry indicates the debit and credit totals of an entry differ.
	ErrUnbalancedEntry = errors.New("entry debits and credits do not balance")

	// ErrEmptyEntrySide indicates an entry is missing debit lines, credit lines, or both.
	ErrEmptyEntrySide = errors.New("entry must have at least one debit and one credit line")

	// ErrInvalidEntryDateForKind indicates the entry date is not legal for its kind:
	// adjustment and closing entries must be dated at the period end, normal entries
	// must fall within the period's date range.
	ErrInvalidEntryDateForKind = errors.New("entry date is not valid for its kind")

	// ErrAdjustmentAccountMisuse indicates an adjustment-only account was used on an
	// entry kind that does not permit it.
	ErrAdjustmentAccountMisuse = errors.New("adjustment-only account used on a non-adjustment entry")

	// ErrAccountImmutable indicates a structural change to an account that is already
	// referenced by posted lines. Name and description edits and deactivation remain legal.
	ErrAccountImmutable = errors.New("account is referenced by posted entries and cannot be structurally changed")
)

// Referential errors: the caller holds a stale or invalid reference and must re-fetch.
var (
	// ErrAccountNotFound indicates a line references an account that does not exist
	// in the entry's company.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountInactive indicates a line references a deactivated account.
	ErrAccountInactive = errors.New("account is inactive")

	// ErrPeriodClosed indicates the referenced fiscal period no longer accepts postings.
	ErrPeriodClosed = errors.New("fiscal period is closed")

	// ErrPeriodOverlap indicates a new period's date range overlaps an existing period.
	ErrPeriodOverlap = errors.New("fiscal period overlaps an existing period")

	// ErrPeriodNotContiguous indicates a new period does not start the day after the
	// company's latest existing period ends.
	ErrPeriodNotContiguous = errors.New("fiscal period is not contiguous with the previous period")
)

// State errors: the caller issued a stale or duplicate request.
var (
	// ErrDuplicatePeriodRecord indicates depreciation was already recorded for the
	// (asset, period) pair. This is the guard against double-posting depreciation.
	ErrDuplicatePeriodRecord = errors.New("depreciation already recorded for this asset and period")

	// ErrAssetNotActive indicates a disposal was attempted on an asset that is not active.
	ErrAssetNotActive = errors.New("asset is not active")

	// ErrEntryReferenced indicates an entry cannot be deleted because fixed asset or
	// depreciation history records still reference it.
	ErrEntryReferenced = errors.New("entry is referenced by asset records and cannot be deleted")

	// ErrNothingToApply indicates an adjustment application found no unrecorded amounts.
	ErrNothingToApply = errors.New("no adjustment amounts to apply")

	// ErrUnsupportedMethod indicates a depreciation method whose formula has not been
	// specified. Declining balance is an extension point, not an approximation.
	ErrUnsupportedMethod = errors.New("unsupported depreciation method")
)
